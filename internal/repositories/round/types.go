package round

import (
	"github.com/KirkDiggler/parlor/internal/models"
)

// SetActiveGameInput contains parameters for setting the global selector
type SetActiveGameInput struct {
	// ActiveGame is the selector record to persist
	ActiveGame *models.ActiveGame
}

// GetActiveGameOutput contains the global selector
type GetActiveGameOutput struct {
	// ActiveGame is nil when no game is active
	ActiveGame *models.ActiveGame
}

// SaveRoundInput contains parameters for saving round state
type SaveRoundInput struct {
	// Round is the round state to persist
	Round *models.GameRound
}

// GetRoundInput contains parameters for fetching round state
type GetRoundInput struct {
	// Kind identifies the game
	Kind models.GameKind
}

// SaveBetRecordInput contains parameters for saving one participant's bets
type SaveBetRecordInput struct {
	// Kind identifies the game the bets belong to
	Kind models.GameKind

	// Record is the bet record to persist
	Record *models.BetRecord
}

// GetBetRecordInput contains parameters for fetching one participant's bets
type GetBetRecordInput struct {
	// Kind identifies the game
	Kind models.GameKind

	// ParticipantID identifies the owning participant
	ParticipantID string
}

// ListBetRecordsInput contains parameters for fetching all bets for a game
type ListBetRecordsInput struct {
	// Kind identifies the game
	Kind models.GameKind
}

// ListBetRecordsOutput contains every participant's bet record for a game
type ListBetRecordsOutput struct {
	// Records is unordered
	Records []*models.BetRecord
}

// ClearBetRecordsInput contains parameters for deleting all bets for a game
type ClearBetRecordsInput struct {
	// Kind identifies the game
	Kind models.GameKind
}
