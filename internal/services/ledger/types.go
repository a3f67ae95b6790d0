package ledger

import (
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

// Config holds configuration for the bet ledger service
type Config struct {
	// RoundRepo persists round state and bet records
	RoundRepo roundRepo.Repository

	// SessionRepo persists participants and the leaderboard
	SessionRepo sessionRepo.Repository
}

// StageInput contains parameters for staging a pending bet
type StageInput struct {
	// ParticipantID is the staking participant
	ParticipantID string

	// Kind is the game being bet on
	Kind models.GameKind

	// BetType is the bet-type token, validated against the game's table
	BetType string

	// Amount is added to the pending stake for the bet type
	Amount int
}

// StageOutput contains the participant's pending bets after staging
type StageOutput struct {
	// Pending is the updated pending pool
	Pending models.BetMap

	// PendingTotal is the summed pending stake
	PendingTotal int
}

// ClearInput contains parameters for clearing pending bets
type ClearInput struct {
	// ParticipantID is the owning participant
	ParticipantID string

	// Kind is the game
	Kind models.GameKind

	// BetType clears a single bet type when set, everything when empty
	BetType string
}

// CommitInput contains parameters for committing pending bets
type CommitInput struct {
	// ParticipantID is the committing participant
	ParticipantID string

	// Kind is the game
	Kind models.GameKind
}

// CommitOutput contains the result of a commit
type CommitOutput struct {
	// Committed is the stake moved into the active pool
	Committed models.BetMap

	// DebitedTotal is the amount taken from the bankroll at commit time
	DebitedTotal int

	// NewBankroll is the bankroll after the debit
	NewBankroll int
}

// GetBetsInput contains parameters for reading a participant's bets
type GetBetsInput struct {
	// ParticipantID is the owning participant
	ParticipantID string

	// Kind is the game
	Kind models.GameKind
}

// GetBetsOutput contains a participant's current bet pools
type GetBetsOutput struct {
	// Record is the stored bet record, empty pools if never staged
	Record *models.BetRecord
}
