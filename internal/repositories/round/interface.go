package round

import (
	"context"

	"github.com/KirkDiggler/parlor/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/parlor/internal/repositories/round Repository

// Repository persists game-scoped state: the global active-game selector,
// per-game round state, and per-participant bet records
type Repository interface {
	// SetActiveGame writes the global selector
	SetActiveGame(ctx context.Context, input *SetActiveGameInput) error

	// GetActiveGame fetches the global selector, nil when the table is idle
	GetActiveGame(ctx context.Context) (*GetActiveGameOutput, error)

	// ClearActiveGame nulls the global selector
	ClearActiveGame(ctx context.Context) error

	// SaveRound persists round state for the round's game kind
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// GetRound fetches round state for a game
	GetRound(ctx context.Context, input *GetRoundInput) (*models.GameRound, error)

	// SaveBetRecord persists one participant's bets for a game
	SaveBetRecord(ctx context.Context, input *SaveBetRecordInput) error

	// GetBetRecord fetches one participant's bets for a game
	GetBetRecord(ctx context.Context, input *GetBetRecordInput) (*models.BetRecord, error)

	// ListBetRecords fetches every participant's bets for a game
	ListBetRecords(ctx context.Context, input *ListBetRecordsInput) (*ListBetRecordsOutput, error)

	// ClearBetRecords deletes every bet record for a game
	ClearBetRecords(ctx context.Context, input *ClearBetRecordsInput) error
}
