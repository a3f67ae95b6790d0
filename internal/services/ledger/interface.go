package ledger

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/parlor/internal/services/ledger Service

// Service defines the bet ledger operations. Every mutation is scoped to
// data owned by the acting participant, which is the whole concurrency
// story: no cross-participant write ever happens here.
type Service interface {
	// Stage adds to a pending stake during the betting phase
	Stage(ctx context.Context, input *StageInput) (*StageOutput, error)

	// Clear zeroes one or all pending bet types, active bets untouched
	Clear(ctx context.Context, input *ClearInput) error

	// Commit moves pending stakes into the active pool and debits the
	// bankroll immediately
	Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error)

	// GetBets reads a participant's current bet pools
	GetBets(ctx context.Context, input *GetBetsInput) (*GetBetsOutput, error)
}
