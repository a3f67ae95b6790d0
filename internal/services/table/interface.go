package table

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/parlor/internal/services/table Service

// Service defines the round lifecycle and dealer console operations.
// The round's phase walks betting -> locked -> resolved; the countdown
// closes the window automatically while resolution stays a manual dealer
// action, matching a human-dealer workflow.
type Service interface {
	// Activate puts a game live and opens its first betting window
	Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error)

	// Deactivate ends the session, producing the end-of-session snapshot
	Deactivate(ctx context.Context, input *DeactivateInput) (*DeactivateOutput, error)

	// StartRound opens the next betting window after a resolution
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// Tick advances the countdown by one second, locking at zero
	Tick(ctx context.Context) (*TickOutput, error)

	// Resolve stores the outcome and settles every active bet
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// GetState reads the selector and live round for display
	GetState(ctx context.Context) (*GetStateOutput, error)

	// Run drives Tick at one-second intervals until the context ends
	Run(ctx context.Context) error
}
