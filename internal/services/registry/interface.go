package registry

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/parlor/internal/services/registry Service

// Service defines the session registry operations
type Service interface {
	// Register creates a participant or restores one on reconnect
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// UpdateLeaderboard projects a settled bankroll change onto the leaderboard
	UpdateLeaderboard(ctx context.Context, input *UpdateLeaderboardInput) error

	// GetLeaderboard reads the leaderboard, full or display view
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// ResetAll sets every participant's bankroll to a preset value
	ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error)

	// AppendChat appends a message to the shared chat log
	AppendChat(ctx context.Context, input *AppendChatInput) (*AppendChatOutput, error)

	// GetChatLog reads the retained chat log oldest-first
	GetChatLog(ctx context.Context) (*GetChatLogOutput, error)

	// RosterSnapshot projects the full roster sorted by bankroll descending
	RosterSnapshot(ctx context.Context) (*RosterSnapshotOutput, error)
}
