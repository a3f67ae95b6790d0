package session

import (
	"context"

	"github.com/KirkDiggler/parlor/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/parlor/internal/repositories/session Repository

// Repository persists session-scoped state: participants, leaderboard,
// chat, settings, stats, and the end-of-session snapshot
type Repository interface {
	// SaveParticipant persists a participant record
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant fetches a participant record by ID
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants fetches the full roster
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// SaveLeaderboardEntry upserts one leaderboard entry
	SaveLeaderboardEntry(ctx context.Context, input *SaveLeaderboardEntryInput) error

	// GetLeaderboard fetches the full leaderboard sorted by bankroll descending
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// AppendChatMessage appends a chat message, trimming past the cap
	AppendChatMessage(ctx context.Context, input *AppendChatMessageInput) error

	// GetChatLog fetches the retained chat log oldest-first
	GetChatLog(ctx context.Context, input *GetChatLogInput) (*GetChatLogOutput, error)

	// SaveSettings persists the session settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// GetSettings fetches the session settings, defaults if never written
	GetSettings(ctx context.Context) (*GetSettingsOutput, error)

	// SaveStats persists the session statistics
	SaveStats(ctx context.Context, input *SaveStatsInput) error

	// GetStats fetches the session statistics, zeroed if never written
	GetStats(ctx context.Context) (*GetStatsOutput, error)

	// SaveEndOfSession writes the end-of-session snapshot
	SaveEndOfSession(ctx context.Context, input *SaveEndOfSessionInput) error

	// GetEndOfSession fetches the pending snapshot, nil when cleared
	GetEndOfSession(ctx context.Context) (*GetEndOfSessionOutput, error)

	// ClearEndOfSession removes the pending snapshot
	ClearEndOfSession(ctx context.Context) error
}
