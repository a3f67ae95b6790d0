package registry

import (
	"github.com/coder/quartz"

	"github.com/KirkDiggler/parlor/internal/common/uuid"
	"github.com/KirkDiggler/parlor/internal/models"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

// Config holds configuration for the session registry service
type Config struct {
	// SessionRepo persists participants, leaderboard, chat and settings
	SessionRepo sessionRepo.Repository

	// UUIDGenerator mints chat message IDs
	UUIDGenerator uuid.UUID

	// Clock supplies timestamps
	Clock quartz.Clock

	// DealerSecret gates the dealer-only operations. This is a shared
	// secret presented per call, a UX gate rather than a security
	// boundary: any client with store access could forge the writes.
	DealerSecret string
}

// RegisterInput contains parameters for registering a participant
type RegisterInput struct {
	// ParticipantID is the client-generated stable identifier
	ParticipantID string

	// Name is the display name
	Name string

	// DealerSecret, when it matches, grants the dealer role
	DealerSecret string
}

// RegisterOutput contains the registered participant
type RegisterOutput struct {
	// Participant is the stored record, prior state on reconnect
	Participant *models.Participant

	// Restored is true when the ID was already registered
	Restored bool
}

// UpdateLeaderboardInput contains parameters for reflecting a bankroll change
type UpdateLeaderboardInput struct {
	// ParticipantID identifies the participant
	ParticipantID string

	// NewBankroll is the settled bankroll to project
	NewBankroll int
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
	// TopOnly restricts the result to the display view of
	// models.LeaderboardSize entries
	TopOnly bool
}

// GetLeaderboardOutput contains leaderboard entries sorted descending
type GetLeaderboardOutput struct {
	Entries []*models.LeaderboardEntry
}

// ResetAllInput contains parameters for the dealer bankroll reset
type ResetAllInput struct {
	// DealerSecret authorizes the reset
	DealerSecret string

	// StartingBankroll must be one of models.StartingBankrollPresets
	StartingBankroll int
}

// ResetAllOutput contains the result of the reset
type ResetAllOutput struct {
	// ResetCount is how many participants were reset
	ResetCount int
}

// AppendChatInput contains parameters for appending a chat message
type AppendChatInput struct {
	// ParticipantID is the sender
	ParticipantID string

	// Text is the message body
	Text string
}

// AppendChatOutput contains the stored message
type AppendChatOutput struct {
	Message *models.ChatMessage
}

// GetChatLogOutput contains the retained chat log oldest-first
type GetChatLogOutput struct {
	Messages []*models.ChatMessage
}

// RosterSnapshotOutput contains the full roster projected as leaderboard
// entries sorted by bankroll descending
type RosterSnapshotOutput struct {
	Players []models.LeaderboardEntry
}
