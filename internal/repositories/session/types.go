package session

import (
	"github.com/KirkDiggler/parlor/internal/models"
)

// SaveParticipantInput contains parameters for saving a participant record
type SaveParticipantInput struct {
	// Participant is the record to persist
	Participant *models.Participant
}

// GetParticipantInput contains parameters for fetching a participant record
type GetParticipantInput struct {
	// ParticipantID identifies the participant
	ParticipantID string
}

// ListParticipantsInput contains parameters for listing the full roster
type ListParticipantsInput struct{}

// ListParticipantsOutput contains the full roster
type ListParticipantsOutput struct {
	// Participants is every registered participant, unordered
	Participants []*models.Participant
}

// SaveLeaderboardEntryInput contains parameters for upserting a leaderboard entry
type SaveLeaderboardEntryInput struct {
	// Entry is the projection to persist
	Entry *models.LeaderboardEntry
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct{}

// GetLeaderboardOutput contains the authoritative leaderboard
type GetLeaderboardOutput struct {
	// Entries is the full set sorted by bankroll descending
	Entries []*models.LeaderboardEntry
}

// AppendChatMessageInput contains parameters for appending a chat message
type AppendChatMessageInput struct {
	// Message is the message to append
	Message *models.ChatMessage
}

// GetChatLogInput contains parameters for reading the chat log
type GetChatLogInput struct{}

// GetChatLogOutput contains the retained chat log
type GetChatLogOutput struct {
	// Messages is oldest-first, at most models.ChatLogCap entries
	Messages []*models.ChatMessage
}

// SaveSettingsInput contains parameters for saving session settings
type SaveSettingsInput struct {
	// Settings is the settings record to persist
	Settings *models.Settings
}

// GetSettingsOutput contains the session settings
type GetSettingsOutput struct {
	// Settings is the stored settings, defaults if never written
	Settings *models.Settings
}

// SaveStatsInput contains parameters for saving session statistics
type SaveStatsInput struct {
	// Stats is the statistics record to persist
	Stats *models.SessionStats
}

// GetStatsOutput contains the session statistics
type GetStatsOutput struct {
	// Stats is the stored statistics, zeroed if never written
	Stats *models.SessionStats
}

// SaveEndOfSessionInput contains parameters for writing the end-of-session snapshot
type SaveEndOfSessionInput struct {
	// Snapshot is the snapshot to persist
	Snapshot *models.EndOfSession
}

// GetEndOfSessionOutput contains the end-of-session snapshot
type GetEndOfSessionOutput struct {
	// Snapshot is nil when no snapshot is pending
	Snapshot *models.EndOfSession
}
