package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/parlor/internal/models"
	"github.com/KirkDiggler/parlor/internal/store"
)

const (
	// Store paths owned by this repository
	userPathPrefix        = "session/users/"
	leaderboardPathPrefix = "session/leaderboard/"
	chatPathPrefix        = "session/chat/"
	settingsPath          = "session/settings/startingBankroll"
	statsPath             = "session/stats"
	endOfSessionPath      = "session/endOfSession"
)

// ErrParticipantNotFound is returned when a participant was never registered
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the store-backed session repository
type Config struct {
	// Store is the shared session store
	Store store.Store
}

// storeRepository implements the Repository interface over the shared store
type storeRepository struct {
	store store.Store
}

// New creates a new store-backed session repository
func New(cfg *Config) (*storeRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &storeRepository{
		store: cfg.Store,
	}, nil
}

// SaveParticipant persists a participant record
func (r *storeRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	if input.Participant.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	data, err := json.Marshal(input.Participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	if err := r.store.Set(ctx, userPathPrefix+input.Participant.ID, data); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant fetches a participant record by ID
func (r *storeRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	data, err := r.store.Get(ctx, userPathPrefix+input.ParticipantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal(data, &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// ListParticipants fetches the full roster
func (r *storeRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	values, err := r.store.List(ctx, userPathPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(values))
	for path, data := range values {
		var participant models.Participant
		if err := json.Unmarshal(data, &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant at %s: %w", path, err)
		}
		participants = append(participants, &participant)
	}

	return &ListParticipantsOutput{
		Participants: participants,
	}, nil
}

// SaveLeaderboardEntry upserts one leaderboard entry
func (r *storeRepository) SaveLeaderboardEntry(ctx context.Context, input *SaveLeaderboardEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.Entry.ParticipantID == "" {
		return errors.New("participant ID cannot be empty")
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard entry: %w", err)
	}

	if err := r.store.Set(ctx, leaderboardPathPrefix+input.Entry.ParticipantID, data); err != nil {
		return fmt.Errorf("failed to save leaderboard entry: %w", err)
	}

	return nil
}

// GetLeaderboard fetches the full leaderboard sorted by bankroll descending.
// Callers wanting the display view take the first models.LeaderboardSize.
func (r *storeRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	values, err := r.store.List(ctx, leaderboardPathPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(values))
	for path, data := range values {
		var entry models.LeaderboardEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal leaderboard entry at %s: %w", path, err)
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bankroll != entries[j].Bankroll {
			return entries[i].Bankroll > entries[j].Bankroll
		}
		return entries[i].ParticipantID < entries[j].ParticipantID
	})

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// AppendChatMessage appends a chat message and trims the log past the cap
func (r *storeRepository) AppendChatMessage(ctx context.Context, input *AppendChatMessageInput) error {
	if input == nil || input.Message == nil {
		return errors.New("input and message cannot be nil")
	}

	if input.Message.ID == "" {
		return errors.New("message ID cannot be empty")
	}

	data, err := json.Marshal(input.Message)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	if err := r.store.Set(ctx, chatPathPrefix+input.Message.ID, data); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}

	// Trim past the cap. A concurrent appender may trim the same paths; the
	// deletes are idempotent.
	log, err := r.GetChatLog(ctx, &GetChatLogInput{})
	if err != nil {
		return err
	}
	for i := 0; i < len(log.Messages)-models.ChatLogCap; i++ {
		if err := r.store.Delete(ctx, chatPathPrefix+log.Messages[i].ID); err != nil {
			return fmt.Errorf("failed to trim chat log: %w", err)
		}
	}

	return nil
}

// GetChatLog fetches the retained chat log oldest-first
func (r *storeRepository) GetChatLog(ctx context.Context, input *GetChatLogInput) (*GetChatLogOutput, error) {
	values, err := r.store.List(ctx, chatPathPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat log: %w", err)
	}

	messages := make([]*models.ChatMessage, 0, len(values))
	for path, data := range values {
		var message models.ChatMessage
		if err := json.Unmarshal(data, &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat message at %s: %w", path, err)
		}
		messages = append(messages, &message)
	}

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].SentAt.Before(messages[j].SentAt)
		}
		return messages[i].ID < messages[j].ID
	})

	return &GetChatLogOutput{
		Messages: messages,
	}, nil
}

// SaveSettings persists the session settings
func (r *storeRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := r.store.Set(ctx, settingsPath, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings fetches the session settings, falling back to defaults when
// the path was never written
func (r *storeRepository) GetSettings(ctx context.Context) (*GetSettingsOutput, error) {
	data, err := r.store.Get(ctx, settingsPath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &GetSettingsOutput{
				Settings: &models.Settings{
					StartingBankroll: models.DefaultStartingBankroll,
				},
			}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &GetSettingsOutput{
		Settings: &settings,
	}, nil
}

// SaveStats persists the session statistics
func (r *storeRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	if input == nil || input.Stats == nil {
		return errors.New("input and stats cannot be nil")
	}

	data, err := json.Marshal(input.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := r.store.Set(ctx, statsPath, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

// GetStats fetches the session statistics, zeroed when never written
func (r *storeRepository) GetStats(ctx context.Context) (*GetStatsOutput, error) {
	data, err := r.store.Get(ctx, statsPath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &GetStatsOutput{
				Stats: &models.SessionStats{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats models.SessionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &GetStatsOutput{
		Stats: &stats,
	}, nil
}

// SaveEndOfSession writes the end-of-session snapshot
func (r *storeRepository) SaveEndOfSession(ctx context.Context, input *SaveEndOfSessionInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal end-of-session snapshot: %w", err)
	}

	if err := r.store.Set(ctx, endOfSessionPath, data); err != nil {
		return fmt.Errorf("failed to save end-of-session snapshot: %w", err)
	}

	return nil
}

// GetEndOfSession fetches the pending snapshot, nil when cleared
func (r *storeRepository) GetEndOfSession(ctx context.Context) (*GetEndOfSessionOutput, error) {
	data, err := r.store.Get(ctx, endOfSessionPath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &GetEndOfSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get end-of-session snapshot: %w", err)
	}

	var snapshot models.EndOfSession
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal end-of-session snapshot: %w", err)
	}

	return &GetEndOfSessionOutput{
		Snapshot: &snapshot,
	}, nil
}

// ClearEndOfSession removes the pending snapshot
func (r *storeRepository) ClearEndOfSession(ctx context.Context) error {
	if err := r.store.Delete(ctx, endOfSessionPath); err != nil {
		return fmt.Errorf("failed to clear end-of-session snapshot: %w", err)
	}
	return nil
}
