package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/parlor/internal/models"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

// Define errors
var (
	ErrNotDealer          = errors.New("dealer secret mismatch")
	ErrInvalidBankroll    = errors.New("starting bankroll is not a preset value")
	ErrParticipantUnknown = errors.New("participant not registered")
	ErrEmptyMessage       = errors.New("chat message cannot be empty")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new session registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// Register creates a participant with the session's starting bankroll, or
// restores the existing record when the ID was seen before. Re-registration
// never resets bankroll or role, which is what makes reconnect safe.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID are required")
	}
	if input.Name == "" {
		return nil, errors.New("name is required")
	}

	existing, err := s.config.SessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err == nil {
		existing.LastActiveAt = s.config.Clock.Now()
		if err := s.config.SessionRepo.SaveParticipant(ctx, &sessionRepo.SaveParticipantInput{
			Participant: existing,
		}); err != nil {
			return nil, err
		}
		return &RegisterOutput{
			Participant: existing,
			Restored:    true,
		}, nil
	}
	if !errors.Is(err, sessionRepo.ErrParticipantNotFound) {
		return nil, err
	}

	settings, err := s.config.SessionRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	role := models.RolePlayer
	if s.config.DealerSecret != "" && input.DealerSecret == s.config.DealerSecret {
		role = models.RoleDealer
	}

	participant := &models.Participant{
		ID:           input.ParticipantID,
		DisplayName:  input.Name,
		Bankroll:     settings.Settings.StartingBankroll,
		Role:         role,
		LastActiveAt: s.config.Clock.Now(),
	}

	if err := s.config.SessionRepo.SaveParticipant(ctx, &sessionRepo.SaveParticipantInput{
		Participant: participant,
	}); err != nil {
		return nil, err
	}

	if err := s.writeLeaderboardEntry(ctx, participant); err != nil {
		return nil, err
	}

	return &RegisterOutput{
		Participant: participant,
	}, nil
}

// UpdateLeaderboard projects a settled bankroll change onto the leaderboard
func (s *service) UpdateLeaderboard(ctx context.Context, input *UpdateLeaderboardInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID are required")
	}

	participant, err := s.config.SessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrParticipantNotFound) {
			return ErrParticipantUnknown
		}
		return err
	}

	participant.Bankroll = input.NewBankroll
	return s.writeLeaderboardEntry(ctx, participant)
}

// GetLeaderboard reads the leaderboard, optionally capped to the display view
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	output, err := s.config.SessionRepo.GetLeaderboard(ctx, &sessionRepo.GetLeaderboardInput{})
	if err != nil {
		return nil, err
	}

	entries := output.Entries
	if input != nil && input.TopOnly && len(entries) > models.LeaderboardSize {
		entries = entries[:models.LeaderboardSize]
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// ResetAll sets every participant's bankroll to a preset value, rewrites the
// leaderboard to match, zeroes the session stats, and records the new
// starting bankroll for future registrations. Dealer only.
func (s *service) ResetAll(ctx context.Context, input *ResetAllInput) (*ResetAllOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.DealerSecret != s.config.DealerSecret {
		return nil, ErrNotDealer
	}
	if !models.ValidStartingBankroll(input.StartingBankroll) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBankroll, input.StartingBankroll)
	}

	roster, err := s.config.SessionRepo.ListParticipants(ctx, &sessionRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	for _, participant := range roster.Participants {
		participant.Bankroll = input.StartingBankroll
		if err := s.config.SessionRepo.SaveParticipant(ctx, &sessionRepo.SaveParticipantInput{
			Participant: participant,
		}); err != nil {
			return nil, err
		}
		if err := s.writeLeaderboardEntry(ctx, participant); err != nil {
			return nil, err
		}
	}

	if err := s.config.SessionRepo.SaveStats(ctx, &sessionRepo.SaveStatsInput{
		Stats: &models.SessionStats{},
	}); err != nil {
		return nil, err
	}

	if err := s.config.SessionRepo.SaveSettings(ctx, &sessionRepo.SaveSettingsInput{
		Settings: &models.Settings{StartingBankroll: input.StartingBankroll},
	}); err != nil {
		return nil, err
	}

	return &ResetAllOutput{
		ResetCount: len(roster.Participants),
	}, nil
}

// AppendChat appends a message to the shared chat log
func (s *service) AppendChat(ctx context.Context, input *AppendChatInput) (*AppendChatOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID are required")
	}
	if input.Text == "" {
		return nil, ErrEmptyMessage
	}

	participant, err := s.config.SessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantUnknown
		}
		return nil, err
	}

	message := &models.ChatMessage{
		ID:            s.config.UUIDGenerator.NewUUID(),
		ParticipantID: participant.ID,
		Name:          participant.DisplayName,
		Text:          input.Text,
		SentAt:        s.config.Clock.Now(),
	}

	if err := s.config.SessionRepo.AppendChatMessage(ctx, &sessionRepo.AppendChatMessageInput{
		Message: message,
	}); err != nil {
		return nil, err
	}

	return &AppendChatOutput{
		Message: message,
	}, nil
}

// GetChatLog reads the retained chat log oldest-first
func (s *service) GetChatLog(ctx context.Context) (*GetChatLogOutput, error) {
	output, err := s.config.SessionRepo.GetChatLog(ctx, &sessionRepo.GetChatLogInput{})
	if err != nil {
		return nil, err
	}
	return &GetChatLogOutput{
		Messages: output.Messages,
	}, nil
}

// RosterSnapshot projects the full roster sorted by bankroll descending.
// The read is a single snapshot of the store, so the result can lag a
// concurrent settlement, which the consistency model accepts.
func (s *service) RosterSnapshot(ctx context.Context) (*RosterSnapshotOutput, error) {
	roster, err := s.config.SessionRepo.ListParticipants(ctx, &sessionRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	players := make([]models.LeaderboardEntry, 0, len(roster.Participants))
	now := s.config.Clock.Now()
	for _, participant := range roster.Participants {
		players = append(players, models.LeaderboardEntry{
			ParticipantID: participant.ID,
			Name:          participant.DisplayName,
			Bankroll:      participant.Bankroll,
			UpdatedAt:     now,
		})
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Bankroll != players[j].Bankroll {
			return players[i].Bankroll > players[j].Bankroll
		}
		return players[i].ParticipantID < players[j].ParticipantID
	})

	return &RosterSnapshotOutput{
		Players: players,
	}, nil
}

func (s *service) writeLeaderboardEntry(ctx context.Context, participant *models.Participant) error {
	return s.config.SessionRepo.SaveLeaderboardEntry(ctx, &sessionRepo.SaveLeaderboardEntryInput{
		Entry: &models.LeaderboardEntry{
			ParticipantID: participant.ID,
			Name:          participant.DisplayName,
			Bankroll:      participant.Bankroll,
			UpdatedAt:     s.config.Clock.Now(),
		},
	})
}
