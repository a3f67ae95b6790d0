package round

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/parlor/internal/models"
	"github.com/KirkDiggler/parlor/internal/store"
)

const (
	// Store paths owned by this repository
	activeGamePath  = "activeGame"
	gamesPathPrefix = "games/"
)

// Define errors
var (
	ErrRoundNotFound     = errors.New("round not found")
	ErrBetRecordNotFound = errors.New("bet record not found")
)

// Config holds configuration for the store-backed round repository
type Config struct {
	// Store is the shared session store
	Store store.Store
}

// storeRepository implements the Repository interface over the shared store
type storeRepository struct {
	store store.Store
}

// New creates a new store-backed round repository
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

func statePath(kind models.GameKind) string {
	return gamesPathPrefix + string(kind) + "/state"
}

func betPath(kind models.GameKind, participantID string) string {
	return gamesPathPrefix + string(kind) + "/bets/" + participantID
}

// SetActiveGame writes the global selector
func (r *storeRepository) SetActiveGame(ctx context.Context, input *SetActiveGameInput) error {
	if input == nil || input.ActiveGame == nil {
		return errors.New("input and active game cannot be nil")
	}

	if !input.ActiveGame.Kind.Valid() {
		return fmt.Errorf("invalid game kind %q", input.ActiveGame.Kind)
	}

	data, err := json.Marshal(input.ActiveGame)
	if err != nil {
		return fmt.Errorf("failed to marshal active game: %w", err)
	}

	if err := r.store.Set(ctx, activeGamePath, data); err != nil {
		return fmt.Errorf("failed to set active game: %w", err)
	}

	return nil
}

// GetActiveGame fetches the global selector, nil when the table is idle
func (r *storeRepository) GetActiveGame(ctx context.Context) (*GetActiveGameOutput, error) {
	data, err := r.store.Get(ctx, activeGamePath)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &GetActiveGameOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}

	var active models.ActiveGame
	if err := json.Unmarshal(data, &active); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active game: %w", err)
	}

	return &GetActiveGameOutput{
		ActiveGame: &active,
	}, nil
}

// ClearActiveGame nulls the global selector
func (r *storeRepository) ClearActiveGame(ctx context.Context) error {
	if err := r.store.Delete(ctx, activeGamePath); err != nil {
		return fmt.Errorf("failed to clear active game: %w", err)
	}
	return nil
}

// SaveRound persists round state for the round's game kind
func (r *storeRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return errors.New("input and round cannot be nil")
	}

	if !input.Round.Kind.Valid() {
		return fmt.Errorf("invalid game kind %q", input.Round.Kind)
	}

	data, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	if err := r.store.Set(ctx, statePath(input.Round.Kind), data); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// GetRound fetches round state for a game
func (r *storeRepository) GetRound(ctx context.Context, input *GetRoundInput) (*models.GameRound, error) {
	if input == nil || !input.Kind.Valid() {
		return nil, errors.New("input and game kind are required")
	}

	data, err := r.store.Get(ctx, statePath(input.Kind))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	var round models.GameRound
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}

	return &round, nil
}

// SaveBetRecord persists one participant's bets for a game
func (r *storeRepository) SaveBetRecord(ctx context.Context, input *SaveBetRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	if !input.Kind.Valid() {
		return fmt.Errorf("invalid game kind %q", input.Kind)
	}

	if input.Record.ParticipantID == "" {
		return errors.New("participant ID cannot be empty")
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal bet record: %w", err)
	}

	if err := r.store.Set(ctx, betPath(input.Kind, input.Record.ParticipantID), data); err != nil {
		return fmt.Errorf("failed to save bet record: %w", err)
	}

	return nil
}

// GetBetRecord fetches one participant's bets for a game
func (r *storeRepository) GetBetRecord(ctx context.Context, input *GetBetRecordInput) (*models.BetRecord, error) {
	if input == nil || !input.Kind.Valid() || input.ParticipantID == "" {
		return nil, errors.New("input, game kind and participant ID are required")
	}

	data, err := r.store.Get(ctx, betPath(input.Kind, input.ParticipantID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBetRecordNotFound
		}
		return nil, fmt.Errorf("failed to get bet record: %w", err)
	}

	var record models.BetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bet record: %w", err)
	}

	return &record, nil
}

// ListBetRecords fetches every participant's bets for a game
func (r *storeRepository) ListBetRecords(ctx context.Context, input *ListBetRecordsInput) (*ListBetRecordsOutput, error) {
	if input == nil || !input.Kind.Valid() {
		return nil, errors.New("input and game kind are required")
	}

	values, err := r.store.List(ctx, gamesPathPrefix+string(input.Kind)+"/bets/")
	if err != nil {
		return nil, fmt.Errorf("failed to list bet records: %w", err)
	}

	records := make([]*models.BetRecord, 0, len(values))
	for path, data := range values {
		var record models.BetRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bet record at %s: %w", path, err)
		}
		records = append(records, &record)
	}

	return &ListBetRecordsOutput{
		Records: records,
	}, nil
}

// ClearBetRecords deletes every bet record for a game
func (r *storeRepository) ClearBetRecords(ctx context.Context, input *ClearBetRecordsInput) error {
	if input == nil || !input.Kind.Valid() {
		return errors.New("input and game kind are required")
	}

	prefix := gamesPathPrefix + string(input.Kind) + "/bets/"
	values, err := r.store.List(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to list bet records: %w", err)
	}

	for path := range values {
		if err := r.store.Delete(ctx, path); err != nil {
			return fmt.Errorf("failed to clear bet record at %s: %w", path, err)
		}
	}

	return nil
}
