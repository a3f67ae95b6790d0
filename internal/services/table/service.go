package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/parlor/internal/games"
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/services/payout"
)

// Define errors
var (
	ErrNotDealer    = errors.New("dealer secret mismatch")
	ErrNoActiveGame = errors.New("no game is active")
	ErrInvalidKind  = errors.New("unknown game kind")
	ErrWrongPhase   = errors.New("round is in the wrong phase")
)

// service implements the Service interface
type service struct {
	config *Config
	window int
}

// New creates a new table service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoundRepo == nil {
		return nil, errors.New("round repository cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.Payout == nil {
		return nil, errors.New("payout engine cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("registry service cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	window := cfg.BettingWindow
	if window <= 0 {
		window = models.DefaultBettingWindow
	}

	return &service{
		config: cfg,
		window: window,
	}, nil
}

func (s *service) gate(secret string) error {
	if secret != s.config.DealerSecret {
		return ErrNotDealer
	}
	return nil
}

// Activate puts a game live: sets the selector, clears any pending
// end-of-session snapshot, drops stale bet records, and opens round zero.
// Activating over another live game abandons it the same way a deactivate
// would, committed stakes included.
func (s *service) Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := s.gate(input.DealerSecret); err != nil {
		return nil, err
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, input.Kind)
	}

	previous, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return nil, err
	}
	if previous.ActiveGame != nil && previous.ActiveGame.Kind != input.Kind {
		if err := s.config.RoundRepo.ClearBetRecords(ctx, &roundRepo.ClearBetRecordsInput{
			Kind: previous.ActiveGame.Kind,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.config.RoundRepo.ClearBetRecords(ctx, &roundRepo.ClearBetRecordsInput{
		Kind: input.Kind,
	}); err != nil {
		return nil, err
	}

	if err := s.config.SessionRepo.ClearEndOfSession(ctx); err != nil {
		return nil, err
	}

	round := &models.GameRound{
		Kind:                   input.Kind,
		RoundNumber:            0,
		Phase:                  models.PhaseBetting,
		BettingWindowRemaining: s.window,
		ResultHistory:          []string{},
		StartedAt:              s.config.Clock.Now(),
	}

	if err := s.config.RoundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	if err := s.config.RoundRepo.SetActiveGame(ctx, &roundRepo.SetActiveGameInput{
		ActiveGame: &models.ActiveGame{
			Kind:        input.Kind,
			ActivatedAt: s.config.Clock.Now(),
		},
	}); err != nil {
		return nil, err
	}

	return &ActivateOutput{Round: round}, nil
}

// Deactivate ends the session for the live game. The full roster is read
// as one snapshot and written as the end-of-session summary; committed but
// unresolved stakes stay forfeited, the same as an abandoned table.
func (s *service) Deactivate(ctx context.Context, input *DeactivateInput) (*DeactivateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := s.gate(input.DealerSecret); err != nil {
		return nil, err
	}

	active, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return nil, err
	}
	if active.ActiveGame == nil {
		return nil, ErrNoActiveGame
	}

	roster, err := s.config.Registry.RosterSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.config.SessionRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &models.EndOfSession{
		Active:           true,
		Players:          roster.Players,
		StartingBankroll: settings.Settings.StartingBankroll,
		Timestamp:        s.config.Clock.Now(),
	}

	if err := s.config.SessionRepo.SaveEndOfSession(ctx, &sessionRepo.SaveEndOfSessionInput{
		Snapshot: snapshot,
	}); err != nil {
		return nil, err
	}

	if err := s.config.RoundRepo.ClearBetRecords(ctx, &roundRepo.ClearBetRecordsInput{
		Kind: active.ActiveGame.Kind,
	}); err != nil {
		return nil, err
	}

	if err := s.config.RoundRepo.ClearActiveGame(ctx); err != nil {
		return nil, err
	}

	return &DeactivateOutput{Snapshot: snapshot}, nil
}

// StartRound opens the next betting window. The round number was already
// advanced by the resolve that ended the previous round.
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := s.gate(input.DealerSecret); err != nil {
		return nil, err
	}

	_, round, err := s.liveRound(ctx)
	if err != nil {
		return nil, err
	}
	if round.Phase != models.PhaseResolved {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, round.Phase)
	}

	round.Phase = models.PhaseBetting
	round.Outcome = nil
	round.BettingWindowRemaining = s.window
	round.StartedAt = s.config.Clock.Now()

	if err := s.config.RoundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	return &StartRoundOutput{Round: round}, nil
}

// Tick advances the countdown by one second while betting. At zero the
// round locks; resolution stays a separate dealer action.
func (s *service) Tick(ctx context.Context) (*TickOutput, error) {
	_, round, err := s.liveRound(ctx)
	if err != nil {
		return nil, err
	}

	if round.Phase != models.PhaseBetting {
		return &TickOutput{
			Phase:     round.Phase,
			Remaining: round.BettingWindowRemaining,
		}, nil
	}

	if round.BettingWindowRemaining > 0 {
		round.BettingWindowRemaining--
	}
	if round.BettingWindowRemaining == 0 {
		round.Phase = models.PhaseLocked
	}

	if err := s.config.RoundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	return &TickOutput{
		Phase:     round.Phase,
		Remaining: round.BettingWindowRemaining,
	}, nil
}

// Resolve validates the outcome, settles every active bet, then publishes
// the resolved round. Settlement runs first and validates its entire input
// set up front, so an out-of-domain outcome can never leave a partial
// payout behind.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := s.gate(input.DealerSecret); err != nil {
		return nil, err
	}

	active, round, err := s.liveRound(ctx)
	if err != nil {
		return nil, err
	}
	if round.Phase != models.PhaseBetting && round.Phase != models.PhaseLocked {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, round.Phase)
	}

	if err := games.ValidateOutcome(active.Kind, input.Outcome); err != nil {
		return nil, err
	}

	settlement, err := s.config.Payout.Settle(ctx, &payout.SettleInput{
		Kind:    active.Kind,
		Outcome: input.Outcome,
	})
	if err != nil {
		return nil, err
	}

	round.Outcome = input.Outcome
	round.Phase = models.PhaseResolved
	round.RoundNumber++
	round.ResultHistory = append(
		[]string{games.ResultToken(active.Kind, input.Outcome)},
		round.ResultHistory...,
	)
	if len(round.ResultHistory) > models.ResultHistoryCap {
		round.ResultHistory = round.ResultHistory[:models.ResultHistoryCap]
	}

	if err := s.config.RoundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	return &ResolveOutput{
		Round:      round,
		Settlement: settlement,
	}, nil
}

// GetState reads the selector and live round for display
func (s *service) GetState(ctx context.Context) (*GetStateOutput, error) {
	active, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return nil, err
	}
	if active.ActiveGame == nil {
		return &GetStateOutput{}, nil
	}

	round, err := s.config.RoundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		Kind: active.ActiveGame.Kind,
	})
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{
		ActiveGame: active.ActiveGame,
		Round:      round,
	}, nil
}

// Run drives the countdown at one-second intervals until the context ends.
// Ticks while the table is idle are no-ops.
func (s *service) Run(ctx context.Context) error {
	waiter := s.config.Clock.TickerFunc(ctx, time.Second, func() error {
		if _, err := s.Tick(ctx); err != nil && !errors.Is(err, ErrNoActiveGame) {
			return err
		}
		return nil
	})

	err := waiter.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (s *service) liveRound(ctx context.Context) (*models.ActiveGame, *models.GameRound, error) {
	active, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return nil, nil, err
	}
	if active.ActiveGame == nil {
		return nil, nil, ErrNoActiveGame
	}

	round, err := s.config.RoundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		Kind: active.ActiveGame.Kind,
	})
	if err != nil {
		return nil, nil, err
	}

	return active.ActiveGame, round, nil
}
