package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/parlor/internal/games"
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

// Define errors
var (
	ErrNoActiveRound        = errors.New("no active round for this game")
	ErrWrongPhase           = errors.New("betting window is closed")
	ErrNonPositiveAmount    = errors.New("stake must be positive")
	ErrInsufficientBankroll = errors.New("pending stakes would exceed bankroll")
	ErrNothingToCommit      = errors.New("no pending stakes to commit")
	ErrAlreadyCommitted     = errors.New("already committed this betting window")
	ErrParticipantUnknown   = errors.New("participant not registered")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new bet ledger service
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

	return &service{
		config: cfg,
	}, nil
}

// Stage adds to a pending stake. Rejections leave the ledger untouched:
// wrong phase, unknown bet type, non-positive amount, or a pending total
// that would exceed the bankroll.
func (s *service) Stage(ctx context.Context, input *StageInput) (*StageOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID are required")
	}

	if input.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	if _, err := games.ParseBet(input.Kind, input.BetType); err != nil {
		return nil, err
	}

	round, err := s.currentRound(ctx, input.Kind)
	if err != nil {
		return nil, err
	}
	if round.Phase != models.PhaseBetting {
		return nil, fmt.Errorf("%w: phase is %s", ErrWrongPhase, round.Phase)
	}

	participant, err := s.getParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	record, err := s.getOrCreateRecord(ctx, input.Kind, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if record.Pending.Total()+input.Amount > participant.Bankroll {
		return nil, fmt.Errorf("%w: pending %d + %d > bankroll %d",
			ErrInsufficientBankroll, record.Pending.Total(), input.Amount, participant.Bankroll)
	}

	record.Pending[input.BetType] += input.Amount

	if err := s.config.RoundRepo.SaveBetRecord(ctx, &roundRepo.SaveBetRecordInput{
		Kind:   input.Kind,
		Record: record,
	}); err != nil {
		return nil, err
	}

	return &StageOutput{
		Pending:      record.Pending.Clone(),
		PendingTotal: record.Pending.Total(),
	}, nil
}

// Clear zeroes one or all pending bet types for the participant. It never
// touches active bets, and it works in any phase: an uncommitted stake is
// always the participant's to take back.
func (s *service) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID are required")
	}

	record, err := s.config.RoundRepo.GetBetRecord(ctx, &roundRepo.GetBetRecordInput{
		Kind:          input.Kind,
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, roundRepo.ErrBetRecordNotFound) {
			return nil
		}
		return err
	}

	if input.BetType == "" {
		record.Pending = models.BetMap{}
	} else {
		delete(record.Pending, input.BetType)
	}

	return s.config.RoundRepo.SaveBetRecord(ctx, &roundRepo.SaveBetRecordInput{
		Kind:   input.Kind,
		Record: record,
	})
}

// Commit atomically moves every nonzero pending stake into the active pool
// and debits the bankroll immediately. The debit at commit time, not at
// resolution, is deliberate: a committed stake is on the table even if the
// dealer never resolves the round.
func (s *service) Commit(ctx context.Context, input *CommitInput) (*CommitOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID are required")
	}

	round, err := s.currentRound(ctx, input.Kind)
	if err != nil {
		return nil, err
	}
	if round.Phase != models.PhaseBetting {
		return nil, fmt.Errorf("%w: phase is %s", ErrWrongPhase, round.Phase)
	}

	record, err := s.getOrCreateRecord(ctx, input.Kind, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	if record.CommittedRound == round.RoundNumber {
		return nil, ErrAlreadyCommitted
	}

	total := record.Pending.Total()
	if total == 0 {
		return nil, ErrNothingToCommit
	}

	participant, err := s.getParticipant(ctx, input.ParticipantID)
	if err != nil {
		return nil, err
	}
	if total > participant.Bankroll {
		return nil, fmt.Errorf("%w: pending %d > bankroll %d",
			ErrInsufficientBankroll, total, participant.Bankroll)
	}

	committed := record.Pending.Clone()
	for betType, amount := range record.Pending {
		record.Active[betType] += amount
	}
	record.Pending = models.BetMap{}
	record.CommittedRound = round.RoundNumber

	participant.Bankroll -= total

	// The participant owns both writes, so ordering between them only
	// matters for a crash mid-commit; the debit lands first so a torn
	// commit can never mint money.
	if err := s.config.SessionRepo.SaveParticipant(ctx, &sessionRepo.SaveParticipantInput{
		Participant: participant,
	}); err != nil {
		return nil, err
	}

	if err := s.config.RoundRepo.SaveBetRecord(ctx, &roundRepo.SaveBetRecordInput{
		Kind:   input.Kind,
		Record: record,
	}); err != nil {
		return nil, err
	}

	// Reflect the debit on the leaderboard before it is externally visible
	if err := s.config.SessionRepo.SaveLeaderboardEntry(ctx, &sessionRepo.SaveLeaderboardEntryInput{
		Entry: &models.LeaderboardEntry{
			ParticipantID: participant.ID,
			Name:          participant.DisplayName,
			Bankroll:      participant.Bankroll,
			UpdatedAt:     participant.LastActiveAt,
		},
	}); err != nil {
		return nil, err
	}

	return &CommitOutput{
		Committed:    committed,
		DebitedTotal: total,
		NewBankroll:  participant.Bankroll,
	}, nil
}

// GetBets reads a participant's current bet pools
func (s *service) GetBets(ctx context.Context, input *GetBetsInput) (*GetBetsOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID are required")
	}

	record, err := s.getOrCreateRecord(ctx, input.Kind, input.ParticipantID)
	if err != nil {
		return nil, err
	}

	return &GetBetsOutput{
		Record: record,
	}, nil
}

func (s *service) currentRound(ctx context.Context, kind models.GameKind) (*models.GameRound, error) {
	round, err := s.config.RoundRepo.GetRound(ctx, &roundRepo.GetRoundInput{Kind: kind})
	if err != nil {
		if errors.Is(err, roundRepo.ErrRoundNotFound) {
			return nil, ErrNoActiveRound
		}
		return nil, err
	}

	active, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return nil, err
	}
	if active.ActiveGame == nil || active.ActiveGame.Kind != kind {
		return nil, ErrNoActiveRound
	}

	return round, nil
}

func (s *service) getParticipant(ctx context.Context, participantID string) (*models.Participant, error) {
	participant, err := s.config.SessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: participantID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantUnknown
		}
		return nil, err
	}
	return participant, nil
}

func (s *service) getOrCreateRecord(ctx context.Context, kind models.GameKind, participantID string) (*models.BetRecord, error) {
	record, err := s.config.RoundRepo.GetBetRecord(ctx, &roundRepo.GetBetRecordInput{
		Kind:          kind,
		ParticipantID: participantID,
	})
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, roundRepo.ErrBetRecordNotFound) {
		return nil, err
	}

	return &models.BetRecord{
		ParticipantID:  participantID,
		Pending:        models.BetMap{},
		Active:         models.BetMap{},
		CommittedRound: -1,
	}, nil
}
