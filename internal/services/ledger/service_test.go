package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/parlor/internal/games"
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/store"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	roundRepo   roundRepo.Repository
	sessionRepo sessionRepo.Repository
	service     Service
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	memStore := store.NewMemory()

	rr, err := roundRepo.New(&roundRepo.Config{Store: memStore})
	s.Require().NoError(err)
	s.roundRepo = rr

	sr, err := sessionRepo.New(&sessionRepo.Config{Store: memStore})
	s.Require().NoError(err)
	s.sessionRepo = sr

	svc, err := New(&Config{
		RoundRepo:   rr,
		SessionRepo: sr,
	})
	s.Require().NoError(err)
	s.service = svc

	s.addParticipant("p1", 1000)
	s.openRound(models.GameKindWheel, 3, models.PhaseBetting)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) addParticipant(id string, bankroll int) {
	err := s.sessionRepo.SaveParticipant(s.ctx, &sessionRepo.SaveParticipantInput{
		Participant: &models.Participant{
			ID:          id,
			DisplayName: id,
			Bankroll:    bankroll,
			Role:        models.RolePlayer,
		},
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) openRound(kind models.GameKind, number int, phase models.Phase) {
	err := s.roundRepo.SetActiveGame(s.ctx, &roundRepo.SetActiveGameInput{
		ActiveGame: &models.ActiveGame{Kind: kind, ActivatedAt: time.Now()},
	})
	s.Require().NoError(err)

	err = s.roundRepo.SaveRound(s.ctx, &roundRepo.SaveRoundInput{
		Round: &models.GameRound{
			Kind:                   kind,
			RoundNumber:            number,
			Phase:                  phase,
			BettingWindowRemaining: models.DefaultBettingWindow,
		},
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) setPhase(kind models.GameKind, phase models.Phase) {
	round, err := s.roundRepo.GetRound(s.ctx, &roundRepo.GetRoundInput{Kind: kind})
	s.Require().NoError(err)
	round.Phase = phase
	err = s.roundRepo.SaveRound(s.ctx, &roundRepo.SaveRoundInput{Round: round})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestStageAccumulates() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        50,
	})
	s.Require().NoError(err)

	output, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        25,
	})
	s.Require().NoError(err)
	s.Equal(75, output.Pending["red"])
	s.Equal(75, output.PendingTotal)
}

func (s *LedgerServiceTestSuite) TestStageRejectsNonPositiveAmount() {
	for _, amount := range []int{0, -10} {
		_, err := s.service.Stage(s.ctx, &StageInput{
			ParticipantID: "p1",
			Kind:          models.GameKindWheel,
			BetType:       "red",
			Amount:        amount,
		})
		s.Require().ErrorIs(err, ErrNonPositiveAmount)
	}
}

func (s *LedgerServiceTestSuite) TestStageRejectsUnknownBetType() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "triple:4",
		Amount:        10,
	})
	s.Require().ErrorIs(err, games.ErrUnknownBetType)
}

func (s *LedgerServiceTestSuite) TestStageRejectsOutsideBettingPhase() {
	s.setPhase(models.GameKindWheel, models.PhaseLocked)

	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        10,
	})
	s.Require().ErrorIs(err, ErrWrongPhase)
}

func (s *LedgerServiceTestSuite) TestStageRejectsWithoutActiveRound() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindDice,
		BetType:       "small",
		Amount:        10,
	})
	s.Require().ErrorIs(err, ErrNoActiveRound)
}

func (s *LedgerServiceTestSuite) TestStageEnforcesBankrollCeiling() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        800,
	})
	s.Require().NoError(err)

	// 800 pending + 300 would exceed the 1000 bankroll; the stake is
	// rejected outright, never clamped
	_, err = s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "straight:17",
		Amount:        300,
	})
	s.Require().ErrorIs(err, ErrInsufficientBankroll)

	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Equal(800, bets.Record.Pending.Total())
	s.Zero(bets.Record.Pending["straight:17"])
}

func (s *LedgerServiceTestSuite) TestClearSingleBetType() {
	for betType, amount := range map[string]int{"red": 50, "straight:17": 10} {
		_, err := s.service.Stage(s.ctx, &StageInput{
			ParticipantID: "p1",
			Kind:          models.GameKindWheel,
			BetType:       betType,
			Amount:        amount,
		})
		s.Require().NoError(err)
	}

	err := s.service.Clear(s.ctx, &ClearInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
	})
	s.Require().NoError(err)

	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Zero(bets.Record.Pending["red"])
	s.Equal(10, bets.Record.Pending["straight:17"])
}

func (s *LedgerServiceTestSuite) TestClearAllLeavesActiveUntouched() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        100,
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)

	// Next window: stage more, then clear everything pending
	s.openRound(models.GameKindWheel, 4, models.PhaseBetting)
	_, err = s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "black",
		Amount:        40,
	})
	s.Require().NoError(err)

	err = s.service.Clear(s.ctx, &ClearInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)

	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Zero(bets.Record.Pending.Total())
	s.Equal(100, bets.Record.Active["red"])
}

func (s *LedgerServiceTestSuite) TestClearIsANoOpWithoutARecord() {
	err := s.service.Clear(s.ctx, &ClearInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestCommitDebitsImmediately() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        150,
	})
	s.Require().NoError(err)

	output, err := s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Equal(150, output.DebitedTotal)
	s.Equal(850, output.NewBankroll)
	s.Equal(150, output.Committed["red"])

	participant, err := s.sessionRepo.GetParticipant(s.ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Equal(850, participant.Bankroll)

	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Zero(bets.Record.Pending.Total())
	s.Equal(150, bets.Record.Active["red"])
}

func (s *LedgerServiceTestSuite) TestCommitOncePerBettingWindow() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        50,
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)

	_, err = s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "black",
		Amount:        25,
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().ErrorIs(err, ErrAlreadyCommitted)

	// A new round number reopens the commit gate
	s.openRound(models.GameKindWheel, 4, models.PhaseBetting)
	output, err := s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Equal(25, output.Committed["black"])
}

func (s *LedgerServiceTestSuite) TestCommitIsAdditiveAcrossWindows() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        50,
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)

	s.openRound(models.GameKindWheel, 4, models.PhaseBetting)
	_, err = s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        30,
	})
	s.Require().NoError(err)
	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)

	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Equal(80, bets.Record.Active["red"])
}

func (s *LedgerServiceTestSuite) TestCommitRejectsEmptyPending() {
	_, err := s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().ErrorIs(err, ErrNothingToCommit)
}

func (s *LedgerServiceTestSuite) TestCommitRejectsOutsideBettingPhase() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        50,
	})
	s.Require().NoError(err)

	s.setPhase(models.GameKindWheel, models.PhaseLocked)

	_, err = s.service.Commit(s.ctx, &CommitInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().ErrorIs(err, ErrWrongPhase)
}

func (s *LedgerServiceTestSuite) TestStageRejectsUnknownParticipant() {
	_, err := s.service.Stage(s.ctx, &StageInput{
		ParticipantID: "ghost",
		Kind:          models.GameKindWheel,
		BetType:       "red",
		Amount:        10,
	})
	s.Require().ErrorIs(err, ErrParticipantUnknown)
}

func (s *LedgerServiceTestSuite) TestGetBetsReturnsEmptyPoolsWhenNeverStaged() {
	bets, err := s.service.GetBets(s.ctx, &GetBetsInput{
		ParticipantID: "p1",
		Kind:          models.GameKindWheel,
	})
	s.Require().NoError(err)
	s.Zero(bets.Record.Pending.Total())
	s.Zero(bets.Record.Active.Total())
	s.Equal(-1, bets.Record.CommittedRound)
}
