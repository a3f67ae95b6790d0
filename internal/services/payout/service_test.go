package payout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/store"
)

type PayoutServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	roundRepo   roundRepo.Repository
	sessionRepo sessionRepo.Repository
	service     Service
}

func (s *PayoutServiceTestSuite) SetupTest() {
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
}

func TestPayoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayoutServiceTestSuite))
}

func (s *PayoutServiceTestSuite) addParticipant(id string, bankroll int) {
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

func (s *PayoutServiceTestSuite) addActiveBets(kind models.GameKind, participantID string, active models.BetMap) {
	err := s.roundRepo.SaveBetRecord(s.ctx, &roundRepo.SaveBetRecordInput{
		Kind: kind,
		Record: &models.BetRecord{
			ParticipantID:  participantID,
			Pending:        models.BetMap{},
			Active:         active,
			CommittedRound: 0,
		},
	})
	s.Require().NoError(err)
}

func (s *PayoutServiceTestSuite) TestEvenMoneyWin() {
	// 50 on red, already debited at commit; red hits and returns 100
	s.addParticipant("p1", 950)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"red": 50})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 18},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)
	s.Equal(100, output.Results[0].Credit)
	s.Equal(1050, output.Results[0].NewBankroll)

	participant, err := s.sessionRepo.GetParticipant(s.ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Equal(1050, participant.Bankroll)
}

func (s *PayoutServiceTestSuite) TestStraightUpLongShot() {
	s.addParticipant("p1", 990)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"straight:17": 10})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 17},
	})
	s.Require().NoError(err)
	s.Equal(360, output.Results[0].Credit)
	s.Equal(360, output.BiggestWin)
}

func (s *PayoutServiceTestSuite) TestBankerCommission() {
	s.addParticipant("p1", 900)
	s.addActiveBets(models.GameKindCards, "p1", models.BetMap{"banker": 100})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind: models.GameKindCards,
		Outcome: &models.Outcome{
			Player: &models.Hand{Ranks: []int{2, 3}},
			Banker: &models.Hand{Ranks: []int{4, 3}},
		},
	})
	s.Require().NoError(err)
	s.Equal(195, output.Results[0].Credit)
}

func (s *PayoutServiceTestSuite) TestLossZeroesActiveWithoutCredit() {
	s.addParticipant("p1", 950)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"red": 50})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 0},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)
	s.Zero(output.Results[0].Credit)
	s.Equal(950, output.Results[0].NewBankroll)

	record, err := s.roundRepo.GetBetRecord(s.ctx, &roundRepo.GetBetRecordInput{
		Kind:          models.GameKindWheel,
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Zero(record.Active.Total())
}

func (s *PayoutServiceTestSuite) TestMixedBetsSettleIndependently() {
	s.addParticipant("p1", 0)
	s.addActiveBets(models.GameKindDice, "p1", models.BetMap{
		"small":     30, // 4+5+6 = 15 is big, loses
		"total:15":  10, // hits at 18/1 total return
		"double:5":  20, // one five only, loses
		"anytriple": 5,  // loses
	})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindDice,
		Outcome: &models.Outcome{Dice: []int{4, 5, 6}},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)
	s.Equal(180, output.Results[0].Credit)
	s.Equal(65, output.TotalWagered)

	won := map[string]bool{}
	for _, bet := range output.Results[0].Bets {
		won[bet.BetType] = bet.Won
	}
	s.True(won["total:15"])
	s.False(won["small"])
	s.False(won["double:5"])
	s.False(won["anytriple"])
}

func (s *PayoutServiceTestSuite) TestEvaluateIsOrderIndependent() {
	outcome := &models.Outcome{WheelNumber: 8}
	active := models.BetMap{
		"red":              40,
		"straight:8":       5,
		"split:8-11":       10,
		"dozen:1":          25,
		"black":            15,
		"corner:7-8-10-11": 20,
	}

	baseline, baselineTotal, err := Evaluate(models.GameKindWheel, active, outcome)
	s.Require().NoError(err)

	// Rebuilding the map changes Go's iteration order between runs;
	// the evaluation must not care
	for i := 0; i < 10; i++ {
		rebuilt := models.BetMap{}
		for betType, stake := range active {
			rebuilt[betType] = stake
		}
		results, total, err := Evaluate(models.GameKindWheel, rebuilt, outcome)
		s.Require().NoError(err)
		s.Equal(baselineTotal, total)
		s.Equal(baseline, results)
	}
}

func (s *PayoutServiceTestSuite) TestSettleOrdersParticipantsByID() {
	for _, id := range []string{"zed", "amy", "mid"} {
		s.addParticipant(id, 500)
		s.addActiveBets(models.GameKindWheel, id, models.BetMap{"odd": 10})
	}

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 9},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 3)
	s.Equal("amy", output.Results[0].ParticipantID)
	s.Equal("mid", output.Results[1].ParticipantID)
	s.Equal("zed", output.Results[2].ParticipantID)
}

func (s *PayoutServiceTestSuite) TestSettleSkipsEmptyActivePools() {
	s.addParticipant("p1", 950)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"red": 50})
	s.addParticipant("p2", 1000)
	s.addActiveBets(models.GameKindWheel, "p2", models.BetMap{})

	output, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 18},
	})
	s.Require().NoError(err)
	s.Len(output.Results, 1)
	s.Equal("p1", output.Results[0].ParticipantID)
}

func (s *PayoutServiceTestSuite) TestSettleRejectsInvalidOutcomeBeforeAnyWrite() {
	s.addParticipant("p1", 950)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"red": 50})

	_, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 99},
	})
	s.Require().Error(err)

	// Nothing was mutated
	participant, err := s.sessionRepo.GetParticipant(s.ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Equal(950, participant.Bankroll)

	record, err := s.roundRepo.GetBetRecord(s.ctx, &roundRepo.GetBetRecordInput{
		Kind:          models.GameKindWheel,
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Equal(50, record.Active["red"])
}

func (s *PayoutServiceTestSuite) TestSettleAllOrNothingOnBadRecord() {
	s.addParticipant("alpha", 950)
	s.addActiveBets(models.GameKindWheel, "alpha", models.BetMap{"red": 50})
	// A corrupted record with a token from the wrong game
	s.addParticipant("beta", 950)
	s.addActiveBets(models.GameKindWheel, "beta", models.BetMap{"anytriple": 50})

	_, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 18},
	})
	s.Require().Error(err)

	// alpha's winning bet must not have been paid
	participant, err := s.sessionRepo.GetParticipant(s.ctx, &sessionRepo.GetParticipantInput{
		ParticipantID: "alpha",
	})
	s.Require().NoError(err)
	s.Equal(950, participant.Bankroll)
}

func (s *PayoutServiceTestSuite) TestSettleUpdatesStatsAndLeaderboard() {
	s.addParticipant("p1", 940)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"odd": 50, "straight:17": 10})

	_, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 17},
	})
	s.Require().NoError(err)

	stats, err := s.sessionRepo.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(60, stats.Stats.TotalWagered)
	s.Equal(1, stats.Stats.RoundsPlayed)
	s.Equal(360, stats.Stats.BiggestWin)

	board, err := s.sessionRepo.GetLeaderboard(s.ctx, &sessionRepo.GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 1)
	s.Equal(1400, board.Entries[0].Bankroll)
}

func (s *PayoutServiceTestSuite) TestStatsAccumulateAcrossRounds() {
	s.addParticipant("p1", 950)
	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"red": 50})

	_, err := s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 18},
	})
	s.Require().NoError(err)

	s.addActiveBets(models.GameKindWheel, "p1", models.BetMap{"black": 30})
	_, err = s.service.Settle(s.ctx, &SettleInput{
		Kind:    models.GameKindWheel,
		Outcome: &models.Outcome{WheelNumber: 17},
	})
	s.Require().NoError(err)

	stats, err := s.sessionRepo.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(80, stats.Stats.TotalWagered)
	s.Equal(2, stats.Stats.RoundsPlayed)
	s.Equal(100, stats.Stats.BiggestWin)
}
