package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/parlor/internal/models"
	"github.com/KirkDiggler/parlor/internal/store"
)

type StoreRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *StoreRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	st, err := store.NewRedis(&store.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	repo, err := New(&Config{
		Store: st,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 11, 2, 20, 0, 0, 0, time.UTC)
}

func (s *StoreRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestStoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryTestSuite))
}

func (s *StoreRepositoryTestSuite) TestSaveAndGetParticipant() {
	participant := &models.Participant{
		ID:           "p1",
		DisplayName:  "Alice",
		Bankroll:     1000,
		Role:         models.RolePlayer,
		LastActiveAt: s.testNow,
	}

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: participant,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "p1",
	})
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.DisplayName)
	s.Equal(1000, retrieved.Bankroll)
	s.Equal(models.RolePlayer, retrieved.Role)
	s.Equal(s.testNow.Unix(), retrieved.LastActiveAt.Unix())
}

func (s *StoreRepositoryTestSuite) TestGetMissingParticipant() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "nobody",
	})
	s.Require().ErrorIs(err, ErrParticipantNotFound)
}

func (s *StoreRepositoryTestSuite) TestListParticipants() {
	ctx := context.Background()
	for _, id := range []string{"p1", "p2", "p3"} {
		err := s.repo.SaveParticipant(ctx, &SaveParticipantInput{
			Participant: &models.Participant{ID: id, DisplayName: id, Bankroll: 1000, Role: models.RolePlayer},
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListParticipants(ctx, &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Participants, 3)
}

func (s *StoreRepositoryTestSuite) TestLeaderboardSortsDescending() {
	ctx := context.Background()
	entries := []*models.LeaderboardEntry{
		{ParticipantID: "p1", Name: "Alice", Bankroll: 800, UpdatedAt: s.testNow},
		{ParticipantID: "p2", Name: "Bob", Bankroll: 1500, UpdatedAt: s.testNow},
		{ParticipantID: "p3", Name: "Cara", Bankroll: 1100, UpdatedAt: s.testNow},
	}
	for _, entry := range entries {
		err := s.repo.SaveLeaderboardEntry(ctx, &SaveLeaderboardEntryInput{Entry: entry})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetLeaderboard(ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)
	s.Equal("p2", output.Entries[0].ParticipantID)
	s.Equal("p3", output.Entries[1].ParticipantID)
	s.Equal("p1", output.Entries[2].ParticipantID)
}

func (s *StoreRepositoryTestSuite) TestLeaderboardUpsert() {
	ctx := context.Background()
	err := s.repo.SaveLeaderboardEntry(ctx, &SaveLeaderboardEntryInput{
		Entry: &models.LeaderboardEntry{ParticipantID: "p1", Name: "Alice", Bankroll: 1000},
	})
	s.Require().NoError(err)

	err = s.repo.SaveLeaderboardEntry(ctx, &SaveLeaderboardEntryInput{
		Entry: &models.LeaderboardEntry{ParticipantID: "p1", Name: "Alice", Bankroll: 1250},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetLeaderboard(ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Equal(1250, output.Entries[0].Bankroll)
}

func (s *StoreRepositoryTestSuite) TestChatLogTrimsPastCap() {
	ctx := context.Background()
	for i := 0; i < models.ChatLogCap+5; i++ {
		err := s.repo.AppendChatMessage(ctx, &AppendChatMessageInput{
			Message: &models.ChatMessage{
				ID:            "m" + string(rune('a'+i/26)) + string(rune('a'+i%26)),
				ParticipantID: "p1",
				Name:          "Alice",
				Text:          "hello",
				SentAt:        s.testNow.Add(time.Duration(i) * time.Second),
			},
		})
		s.Require().NoError(err)
	}

	log, err := s.repo.GetChatLog(ctx, &GetChatLogInput{})
	s.Require().NoError(err)
	s.Require().Len(log.Messages, models.ChatLogCap)

	// The oldest five were trimmed
	s.Equal(s.testNow.Add(5*time.Second).Unix(), log.Messages[0].SentAt.Unix())
}

func (s *StoreRepositoryTestSuite) TestSettingsDefaultWhenUnset() {
	output, err := s.repo.GetSettings(context.Background())
	s.Require().NoError(err)
	s.Equal(models.DefaultStartingBankroll, output.Settings.StartingBankroll)
}

func (s *StoreRepositoryTestSuite) TestSettingsRoundTrip() {
	ctx := context.Background()
	err := s.repo.SaveSettings(ctx, &SaveSettingsInput{
		Settings: &models.Settings{StartingBankroll: 2500},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetSettings(ctx)
	s.Require().NoError(err)
	s.Equal(2500, output.Settings.StartingBankroll)
}

func (s *StoreRepositoryTestSuite) TestStatsZeroWhenUnset() {
	output, err := s.repo.GetStats(context.Background())
	s.Require().NoError(err)
	s.Equal(0, output.Stats.TotalWagered)
	s.Equal(0, output.Stats.RoundsPlayed)
}

func (s *StoreRepositoryTestSuite) TestEndOfSessionLifecycle() {
	ctx := context.Background()

	output, err := s.repo.GetEndOfSession(ctx)
	s.Require().NoError(err)
	s.Nil(output.Snapshot)

	err = s.repo.SaveEndOfSession(ctx, &SaveEndOfSessionInput{
		Snapshot: &models.EndOfSession{
			Active:           true,
			StartingBankroll: 1000,
			Timestamp:        s.testNow,
		},
	})
	s.Require().NoError(err)

	output, err = s.repo.GetEndOfSession(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(output.Snapshot)
	s.True(output.Snapshot.Active)

	err = s.repo.ClearEndOfSession(ctx)
	s.Require().NoError(err)

	output, err = s.repo.GetEndOfSession(ctx)
	s.Require().NoError(err)
	s.Nil(output.Snapshot)
}
