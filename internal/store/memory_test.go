package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store *Memory
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.store = NewMemory()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) TestSetAndGet() {
	ctx := context.Background()

	err := s.store.Set(ctx, "session/users/abc", []byte(`{"id":"abc"}`))
	s.Require().NoError(err)

	value, err := s.store.Get(ctx, "session/users/abc")
	s.Require().NoError(err)
	s.Equal([]byte(`{"id":"abc"}`), value)
}

func (s *MemoryStoreTestSuite) TestGetMissingPath() {
	_, err := s.store.Get(context.Background(), "never/written")
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *MemoryStoreTestSuite) TestGetReturnsCopy() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "p", []byte(`{"n":1}`)))

	value, err := s.store.Get(ctx, "p")
	s.Require().NoError(err)
	value[0] = 'X'

	again, err := s.store.Get(ctx, "p")
	s.Require().NoError(err)
	s.Equal([]byte(`{"n":1}`), again)
}

func (s *MemoryStoreTestSuite) TestListByPrefix() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "session/leaderboard/a", []byte(`1`)))
	s.Require().NoError(s.store.Set(ctx, "session/leaderboard/b", []byte(`2`)))
	s.Require().NoError(s.store.Set(ctx, "session/chat/1", []byte(`3`)))

	values, err := s.store.List(ctx, "session/leaderboard/")
	s.Require().NoError(err)
	s.Require().Len(values, 2)
}

func (s *MemoryStoreTestSuite) TestSubscribeDeliversMatchingWrites() {
	ctx := context.Background()

	events, cancel, err := s.store.Subscribe(ctx, "games/*")
	s.Require().NoError(err)
	defer cancel()

	s.Require().NoError(s.store.Set(ctx, "activeGame", []byte(`{"kind":"dice"}`)))
	s.Require().NoError(s.store.Set(ctx, "games/dice/state", []byte(`{"phase":"betting"}`)))

	// Memory delivery is synchronous, the matching event is already buffered
	event := <-events
	s.Equal("games/dice/state", event.Path)
	s.Equal([]byte(`{"phase":"betting"}`), event.Value)
}

func (s *MemoryStoreTestSuite) TestSubscribeDeliversDeleteAsNil() {
	ctx := context.Background()

	events, cancel, err := s.store.Subscribe(ctx, "session/endOfSession")
	s.Require().NoError(err)
	defer cancel()

	s.Require().NoError(s.store.Set(ctx, "session/endOfSession", []byte(`{"active":true}`)))
	s.Require().NoError(s.store.Delete(ctx, "session/endOfSession"))

	first := <-events
	s.NotNil(first.Value)

	second := <-events
	s.Nil(second.Value)
}

func (s *MemoryStoreTestSuite) TestCancelStopsDelivery() {
	ctx := context.Background()

	events, cancel, err := s.store.Subscribe(ctx, "activeGame")
	s.Require().NoError(err)
	cancel()

	s.Require().NoError(s.store.Set(ctx, "activeGame", []byte(`{}`)))

	_, open := <-events
	s.False(open)
}

func (s *MemoryStoreTestSuite) TestMatchPattern() {
	s.True(MatchPattern("games/*", "games/wheel/state"))
	s.True(MatchPattern("activeGame", "activeGame"))
	s.False(MatchPattern("games/*", "session/chat/1"))
	s.False(MatchPattern("activeGame", "activeGame2"))
}
