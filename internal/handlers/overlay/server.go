package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

const (
	// Subscription patterns for the push path. Round state is
	// time-critical during a countdown; everything under games/ is
	// cheap enough to refetch on any change.
	activeGamePattern = "activeGame"
	gamesPattern      = "games/*"
)

// Server maintains the merged snapshot and fans it out to websocket
// clients. It never writes to the store.
type Server struct {
	config   *Config
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	snapshot *Snapshot
	clients  map[*websocket.Conn]struct{}
}

// New creates a new overlay server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if cfg.RoundRepo == nil {
		return nil, errors.New("round repository cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The overlay is an open read-only view
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		snapshot: &Snapshot{},
		clients:  make(map[*websocket.Conn]struct{}),
	}, nil
}

// Run refreshes the snapshot on store events and on a poll interval,
// broadcasting after every change, until the context ends.
func (s *Server) Run(ctx context.Context) error {
	gameEvents, cancelGame, err := s.config.Store.Subscribe(ctx, activeGamePattern)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", activeGamePattern, err)
	}
	defer cancelGame()

	roundEvents, cancelRounds, err := s.config.Store.Subscribe(ctx, gamesPattern)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", gamesPattern, err)
	}
	defer cancelRounds()

	if err := s.refreshAll(ctx); err != nil {
		s.logger.Error("initial snapshot refresh failed", "error", err)
	}
	s.broadcast()

	interval := s.config.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	waiter := s.config.Clock.TickerFunc(ctx, interval, func() error {
		if err := s.refreshPolled(ctx); err != nil {
			s.logger.Error("poll refresh failed", "error", err)
			return nil
		}
		s.broadcast()
		return nil
	}, "overlay-poll")

	for {
		select {
		case <-ctx.Done():
			err := waiter.Wait()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		case _, ok := <-gameEvents:
			if !ok {
				return errors.New("activeGame subscription closed")
			}
			s.refreshPushedAndBroadcast(ctx)
		case _, ok := <-roundEvents:
			if !ok {
				return errors.New("games subscription closed")
			}
			s.refreshPushedAndBroadcast(ctx)
		}
	}
}

func (s *Server) refreshPushedAndBroadcast(ctx context.Context) {
	if err := s.refreshPushed(ctx); err != nil {
		s.logger.Error("push refresh failed", "error", err)
		return
	}
	s.broadcast()
}

// refreshAll rebuilds the whole snapshot
func (s *Server) refreshAll(ctx context.Context) error {
	if err := s.refreshPushed(ctx); err != nil {
		return err
	}
	return s.refreshPolled(ctx)
}

// refreshPushed refetches the time-critical state: selector and round
func (s *Server) refreshPushed(ctx context.Context) error {
	active, err := s.config.RoundRepo.GetActiveGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to read active game: %w", err)
	}

	var round *models.GameRound
	var bets []*models.BetRecord
	if active.ActiveGame != nil {
		round, err = s.config.RoundRepo.GetRound(ctx, &roundRepo.GetRoundInput{Kind: active.ActiveGame.Kind})
		if err != nil {
			// The selector can land before the round state does
			if !errors.Is(err, roundRepo.ErrRoundNotFound) {
				return fmt.Errorf("failed to read round: %w", err)
			}
			round = nil
		}

		records, err := s.config.RoundRepo.ListBetRecords(ctx, &roundRepo.ListBetRecordsInput{
			Kind: active.ActiveGame.Kind,
		})
		if err != nil {
			return fmt.Errorf("failed to read bet records: %w", err)
		}
		bets = records.Records
		sort.Slice(bets, func(i, j int) bool {
			return bets[i].ParticipantID < bets[j].ParticipantID
		})
	}

	s.mu.Lock()
	s.snapshot.ActiveGame = active.ActiveGame
	s.snapshot.Round = round
	s.snapshot.Bets = bets
	s.mu.Unlock()
	return nil
}

// refreshPolled refetches the staleness-tolerant state: leaderboard,
// chat, stats and the end-of-session snapshot
func (s *Server) refreshPolled(ctx context.Context) error {
	board, err := s.config.SessionRepo.GetLeaderboard(ctx, &sessionRepo.GetLeaderboardInput{})
	if err != nil {
		return fmt.Errorf("failed to read leaderboard: %w", err)
	}
	entries := board.Entries
	if len(entries) > models.LeaderboardSize {
		entries = entries[:models.LeaderboardSize]
	}

	chat, err := s.config.SessionRepo.GetChatLog(ctx, &sessionRepo.GetChatLogInput{})
	if err != nil {
		return fmt.Errorf("failed to read chat log: %w", err)
	}

	stats, err := s.config.SessionRepo.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	endOfSession, err := s.config.SessionRepo.GetEndOfSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to read end-of-session snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshot.Leaderboard = entries
	s.snapshot.Chat = chat.Messages
	s.snapshot.Stats = stats.Stats
	s.snapshot.EndOfSession = endOfSession.Snapshot
	s.mu.Unlock()
	return nil
}

// broadcast sends the current snapshot to every connected client,
// dropping clients whose connection has failed
func (s *Server) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(&Frame{
		Type:     "snapshot",
		Snapshot: s.snapshot,
	})
	if err != nil {
		s.logger.Error("failed to marshal snapshot frame", "error", err)
		return
	}

	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.logger.Info("dropping overlay client", "error", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
