package overlay

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/store"
)

// DefaultPollInterval is how often the staleness-tolerant data is refetched
const DefaultPollInterval = 2 * time.Second

// Config holds the configuration for the overlay server
type Config struct {
	// Store supplies change notifications for the push path
	Store store.Store

	// RoundRepo reads the selector and live round
	RoundRepo roundRepo.Repository

	// SessionRepo reads leaderboard, chat, stats and the end-of-session
	// snapshot
	SessionRepo sessionRepo.Repository

	// Clock drives the poll ticker
	Clock quartz.Clock

	// Logger receives connection and refresh logging
	Logger *log.Logger

	// PollInterval overrides DefaultPollInterval
	PollInterval time.Duration
}

// Snapshot is the merged read-only view pushed to overlay clients
type Snapshot struct {
	// ActiveGame is nil when the table is idle
	ActiveGame *models.ActiveGame `json:"activeGame"`

	// Round is the live round for the active game, nil when idle
	Round *models.GameRound `json:"round"`

	// Bets is every participant's bet record for the active game,
	// ordered by participant ID
	Bets []*models.BetRecord `json:"bets"`

	// Leaderboard is the display view, top entries sorted descending
	Leaderboard []*models.LeaderboardEntry `json:"leaderboard"`

	// Chat is the retained log oldest-first
	Chat []*models.ChatMessage `json:"chat"`

	// Stats are the session-wide counters
	Stats *models.SessionStats `json:"stats"`

	// EndOfSession is non-nil between deactivation and the next activation
	EndOfSession *models.EndOfSession `json:"endOfSession"`
}

// Frame is one websocket message sent to clients
type Frame struct {
	// Type is always "snapshot"
	Type string `json:"type"`

	// Snapshot is the full merged view
	Snapshot *Snapshot `json:"snapshot"`
}
