package table

import (
	"github.com/coder/quartz"

	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
	"github.com/KirkDiggler/parlor/internal/services/payout"
	"github.com/KirkDiggler/parlor/internal/services/registry"
)

// Config holds configuration for the table service
type Config struct {
	// RoundRepo persists the selector, round state and bet records
	RoundRepo roundRepo.Repository

	// SessionRepo reads settings and writes the end-of-session snapshot
	SessionRepo sessionRepo.Repository

	// Payout settles resolved rounds
	Payout payout.Service

	// Registry projects the roster for the end-of-session snapshot
	Registry registry.Service

	// Clock drives timestamps and the countdown ticker
	Clock quartz.Clock

	// DealerSecret gates every dealer action. A UX gate, not a security
	// boundary: any client with store write access could forge these
	// writes, which is an accepted limitation of the trust model.
	DealerSecret string

	// BettingWindow overrides the countdown seconds, default
	// models.DefaultBettingWindow
	BettingWindow int
}

// ActivateInput contains parameters for activating a game
type ActivateInput struct {
	// DealerSecret authorizes the action
	DealerSecret string

	// Kind is the game to put live
	Kind models.GameKind
}

// ActivateOutput contains the freshly started round
type ActivateOutput struct {
	Round *models.GameRound
}

// DeactivateInput contains parameters for ending the session
type DeactivateInput struct {
	// DealerSecret authorizes the action
	DealerSecret string
}

// DeactivateOutput contains the end-of-session snapshot that was produced
type DeactivateOutput struct {
	Snapshot *models.EndOfSession
}

// StartRoundInput contains parameters for opening the next betting window
type StartRoundInput struct {
	// DealerSecret authorizes the action
	DealerSecret string
}

// StartRoundOutput contains the new round state
type StartRoundOutput struct {
	Round *models.GameRound
}

// TickOutput reports the countdown after one tick
type TickOutput struct {
	// Phase is the phase after the tick
	Phase models.Phase

	// Remaining is the countdown after the tick
	Remaining int
}

// ResolveInput contains parameters for resolving the current round
type ResolveInput struct {
	// DealerSecret authorizes the action
	DealerSecret string

	// Outcome is the resolved result for the live game
	Outcome *models.Outcome
}

// ResolveOutput contains the resolution and its settlement
type ResolveOutput struct {
	// Round is the round state after resolution
	Round *models.GameRound

	// Settlement is the payout engine's full output
	Settlement *payout.SettleOutput
}

// GetStateOutput is the projection clients and the overlay read
type GetStateOutput struct {
	// ActiveGame is nil when the table is idle
	ActiveGame *models.ActiveGame

	// Round is nil when the table is idle
	Round *models.GameRound
}
