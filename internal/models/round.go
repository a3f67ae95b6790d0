package models

import (
	"time"
)

// GameKind identifies one of the games that can occupy the table
type GameKind string

const (
	// GameKindWheel is the single-zero wheel game
	GameKindWheel GameKind = "wheel"

	// GameKindDice is the three-dice game
	GameKindDice GameKind = "dice"

	// GameKindCards is the two-hand card comparison game
	GameKindCards GameKind = "cards"
)

// Valid reports whether k names a known game
func (k GameKind) Valid() bool {
	switch k {
	case GameKindWheel, GameKindDice, GameKindCards:
		return true
	}
	return false
}

// Phase represents the current state of a round
type Phase string

const (
	// PhaseBetting indicates the betting window is open
	PhaseBetting Phase = "betting"

	// PhaseLocked indicates the window has closed but the outcome has not
	// been entered yet
	PhaseLocked Phase = "locked"

	// PhaseResolved indicates the outcome is in and bets are settled
	PhaseResolved Phase = "resolved"
)

// DefaultBettingWindow is the number of countdown seconds in a fresh round
const DefaultBettingWindow = 15

// ResultHistoryCap bounds the per-game result history ring
const ResultHistoryCap = 50

// Hand is one dealt card hand, two or three cards, most games ignore suits
type Hand struct {
	// Ranks are card ranks, 1 (ace) through 13 (king)
	Ranks []int
}

// Outcome is the resolved result of one round. Exactly the fields for the
// round's game kind are set; the rest stay zero.
type Outcome struct {
	// WheelNumber is the winning pocket, 0-36 (wheel only)
	WheelNumber int `json:"wheelNumber,omitempty"`

	// Dice are the three die faces, each 1-6 (dice only)
	Dice []int `json:"dice,omitempty"`

	// Player and Banker are the two dealt hands (cards only)
	Player *Hand `json:"player,omitempty"`
	Banker *Hand `json:"banker,omitempty"`
}

// GameRound is the state of the single live game at the table.
//
// Ownership: written only by the dealer's client (phase, countdown, outcome)
// and the payout engine's derived writes. All other clients read.
type GameRound struct {
	// Kind is which game this round belongs to
	Kind GameKind

	// RoundNumber is monotonic within one activation, starting at 0
	RoundNumber int

	// Phase is the round's lifecycle state
	Phase Phase

	// BettingWindowRemaining counts down in whole seconds while betting
	BettingWindowRemaining int

	// Outcome is nil until the dealer resolves
	Outcome *Outcome

	// ResultHistory holds canonical result tokens, most recent first,
	// capped at ResultHistoryCap
	ResultHistory []string

	// StartedAt is when the current round's betting window opened
	StartedAt time.Time
}

// ActiveGame is the single global selector for which game is live.
// A nil/empty Kind means no game is active and clients show a waiting view.
// Dealer-written, all-read.
type ActiveGame struct {
	// Kind is the live game, empty when the table is idle
	Kind GameKind

	// ActivatedAt is when the dealer opened the table
	ActivatedAt time.Time
}
