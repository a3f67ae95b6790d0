package models

import (
	"time"
)

// DefaultStartingBankroll is used when the dealer has not picked a preset
const DefaultStartingBankroll = 1000

// StartingBankrollPresets are the values the dealer may choose from
var StartingBankrollPresets = []int{500, 1000, 2500, 5000}

// ValidStartingBankroll reports whether v is one of the dealer presets
func ValidStartingBankroll(v int) bool {
	for _, preset := range StartingBankrollPresets {
		if v == preset {
			return true
		}
	}
	return false
}

// Settings holds the dealer-configurable session settings
type Settings struct {
	// StartingBankroll is granted to newly registered participants
	StartingBankroll int
}

// SessionStats tracks running totals across one activation.
// Written by the payout engine only.
type SessionStats struct {
	// TotalWagered is the sum of all committed stakes
	TotalWagered int

	// BiggestWin is the largest single-bet total return seen
	BiggestWin int

	// RoundsPlayed counts resolved rounds
	RoundsPlayed int
}

// EndOfSession is the snapshot the dealer's deactivate produces. It is
// written once at deactivation and cleared by the next activation.
type EndOfSession struct {
	// Active is true while the snapshot should be displayed
	Active bool

	// Players is the full roster sorted by bankroll descending
	Players []LeaderboardEntry

	// StartingBankroll is the bankroll everyone began with
	StartingBankroll int

	// Timestamp is when the session ended
	Timestamp time.Time
}
