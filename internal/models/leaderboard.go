package models

import (
	"time"
)

// LeaderboardSize is how many entries the display view keeps
const LeaderboardSize = 10

// LeaderboardEntry is a denormalized projection of one participant's
// standing. The authoritative set is unbounded and keyed by participant ID;
// the display view is the top LeaderboardSize sorted by bankroll descending.
//
// Ownership: written by whichever client just changed that participant's
// bankroll (the participant at commit, the resolving dealer at settlement).
type LeaderboardEntry struct {
	// ParticipantID identifies the participant
	ParticipantID string

	// Name is the participant's display name at write time
	Name string

	// Bankroll is the bankroll the entry reflects
	Bankroll int

	// UpdatedAt is when the entry was last written
	UpdatedAt time.Time
}
