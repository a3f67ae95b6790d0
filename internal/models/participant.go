package models

import (
	"time"
)

// Role represents a participant's privilege level in the session
type Role string

const (
	// RolePlayer indicates a regular betting participant
	RolePlayer Role = "player"

	// RoleDealer indicates the single privileged participant who controls
	// game selection and round resolution
	RoleDealer Role = "dealer"
)

// Participant represents one connected member of the session.
//
// Ownership: the record is written only by the participant's own client
// (registration, presence) and by the payout engine (bankroll settlement).
// The dealer may bulk-rewrite bankrolls during a session reset. No other
// client ever writes another participant's record.
type Participant struct {
	// ID is an opaque, client-generated identifier, stable for the session
	ID string

	// DisplayName is the name shown at the table and on the leaderboard
	DisplayName string

	// Bankroll is the participant's balance in integer currency units
	Bankroll int

	// Role is the participant's privilege level
	Role Role

	// LastActiveAt is when the participant last acted
	LastActiveAt time.Time
}
