package models

// BetMap holds stakes keyed by bet-type token, e.g. "red", "total:14",
// "split:8-11". Amounts are positive integer currency units.
type BetMap map[string]int

// Total sums every stake in the map
func (m BetMap) Total() int {
	total := 0
	for _, amount := range m {
		total += amount
	}
	return total
}

// Clone returns an independent copy of the map
func (m BetMap) Clone() BetMap {
	out := make(BetMap, len(m))
	for betType, amount := range m {
		out[betType] = amount
	}
	return out
}

// BetRecord is one participant's bets for the live game.
//
// Ownership: written only by the owning participant's client (stage, clear,
// commit) and zeroed by the payout engine at settlement. Pending stakes are
// mutable during the betting phase and have not been debited; active stakes
// were debited at commit time and are immutable until resolution.
type BetRecord struct {
	// ParticipantID is the owning participant
	ParticipantID string

	// Pending holds staged, uncommitted stakes
	Pending BetMap

	// Active holds committed, debited stakes awaiting resolution
	Active BetMap

	// CommittedRound is the round number of the last commit, -1 before any.
	// Commit is allowed once per betting window.
	CommittedRound int
}
