package payout

import (
	"github.com/KirkDiggler/parlor/internal/models"
	roundRepo "github.com/KirkDiggler/parlor/internal/repositories/round"
	sessionRepo "github.com/KirkDiggler/parlor/internal/repositories/session"
)

// Config holds configuration for the payout engine
type Config struct {
	// RoundRepo reads and zeroes active bet records
	RoundRepo roundRepo.Repository

	// SessionRepo applies bankroll credits, leaderboard and stats writes
	SessionRepo sessionRepo.Repository
}

// BetResult is the evaluation of one bet type for one participant
type BetResult struct {
	// BetType is the bet-type token
	BetType string

	// Stake is the active stake that was riding
	Stake int

	// Won reports eligibility under the outcome
	Won bool

	// Return is the total returned (stake plus winnings), zero on loss.
	// The stake itself was debited at commit time.
	Return int
}

// ParticipantResult is the settlement for one participant
type ParticipantResult struct {
	// ParticipantID identifies the participant
	ParticipantID string

	// Bets is the per-bet-type breakdown
	Bets []BetResult

	// Credit is the total returned across all bets
	Credit int

	// NewBankroll is the bankroll after the credit
	NewBankroll int
}

// SettleInput contains parameters for settling a resolved round
type SettleInput struct {
	// Kind is the game being settled
	Kind models.GameKind

	// Outcome is the resolved outcome
	Outcome *models.Outcome
}

// SettleOutput contains the full settlement
type SettleOutput struct {
	// Results is one entry per participant holding active bets,
	// ordered by participant ID
	Results []ParticipantResult

	// TotalWagered is the sum of settled active stakes
	TotalWagered int

	// BiggestWin is the largest single-bet return in this settlement
	BiggestWin int
}
