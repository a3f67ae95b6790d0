package games

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/parlor/internal/models"
)

// Define errors
var (
	ErrUnknownGame    = errors.New("unknown game kind")
	ErrUnknownBetType = errors.New("unknown bet type")
	ErrInvalidOutcome = errors.New("invalid outcome")
)

// Odds is a total-return multiplier expressed as a rational, so commission
// tables stay exact. An even-money bet is 2/1 (stake back plus stake).
type Odds struct {
	// Num and Den form the total-return multiplier Num/Den
	Num int
	Den int
}

// Return computes the total return for a winning stake, rounded half-up.
// The rounding is a property of the odds, not of evaluation order.
func (o Odds) Return(stake int) int {
	return (2*stake*o.Num + o.Den) / (2 * o.Den)
}

// Bet is one parsed, validated bet type: an eligibility predicate over the
// outcome plus fixed odds. Bets are evaluated independently of each other,
// so evaluation order never affects a payout.
type Bet struct {
	// Kind is the game the bet belongs to
	Kind models.GameKind

	// Type is the canonical bet-type token
	Type string

	// Odds is the total-return multiplier applied on a win
	Odds Odds

	wins func(*models.Outcome) bool
}

// Wins reports whether the bet is eligible for payout under the outcome
func (b *Bet) Wins(outcome *models.Outcome) bool {
	return b.wins(outcome)
}

// ParseBet validates a bet-type token for a game and returns its table entry
func ParseBet(kind models.GameKind, betType string) (*Bet, error) {
	switch kind {
	case models.GameKindWheel:
		return parseWheelBet(betType)
	case models.GameKindDice:
		return parseDiceBet(betType)
	case models.GameKindCards:
		return parseCardsBet(betType)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGame, kind)
}

// ValidateOutcome rejects malformed or out-of-domain outcomes before any
// payout side effects can occur
func ValidateOutcome(kind models.GameKind, outcome *models.Outcome) error {
	if outcome == nil {
		return fmt.Errorf("%w: outcome cannot be nil", ErrInvalidOutcome)
	}
	switch kind {
	case models.GameKindWheel:
		return validateWheelOutcome(outcome)
	case models.GameKindDice:
		return validateDiceOutcome(outcome)
	case models.GameKindCards:
		return validateCardsOutcome(outcome)
	}
	return fmt.Errorf("%w: %s", ErrUnknownGame, kind)
}

// ResultToken renders the canonical history token for a resolved outcome.
// The outcome must already be validated.
func ResultToken(kind models.GameKind, outcome *models.Outcome) string {
	switch kind {
	case models.GameKindWheel:
		return wheelResultToken(outcome)
	case models.GameKindDice:
		return diceResultToken(outcome)
	case models.GameKindCards:
		return cardsResultToken(outcome)
	}
	return ""
}
