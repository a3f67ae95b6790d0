package games

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/parlor/internal/models"
)

// cardsNaturalMargin is the minimum winning margin for the natural bonus
const cardsNaturalMargin = 5

// Cards odds: total return per unit staked. The banker side pays a 5%
// commission to offset its structural edge.
var (
	cardsPlayerOdds  = Odds{Num: 2, Den: 1}  // 1:1
	cardsBankerOdds  = Odds{Num: 39, Den: 20} // 0.95:1 after commission
	cardsTieOdds     = Odds{Num: 9, Den: 1}  // 8:1
	cardsPairOdds    = Odds{Num: 12, Den: 1} // 11:1
	cardsNaturalOdds = Odds{Num: 26, Den: 1} // 25:1
)

// HandScore computes the baccarat value of a hand: tens and faces count
// zero, aces one, and only the last digit of the sum matters
func HandScore(hand *models.Hand) int {
	total := 0
	for _, rank := range hand.Ranks {
		if rank < 10 {
			total += rank
		}
	}
	return total % 10
}

// HandNatural reports whether a hand is a two-card eight or nine
func HandNatural(hand *models.Hand) bool {
	if len(hand.Ranks) != 2 {
		return false
	}
	score := HandScore(hand)
	return score == 8 || score == 9
}

func handPair(hand *models.Hand) bool {
	return len(hand.Ranks) >= 2 && hand.Ranks[0] == hand.Ranks[1]
}

func validateHand(side string, hand *models.Hand) error {
	if hand == nil {
		return fmt.Errorf("%w: %s hand missing", ErrInvalidOutcome, side)
	}
	if len(hand.Ranks) < 2 || len(hand.Ranks) > 3 {
		return fmt.Errorf("%w: %s hand has %d cards", ErrInvalidOutcome, side, len(hand.Ranks))
	}
	for _, rank := range hand.Ranks {
		if rank < 1 || rank > 13 {
			return fmt.Errorf("%w: %s hand rank %d out of range", ErrInvalidOutcome, side, rank)
		}
	}
	return nil
}

func validateCardsOutcome(outcome *models.Outcome) error {
	if outcome.WheelNumber != 0 || outcome.Dice != nil {
		return fmt.Errorf("%w: cards outcome carries foreign fields", ErrInvalidOutcome)
	}
	if err := validateHand("player", outcome.Player); err != nil {
		return err
	}
	return validateHand("banker", outcome.Banker)
}

func cardsResultToken(outcome *models.Outcome) string {
	return "p" + strconv.Itoa(HandScore(outcome.Player)) +
		"-b" + strconv.Itoa(HandScore(outcome.Banker))
}

// naturalBonus pays when the winning hand is a natural and wins by at least
// cardsNaturalMargin points
func naturalBonus(o *models.Outcome) bool {
	playerScore := HandScore(o.Player)
	bankerScore := HandScore(o.Banker)
	switch {
	case playerScore > bankerScore:
		return HandNatural(o.Player) && playerScore-bankerScore >= cardsNaturalMargin
	case bankerScore > playerScore:
		return HandNatural(o.Banker) && bankerScore-playerScore >= cardsNaturalMargin
	}
	return false
}

// parseCardsBet recognizes the fixed card-game bet-type tokens
func parseCardsBet(betType string) (*Bet, error) {
	makeBet := func(odds Odds, wins func(*models.Outcome) bool) *Bet {
		return &Bet{
			Kind: models.GameKindCards,
			Type: betType,
			Odds: odds,
			wins: wins,
		}
	}

	switch betType {
	case "player":
		return makeBet(cardsPlayerOdds, func(o *models.Outcome) bool {
			return HandScore(o.Player) > HandScore(o.Banker)
		}), nil
	case "banker":
		return makeBet(cardsBankerOdds, func(o *models.Outcome) bool {
			return HandScore(o.Banker) > HandScore(o.Player)
		}), nil
	case "tie":
		return makeBet(cardsTieOdds, func(o *models.Outcome) bool {
			return HandScore(o.Player) == HandScore(o.Banker)
		}), nil
	case "playerpair":
		return makeBet(cardsPairOdds, func(o *models.Outcome) bool {
			return handPair(o.Player)
		}), nil
	case "bankerpair":
		return makeBet(cardsPairOdds, func(o *models.Outcome) bool {
			return handPair(o.Banker)
		}), nil
	case "natural":
		return makeBet(cardsNaturalOdds, naturalBonus), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBetType, betType)
}
