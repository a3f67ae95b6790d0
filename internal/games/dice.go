package games

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/parlor/internal/models"
)

// Dice odds: total return per unit staked. The even-money bets lose on any
// triple, which is the house edge on this table.
var (
	diceEvenMoneyOdds      = Odds{Num: 2, Den: 1}   // 1:1
	diceSpecificTripleOdds = Odds{Num: 181, Den: 1} // 180:1
	diceAnyTripleOdds      = Odds{Num: 31, Den: 1}  // 30:1
	diceDoubleOdds         = Odds{Num: 9, Den: 1}   // 8:1
)

// diceTotalOdds is the total-sum ladder, total return per unit staked
var diceTotalOdds = map[int]Odds{
	4:  {Num: 61, Den: 1},
	5:  {Num: 31, Den: 1},
	6:  {Num: 18, Den: 1},
	7:  {Num: 13, Den: 1},
	8:  {Num: 9, Den: 1},
	9:  {Num: 7, Den: 1},
	10: {Num: 7, Den: 1},
	11: {Num: 7, Den: 1},
	12: {Num: 7, Den: 1},
	13: {Num: 9, Den: 1},
	14: {Num: 13, Den: 1},
	15: {Num: 18, Den: 1},
	16: {Num: 31, Den: 1},
	17: {Num: 61, Den: 1},
}

func validateDiceOutcome(outcome *models.Outcome) error {
	if outcome.WheelNumber != 0 || outcome.Player != nil || outcome.Banker != nil {
		return fmt.Errorf("%w: dice outcome carries foreign fields", ErrInvalidOutcome)
	}
	if len(outcome.Dice) != 3 {
		return fmt.Errorf("%w: need exactly three dice, got %d", ErrInvalidOutcome, len(outcome.Dice))
	}
	for _, face := range outcome.Dice {
		if face < 1 || face > 6 {
			return fmt.Errorf("%w: die face %d out of range", ErrInvalidOutcome, face)
		}
	}
	return nil
}

func diceResultToken(outcome *models.Outcome) string {
	faces := make([]string, len(outcome.Dice))
	for i, face := range outcome.Dice {
		faces[i] = strconv.Itoa(face)
	}
	return strings.Join(faces, "-")
}

func diceTotal(o *models.Outcome) int {
	return o.Dice[0] + o.Dice[1] + o.Dice[2]
}

func diceIsTriple(o *models.Outcome) bool {
	return o.Dice[0] == o.Dice[1] && o.Dice[1] == o.Dice[2]
}

func diceCountFace(o *models.Outcome, face int) int {
	count := 0
	for _, f := range o.Dice {
		if f == face {
			count++
		}
	}
	return count
}

// parseDiceBet recognizes the fixed three-dice bet-type tokens
func parseDiceBet(betType string) (*Bet, error) {
	makeBet := func(odds Odds, wins func(*models.Outcome) bool) *Bet {
		return &Bet{
			Kind: models.GameKindDice,
			Type: betType,
			Odds: odds,
			wins: wins,
		}
	}

	switch betType {
	case "small":
		return makeBet(diceEvenMoneyOdds, func(o *models.Outcome) bool {
			total := diceTotal(o)
			return !diceIsTriple(o) && total >= 4 && total <= 10
		}), nil
	case "big":
		return makeBet(diceEvenMoneyOdds, func(o *models.Outcome) bool {
			total := diceTotal(o)
			return !diceIsTriple(o) && total >= 11 && total <= 17
		}), nil
	case "odd":
		return makeBet(diceEvenMoneyOdds, func(o *models.Outcome) bool {
			return !diceIsTriple(o) && diceTotal(o)%2 == 1
		}), nil
	case "even":
		return makeBet(diceEvenMoneyOdds, func(o *models.Outcome) bool {
			return !diceIsTriple(o) && diceTotal(o)%2 == 0
		}), nil
	case "anytriple":
		return makeBet(diceAnyTripleOdds, diceIsTriple), nil
	}

	name, arg, found := strings.Cut(betType, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBetType, betType)
	}

	switch name {
	case "triple":
		face, err := strconv.Atoi(arg)
		if err != nil || face < 1 || face > 6 {
			return nil, fmt.Errorf("%w: triple face %q", ErrUnknownBetType, arg)
		}
		return makeBet(diceSpecificTripleOdds, func(o *models.Outcome) bool {
			return diceCountFace(o, face) == 3
		}), nil

	case "double":
		face, err := strconv.Atoi(arg)
		if err != nil || face < 1 || face > 6 {
			return nil, fmt.Errorf("%w: double face %q", ErrUnknownBetType, arg)
		}
		return makeBet(diceDoubleOdds, func(o *models.Outcome) bool {
			return diceCountFace(o, face) >= 2
		}), nil

	case "total":
		total, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: total %q", ErrUnknownBetType, arg)
		}
		odds, ok := diceTotalOdds[total]
		if !ok {
			return nil, fmt.Errorf("%w: total %d not on the table", ErrUnknownBetType, total)
		}
		return makeBet(odds, func(o *models.Outcome) bool {
			return diceTotal(o) == total
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBetType, betType)
}
