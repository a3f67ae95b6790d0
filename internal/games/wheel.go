package games

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/parlor/internal/models"
)

// wheelMax is the highest pocket on the single-zero wheel
const wheelMax = 36

// redNumbers is the standard single-zero wheel coloring
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Wheel odds: total return per unit staked. Outside bets lose on zero.
var (
	wheelStraightOdds  = Odds{Num: 36, Den: 1} // 35:1
	wheelSplitOdds     = Odds{Num: 18, Den: 1} // 17:1
	wheelStreetOdds    = Odds{Num: 12, Den: 1} // 11:1
	wheelCornerOdds    = Odds{Num: 9, Den: 1}  // 8:1
	wheelSixLineOdds   = Odds{Num: 6, Den: 1}  // 5:1
	wheelDozenOdds     = Odds{Num: 3, Den: 1}  // 2:1
	wheelColumnOdds    = Odds{Num: 3, Den: 1}  // 2:1
	wheelEvenMoneyOdds = Odds{Num: 2, Den: 1}  // 1:1
)

func validateWheelOutcome(outcome *models.Outcome) error {
	if outcome.Dice != nil || outcome.Player != nil || outcome.Banker != nil {
		return fmt.Errorf("%w: wheel outcome carries foreign fields", ErrInvalidOutcome)
	}
	if outcome.WheelNumber < 0 || outcome.WheelNumber > wheelMax {
		return fmt.Errorf("%w: wheel number %d out of range", ErrInvalidOutcome, outcome.WheelNumber)
	}
	return nil
}

func wheelResultToken(outcome *models.Outcome) string {
	return strconv.Itoa(outcome.WheelNumber)
}

// parseWheelBet recognizes the fixed wheel bet-type tokens. Grouped bets
// carry their member numbers and are membership-checked against the layout,
// so a token like "split:8-20" is rejected at stage time.
func parseWheelBet(betType string) (*Bet, error) {
	makeBet := func(odds Odds, wins func(*models.Outcome) bool) *Bet {
		return &Bet{
			Kind: models.GameKindWheel,
			Type: betType,
			Odds: odds,
			wins: wins,
		}
	}

	switch betType {
	case "red":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return redNumbers[o.WheelNumber]
		}), nil
	case "black":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return o.WheelNumber != 0 && !redNumbers[o.WheelNumber]
		}), nil
	case "odd":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return o.WheelNumber != 0 && o.WheelNumber%2 == 1
		}), nil
	case "even":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return o.WheelNumber != 0 && o.WheelNumber%2 == 0
		}), nil
	case "low":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return o.WheelNumber >= 1 && o.WheelNumber <= 18
		}), nil
	case "high":
		return makeBet(wheelEvenMoneyOdds, func(o *models.Outcome) bool {
			return o.WheelNumber >= 19 && o.WheelNumber <= 36
		}), nil
	}

	name, arg, found := strings.Cut(betType, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBetType, betType)
	}

	switch name {
	case "straight":
		number, err := strconv.Atoi(arg)
		if err != nil || number < 0 || number > wheelMax {
			return nil, fmt.Errorf("%w: straight number %q", ErrUnknownBetType, arg)
		}
		return makeBet(wheelStraightOdds, func(o *models.Outcome) bool {
			return o.WheelNumber == number
		}), nil

	case "dozen":
		index, err := strconv.Atoi(arg)
		if err != nil || index < 1 || index > 3 {
			return nil, fmt.Errorf("%w: dozen %q", ErrUnknownBetType, arg)
		}
		low := (index-1)*12 + 1
		high := index * 12
		return makeBet(wheelDozenOdds, func(o *models.Outcome) bool {
			return o.WheelNumber >= low && o.WheelNumber <= high
		}), nil

	case "column":
		index, err := strconv.Atoi(arg)
		if err != nil || index < 1 || index > 3 {
			return nil, fmt.Errorf("%w: column %q", ErrUnknownBetType, arg)
		}
		remainder := index % 3
		return makeBet(wheelColumnOdds, func(o *models.Outcome) bool {
			return o.WheelNumber != 0 && o.WheelNumber%3 == remainder
		}), nil

	case "split":
		numbers, err := parseWheelGroup(arg, 2)
		if err != nil {
			return nil, err
		}
		if !validSplit(numbers) {
			return nil, fmt.Errorf("%w: non-adjacent split %q", ErrUnknownBetType, arg)
		}
		return makeBet(wheelSplitOdds, wheelMembership(numbers)), nil

	case "street":
		numbers, err := parseWheelGroup(arg, 3)
		if err != nil {
			return nil, err
		}
		if !validStreet(numbers) {
			return nil, fmt.Errorf("%w: invalid street %q", ErrUnknownBetType, arg)
		}
		return makeBet(wheelStreetOdds, wheelMembership(numbers)), nil

	case "corner":
		numbers, err := parseWheelGroup(arg, 4)
		if err != nil {
			return nil, err
		}
		if !validCorner(numbers) {
			return nil, fmt.Errorf("%w: invalid corner %q", ErrUnknownBetType, arg)
		}
		return makeBet(wheelCornerOdds, wheelMembership(numbers)), nil

	case "sixline":
		numbers, err := parseWheelGroup(arg, 6)
		if err != nil {
			return nil, err
		}
		if !validSixLine(numbers) {
			return nil, fmt.Errorf("%w: invalid six line %q", ErrUnknownBetType, arg)
		}
		return makeBet(wheelSixLineOdds, wheelMembership(numbers)), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBetType, betType)
}

// parseWheelGroup parses "a-b-..." into exactly count distinct layout numbers,
// sorted ascending
func parseWheelGroup(arg string, count int) ([]int, error) {
	parts := strings.Split(arg, "-")
	if len(parts) != count {
		return nil, fmt.Errorf("%w: group %q needs %d numbers", ErrUnknownBetType, arg, count)
	}

	numbers := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for _, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil || number < 1 || number > wheelMax {
			return nil, fmt.Errorf("%w: group number %q", ErrUnknownBetType, part)
		}
		if seen[number] {
			return nil, fmt.Errorf("%w: duplicate number in group %q", ErrUnknownBetType, arg)
		}
		seen[number] = true
		numbers = append(numbers, number)
	}

	sort.Ints(numbers)
	return numbers, nil
}

func wheelMembership(numbers []int) func(*models.Outcome) bool {
	members := make(map[int]bool, len(numbers))
	for _, number := range numbers {
		members[number] = true
	}
	return func(o *models.Outcome) bool {
		return members[o.WheelNumber]
	}
}

// The layout grid is 12 rows of 3: row r holds 3r+1, 3r+2, 3r+3.
// Adjacency for splits is horizontal within a row or vertical across rows.
func validSplit(numbers []int) bool {
	a, b := numbers[0], numbers[1]
	if b-a == 3 {
		return true
	}
	// Horizontal neighbors share a row
	return b-a == 1 && (a-1)/3 == (b-1)/3
}

func validStreet(numbers []int) bool {
	a := numbers[0]
	return a%3 == 1 && numbers[1] == a+1 && numbers[2] == a+2
}

func validCorner(numbers []int) bool {
	a := numbers[0]
	if a%3 == 0 || a > wheelMax-4 {
		return false
	}
	return numbers[1] == a+1 && numbers[2] == a+3 && numbers[3] == a+4
}

func validSixLine(numbers []int) bool {
	a := numbers[0]
	if a%3 != 1 || a > wheelMax-5 {
		return false
	}
	for i := 1; i < 6; i++ {
		if numbers[i] != a+i {
			return false
		}
	}
	return true
}
