// Package draw generates house outcomes for dealers who prefer not to type
// them in. Resolution accepts any valid outcome, generated or manual.
package draw

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/parlor/internal/models"
)

// Dealer provides random outcome generation for every game kind
type Dealer struct {
	random *rand.Rand
}

// Config for the outcome dealer
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new outcome dealer
func New(cfg *Config) *Dealer {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Dealer{
		random: rand.New(rand.NewSource(seed)),
	}
}

// SpinWheel returns a wheel outcome, pocket 0-36
func (d *Dealer) SpinWheel() *models.Outcome {
	return &models.Outcome{
		WheelNumber: d.random.Intn(37),
	}
}

// RollDice returns a dice outcome, three faces 1-6
func (d *Dealer) RollDice() *models.Outcome {
	return &models.Outcome{
		Dice: []int{
			d.random.Intn(6) + 1,
			d.random.Intn(6) + 1,
			d.random.Intn(6) + 1,
		},
	}
}

// DealCards returns a cards outcome dealt from a fresh shuffled deck,
// following the standard third-card tableau
func (d *Dealer) DealCards() *models.Outcome {
	deck := d.shuffledDeck()
	next := func() int {
		rank := deck[0]
		deck = deck[1:]
		return rank
	}

	player := &models.Hand{Ranks: []int{next(), next()}}
	banker := &models.Hand{Ranks: []int{next(), next()}}

	outcome := &models.Outcome{Player: player, Banker: banker}

	// Naturals on either side stop the deal
	if naturalScore(player) || naturalScore(banker) {
		return outcome
	}

	playerScore := score(player)
	playerThird := -1
	if playerScore <= 5 {
		playerThird = next()
		player.Ranks = append(player.Ranks, playerThird)
	}

	if bankerDraws(score(banker), playerThird) {
		banker.Ranks = append(banker.Ranks, next())
	}

	return outcome
}

// shuffledDeck returns 52 ranks in random order; suits never matter here
func (d *Dealer) shuffledDeck() []int {
	deck := make([]int, 0, 52)
	for rank := 1; rank <= 13; rank++ {
		for i := 0; i < 4; i++ {
			deck = append(deck, rank)
		}
	}
	d.random.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func score(hand *models.Hand) int {
	total := 0
	for _, rank := range hand.Ranks {
		if rank < 10 {
			total += rank
		}
	}
	return total % 10
}

func naturalScore(hand *models.Hand) bool {
	v := score(hand)
	return v == 8 || v == 9
}

// bankerDraws applies the third-card tableau. playerThird is -1 when the
// player stood. Values 10-13 count as zero.
func bankerDraws(bankerScore, playerThird int) bool {
	if playerThird < 0 {
		return bankerScore <= 5
	}
	third := playerThird
	if third >= 10 {
		third = 0
	}
	switch bankerScore {
	case 0, 1, 2:
		return true
	case 3:
		return third != 8
	case 4:
		return third >= 2 && third <= 7
	case 5:
		return third >= 4 && third <= 7
	case 6:
		return third == 6 || third == 7
	}
	return false
}
