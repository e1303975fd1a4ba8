package game

import (
	"math/rand"
	"testing"
)

func cards(ranks ...Rank) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = NewCard(r, Suits[i%len(Suits)])
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected int
	}{
		{"empty", nil, 0},
		{"ace king", cards(Ace, King), 21},
		{"two aces and nine", cards(Ace, Ace, Nine), 21},
		{"three aces and nine", cards(Ace, Ace, Ace, Nine), 12},
		{"bust without aces", cards(Ten, Nine, Five), 24},
		{"soft 17", cards(Ace, Six), 17},
		{"double ace", cards(Ace, Ace), 12},
		{"bust rescue", cards(Ace, Five, Eight), 14},
		{"faces", cards(Jack, Queen), 20},
		{"four aces", cards(Ace, Ace, Ace, Ace), 14},
		{"ace bust", cards(King, Queen, Ace, Ace), 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.cards); got != tt.expected {
				t.Errorf("Score: expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestHardTotal(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected int
	}{
		{"soft 17", cards(Ace, Six), 7},
		{"hard 17", cards(Ten, Seven), 17},
		{"two aces", cards(Ace, Ace), 2},
		{"faces", cards(King, Queen), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HardTotal(tt.cards); got != tt.expected {
				t.Errorf("HardTotal: expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestIsNatural(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected bool
	}{
		{"ace king", cards(Ace, King), true},
		{"ten ace", cards(Ten, Ace), true},
		{"three card 21", cards(Seven, Seven, Seven), false},
		{"twenty", cards(King, Queen), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNatural(tt.cards); got != tt.expected {
				t.Errorf("IsNatural: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// bestTotal tries every 1/11 assignment of the aces.
func bestTotal(cs []Card) int {
	base := 0
	aces := 0
	for _, c := range cs {
		if c.IsAce() {
			aces++
			continue
		}
		base += c.Value()
	}

	best, lowest := -1, -1
	for mask := 0; mask < 1<<aces; mask++ {
		total := base
		for i := 0; i < aces; i++ {
			if mask&(1<<i) != 0 {
				total += 11
			} else {
				total++
			}
		}
		if total <= Goal && total > best {
			best = total
		}
		if lowest == -1 || total < lowest {
			lowest = total
		}
	}
	if best == -1 {
		return lowest
	}
	return best
}

func TestScoreMatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(8)
		hand := make([]Card, n)
		for j := range hand {
			hand[j] = NewCard(Ranks[rng.Intn(len(Ranks))], Suits[rng.Intn(len(Suits))])
		}
		if got, want := Score(hand), bestTotal(hand); got != want {
			t.Fatalf("hand %v: Score %d, exhaustive %d", hand, got, want)
		}
	}
}
