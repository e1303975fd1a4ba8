package game

// Goal is the best possible score; anything above it is a bust.
const Goal = 21

// Score counts every ace as 11, then demotes aces to 1 one at a time while the
// total is over Goal. Each demotion subtracts exactly 10, so the first total at
// or under Goal is also the highest one reachable.
func Score(cards []Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Value()
		if card.IsAce() {
			aces++
		}
	}

	for score > Goal && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// HardTotal counts every ace as 1.
func HardTotal(cards []Card) int {
	total := 0
	for _, card := range cards {
		if card.IsAce() {
			total++
			continue
		}
		total += card.Value()
	}
	return total
}

// IsNatural reports a two-card 21.
func IsNatural(cards []Card) bool {
	return len(cards) == 2 && Score(cards) == Goal
}

func IsBust(cards []Card) bool {
	return Score(cards) > Goal
}
