package game

import "strings"

// Hand is the ordered set of cards held by one party. It only grows.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) Hand {
	h := Hand{cards: make([]Card, 0, len(cards)+4)}
	h.cards = append(h.cards, cards...)
	return h
}

func (h *Hand) add(c Card) {
	h.cards = append(h.cards, c)
}

// reveal turns every card face up and reports whether anything was hidden.
func (h *Hand) reveal() bool {
	flipped := false
	for i := range h.cards {
		if h.cards[i].FaceDown {
			h.cards[i].FaceDown = false
			flipped = true
		}
	}
	return flipped
}

// Cards returns a copy; callers cannot reach the session's cards through it.
func (h Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h Hand) clone() Hand {
	return Hand{cards: h.Cards()}
}

func (h Hand) Len() int {
	return len(h.cards)
}

func (h Hand) Score() int {
	return Score(h.cards)
}

func (h Hand) HardTotal() int {
	return HardTotal(h.cards)
}

func (h Hand) IsNatural() bool {
	return IsNatural(h.cards)
}

func (h Hand) IsBust() bool {
	return IsBust(h.cards)
}

func (h Hand) HasHidden() bool {
	for _, c := range h.cards {
		if c.FaceDown {
			return true
		}
	}
	return false
}

// countValue returns how many cards carry the given rank value.
func (h Hand) countValue(v int) int {
	n := 0
	for _, c := range h.cards {
		if c.Value() == v {
			n++
		}
	}
	return n
}

func (h Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}
