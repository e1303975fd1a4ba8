package game

import (
	"math/rand"
	"time"
)

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

type Deck struct {
	cards []Card
}

// NewDeck builds the 52 cards in build order: suit by suit, 2 through ace.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	return d
}

// NewShuffledDeck builds a deck and shuffles it with rng. A nil rng is seeded from the clock.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// NewStackedDeck returns a deck that deals exactly the given cards in order.
func NewStackedDeck(cards ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
	}
	copy(d.cards, cards)
	return d
}

func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (d *Deck) Shuffle(rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
