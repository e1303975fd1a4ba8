package game

import "strconv"

type Suit int

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

// Icon returns the glyph printed next to the rank.
func (s Suit) Icon() string {
	switch s {
	case Hearts:
		return "❤"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// Code is the single-letter suit part of a card's identity code.
func (s Suit) Code() string {
	switch s {
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	}
	return "?"
}

func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value is the nominal blackjack value; an ace counts 11 until the scorer demotes it.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	}
	return int(r)
}

func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

// FaceDownSymbol is shown in place of a hidden card.
const FaceDownSymbol = "□"

// Card is a value; only FaceDown changes after the deal and it never affects scoring.
type Card struct {
	Rank     Rank
	Suit     Suit
	FaceDown bool
}

func NewCard(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Label is the human readable form, e.g. "K♠" or "10❤".
func (c Card) Label() string {
	return c.Rank.Symbol() + c.Suit.Icon()
}

// Code identifies the card uniquely within a deck, e.g. "KS" or "10H".
func (c Card) Code() string {
	return c.Rank.Symbol() + c.Suit.Code()
}

func (c Card) String() string {
	if c.FaceDown {
		return FaceDownSymbol
	}
	return c.Label()
}
