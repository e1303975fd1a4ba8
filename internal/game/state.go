package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/google/uuid"
)

type Phase int

const (
	PhaseInit Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhasePlayerWin
	PhaseDealerWin
	PhaseTie
)

func (p Phase) Terminal() bool {
	return p == PhasePlayerWin || p == PhaseDealerWin || p == PhaseTie
}

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhasePlayerTurn:
		return "player turn"
	case PhaseDealerTurn:
		return "dealer turn"
	case PhasePlayerWin:
		return "player win"
	case PhaseDealerWin:
		return "dealer win"
	case PhaseTie:
		return "tie"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultTie
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWin:
		return "player win"
	case ResultDealerWin:
		return "dealer win"
	case ResultTie:
		return "tie"
	}
	return "none"
}

type Action int

const (
	ActionHit Action = iota + 1
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// TurnResult describes what one call into the session did.
type TurnResult struct {
	Phase Phase
	Drawn []Card
}

// Session is one play-through: a deck, the two hands and the phase.
// It is not safe for concurrent use; only one party acts at a time.
type Session struct {
	id     string
	deck   *Deck
	player Hand
	house  Hand
	phase  Phase
	policy DealerPolicy
	logger *log.Logger
}

type Option func(*Session)

// WithDeck deals from d instead of a freshly shuffled deck.
func WithDeck(d *Deck) Option {
	return func(s *Session) {
		s.deck = d
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.deck = NewShuffledDeck(rng)
	}
}

// WithSeed shuffles with a fixed seed; zero means seed from the clock.
func WithSeed(seed int64) Option {
	return WithRand(NewRand(seed))
}

func WithPolicy(p DealerPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession deals two cards to the player and two to the house, the house's
// first card face down, and resolves naturals straight away.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		id:     uuid.New().String(),
		player: NewHand(),
		house:  NewHand(),
		phase:  PhaseInit,
		policy: HousePolicy{},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deck == nil {
		s.deck = NewShuffledDeck(nil)
	}

	for i := 0; i < 2; i++ {
		if _, err := s.drawInto(&s.player); err != nil {
			return nil, fmt.Errorf("failed to deal player: %w", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := s.drawInto(&s.house); err != nil {
			return nil, fmt.Errorf("failed to deal house: %w", err)
		}
	}
	// hole card
	s.house.cards[0].FaceDown = true
	s.logger.Printf("session %s: dealt player [%s] house [%s]", s.id, s.player, s.house)

	playerNatural := s.player.IsNatural()
	houseNatural := s.house.IsNatural()
	switch {
	case playerNatural && houseNatural:
		s.finish(PhaseTie)
	case playerNatural:
		s.finish(PhasePlayerWin)
	case houseNatural:
		s.finish(PhaseDealerWin)
	default:
		s.phase = PhasePlayerTurn
	}

	return s, nil
}

func (s *Session) drawInto(h *Hand) (Card, error) {
	card, err := s.deck.Draw()
	if err != nil {
		return Card{}, err
	}
	h.add(card)
	return card, nil
}

// finish moves to a terminal phase and turns the hole card over.
func (s *Session) finish(p Phase) {
	s.phase = p
	if s.house.reveal() {
		s.logger.Printf("session %s: hole card revealed, house [%s]", s.id, s.house)
	}
	s.logger.Printf("session %s: %s (player %d, house %d)", s.id, p, s.PlayerScore(), s.HouseScore())
}

// Apply plays one player action. Anything other than hit or stand, or any
// action outside the player's turn, is rejected without touching the session.
func (s *Session) Apply(a Action) (TurnResult, error) {
	if s.phase != PhasePlayerTurn {
		return TurnResult{Phase: s.phase}, fmt.Errorf("%w: %s during %s", ErrInvalidAction, a, s.phase)
	}

	switch a {
	case ActionHit:
		card, err := s.drawInto(&s.player)
		if err != nil {
			return TurnResult{Phase: s.phase}, fmt.Errorf("failed to hit: %w", err)
		}
		s.logger.Printf("session %s: player draws %s, score %d", s.id, card, s.PlayerScore())
		if s.player.IsBust() {
			s.finish(PhaseDealerWin)
		}
		return TurnResult{Phase: s.phase, Drawn: []Card{card}}, nil

	case ActionStand:
		s.phase = PhaseDealerTurn
		s.logger.Printf("session %s: player stands on %d", s.id, s.PlayerScore())
		return TurnResult{Phase: s.phase}, nil
	}

	return TurnResult{Phase: s.phase}, fmt.Errorf("%w: %s", ErrInvalidAction, a)
}

// RunDealer plays the house's turn to the end and settles the round.
func (s *Session) RunDealer() (TurnResult, error) {
	if s.phase != PhaseDealerTurn {
		return TurnResult{Phase: s.phase}, fmt.Errorf("%w: dealer turn during %s", ErrInvalidAction, s.phase)
	}

	var drawn []Card
	for CanDraw(s.house) && s.policy.ShouldHit(s.player.clone(), s.house.clone()) {
		card, err := s.drawInto(&s.house)
		if err != nil {
			return TurnResult{Phase: s.phase, Drawn: drawn}, fmt.Errorf("failed to draw for house: %w", err)
		}
		drawn = append(drawn, card)
		s.logger.Printf("session %s: house draws %s, score %d", s.id, card, s.HouseScore())

		if s.house.IsBust() {
			s.finish(PhasePlayerWin)
			return TurnResult{Phase: s.phase, Drawn: drawn}, nil
		}
	}

	playerScore, houseScore := s.PlayerScore(), s.HouseScore()
	switch {
	case playerScore > houseScore:
		s.finish(PhasePlayerWin)
	case houseScore > playerScore:
		s.finish(PhaseDealerWin)
	default:
		s.finish(PhaseTie)
	}

	return TurnResult{Phase: s.phase, Drawn: drawn}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Player() Hand {
	return s.player.clone()
}

// House returns the house hand; the hole card keeps FaceDown set until the round ends.
func (s *Session) House() Hand {
	return s.house.clone()
}

func (s *Session) PlayerScore() int {
	return s.player.Score()
}

func (s *Session) HouseScore() int {
	return s.house.Score()
}

// Remaining is the number of undealt cards.
func (s *Session) Remaining() int {
	return s.deck.Remaining()
}

func (s *Session) Result() Result {
	switch s.phase {
	case PhasePlayerWin:
		return ResultPlayerWin
	case PhaseDealerWin:
		return ResultDealerWin
	case PhaseTie:
		return ResultTie
	}
	return ResultNone
}
