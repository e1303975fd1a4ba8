package console

import (
	"errors"
	"fmt"

	"twentyone/internal/game"
)

// playRound runs one session to its end. closed reports that input ran out first.
func (c *Console) playRound() (closed bool, err error) {
	s, err := c.session()
	if err != nil {
		return false, fmt.Errorf("failed to deal: %w", err)
	}
	c.logger.Printf("session %s started", s.ID())

	c.render.Help()

	if s.Phase().Terminal() {
		c.finish(s)
		return false, nil
	}
	c.render.Table(s)

	for s.Phase() == game.PhasePlayerTurn {
		token, ok := c.readToken()
		if !ok {
			c.logger.Printf("session %s: input closed during %s", s.ID(), s.Phase())
			return true, nil
		}

		if err := c.handleCommand(s, token); err != nil {
			return false, err
		}
	}

	if s.Phase() == game.PhaseDealerTurn {
		if err := c.handleDealer(s); err != nil {
			return false, err
		}
	}

	c.finish(s)
	return false, nil
}

func (c *Console) handleCommand(s *game.Session, token string) error {
	action, err := ParseCommand(token)
	if err != nil {
		c.render.Invalid()
		return nil
	}

	if _, err := s.Apply(action); err != nil {
		if errors.Is(err, game.ErrInvalidAction) {
			c.render.Invalid()
			return nil
		}
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	if s.Phase() == game.PhasePlayerTurn {
		c.render.Table(s)
	}
	if s.Phase() == game.PhaseDealerTurn {
		c.render.DealerTurn()
	}
	return nil
}

func (c *Console) handleDealer(s *game.Session) error {
	res, err := s.RunDealer()
	for _, card := range res.Drawn {
		c.render.DealerDraws(card)
	}
	if err != nil {
		return fmt.Errorf("failed to play the dealer: %w", err)
	}
	return nil
}

func (c *Console) finish(s *game.Session) {
	c.render.Outcome(s)
	c.player.Record(s.Result())
}

// askPlayAgain keeps asking until it gets an answer; ok is false when input ends.
func (c *Console) askPlayAgain() (again bool, ok bool) {
	for {
		c.render.PlayAgain()
		token, more := c.readToken()
		if !more {
			return false, false
		}
		if yes, valid := parseAnswer(token); valid {
			return yes, true
		}
		c.render.Invalid()
	}
}
