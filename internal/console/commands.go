package console

import (
	"fmt"

	"twentyone/internal/game"
)

const (
	CommandHit   = "h"
	CommandStand = "f"

	AnswerYes = "y"
	AnswerNo  = "n"
)

// ParseCommand maps a typed token to a player action. Tokens are matched exactly.
func ParseCommand(token string) (game.Action, error) {
	switch token {
	case CommandHit:
		return game.ActionHit, nil
	case CommandStand:
		return game.ActionStand, nil
	}
	return 0, fmt.Errorf("%w: unknown command %q", game.ErrInvalidAction, token)
}

func parseAnswer(token string) (yes bool, ok bool) {
	switch token {
	case AnswerYes, "yes":
		return true, true
	case AnswerNo, "no":
		return false, true
	}
	return false, false
}
