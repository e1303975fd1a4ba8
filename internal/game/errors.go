package game

import "errors"

var (
	// ErrDeckExhausted means a draw was attempted on an empty deck. A single
	// two-hand round can never get there, so seeing it is a lifecycle bug.
	ErrDeckExhausted = errors.New("deck exhausted")

	// ErrInvalidAction is returned for unknown actions and for actions issued
	// in the wrong phase. The session is left untouched.
	ErrInvalidAction = errors.New("invalid action")
)
