package game

import "errors"

var (
	ErrInvalidOptions      = errors.New("invalid game options")
	ErrDeckTooSmall        = errors.New("not enough cards in the deck to deal every hand")
	ErrNoHintsRemaining    = errors.New("no hint tokens remaining")
	ErrInvalidHint         = errors.New("invalid hint")
	ErrHandIndexOutOfRange = errors.New("hand index out of range")
	ErrUnknownChoice       = errors.New("unknown turn choice")
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrTurnSequence        = errors.New("turn and player are out of sequence")
	ErrInvalidGameState    = errors.New("invalid game state")
	ErrGameOver            = errors.New("game is already over")
)
