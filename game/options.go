package game

import (
	"fmt"

	"github.com/minaorangina/hanabi/knowledge"
	"github.com/sirupsen/logrus"
)

const (
	defaultHints = 8
	defaultLives = 3
)

// Options configure a new game
type Options struct {
	NumPlayers int
	HandSize   int
	// when it hits 0, you cannot hint
	NumHints int
	// when it hits 0, you lose
	NumLives int

	// Applier turns hint clues into knowledge. Without one, hints only cost a token.
	Applier knowledge.Applier
	Logger  logrus.FieldLogger
}

// DefaultOptions returns the base ruleset for numPlayers
func DefaultOptions(numPlayers int) Options {
	handSize := 5
	if numPlayers > 3 {
		handSize = 4
	}
	return Options{
		NumPlayers: numPlayers,
		HandSize:   handSize,
		NumHints:   defaultHints,
		NumLives:   defaultLives,
	}
}

func (o Options) validate() error {
	switch {
	case o.NumPlayers < 1:
		return fmt.Errorf("%w: need at least one player, got %d", ErrInvalidOptions, o.NumPlayers)
	case o.HandSize < 1:
		return fmt.Errorf("%w: hand size must be positive, got %d", ErrInvalidOptions, o.HandSize)
	case o.NumHints < 1:
		return fmt.Errorf("%w: hints must be positive, got %d", ErrInvalidOptions, o.NumHints)
	case o.NumLives < 1:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidOptions, o.NumLives)
	}
	return nil
}
