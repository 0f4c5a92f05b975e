package knowledge

import (
	"fmt"

	"github.com/minaorangina/hanabi/deck"
)

// Attribute is the card attribute a clue is about
type Attribute int

const (
	ColorClue Attribute = iota
	ValueClue
)

// Clue is the content of a hint: a color or a value
type Clue struct {
	Attribute Attribute
	Color     deck.Color
	Value     deck.Value
}

// ColorOf builds a color clue
func ColorOf(c deck.Color) Clue {
	return Clue{Attribute: ColorClue, Color: c}
}

// ValueOf builds a value clue
func ValueOf(v deck.Value) Clue {
	return Clue{Attribute: ValueClue, Value: v}
}

// Valid reports whether the clue names a real color or value
func (c Clue) Valid() bool {
	switch c.Attribute {
	case ColorClue:
		return c.Color.Valid()
	case ValueClue:
		return c.Value.Valid()
	default:
		return false
	}
}

func (c Clue) String() string {
	switch c.Attribute {
	case ColorClue:
		return fmt.Sprintf("color %s", c.Color)
	case ValueClue:
		return fmt.Sprintf("value %d", c.Value)
	default:
		return fmt.Sprintf("Clue(%d)", int(c.Attribute))
	}
}

// Applier turns a clue into updated knowledge for the hinted player's hand.
// hand and info are parallel; the returned slice must be the same length as info.
type Applier interface {
	ApplyClue(clue Clue, hand []deck.Card, info []CardInfo) []CardInfo
}

// ApplierFunc adapts a function to the Applier interface
type ApplierFunc func(clue Clue, hand []deck.Card, info []CardInfo) []CardInfo

// ApplyClue calls f
func (f ApplierFunc) ApplyClue(clue Clue, hand []deck.Card, info []CardInfo) []CardInfo {
	return f(clue, hand, info)
}
