package deck

import "fmt"

// Color represents the color of a firework
type Color int

var colorNames = []string{"blue", "red", "yellow", "white", "green"}

const (
	Blue Color = iota
	Red
	Yellow
	White
	Green
)

// Colors lists every color in deck order
var Colors = []Color{Blue, Red, Yellow, White, Green}

// Valid reports whether c is one of the five colors
func (c Color) Valid() bool {
	return c >= Blue && c <= Green
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Value is the number printed on a card.
// Zero is reserved for the firework sentinel.
type Value int

// FinalValue completes a firework
const FinalValue Value = 5

// Values lists every playable value in ascending order
var Values = []Value{1, 2, 3, 4, 5}

// Valid reports whether v is a playable value
func (v Value) Valid() bool {
	return v >= 1 && v <= FinalValue
}

// Card represents a single card. Cards are plain values and never change.
type Card struct {
	Color Color
	Value Value
}

func (c Card) String() string {
	return fmt.Sprintf("%s %d", c.Color, c.Value)
}
