package deck

import "math/rand"

// Size is the number of cards in a full deck
const Size = 50

var valueCounts = map[Value]int{1: 3, 2: 2, 3: 2, 4: 2, 5: 1}

// Count returns how many copies of each color exist for value
func Count(v Value) int {
	return valueCounts[v]
}

// New creates a full deck and shuffles it with r
func New(r *rand.Rand) *Pile[Card] {
	cards := make([]Card, 0, Size)
	for _, color := range Colors {
		for _, value := range Values {
			for i := 0; i < Count(value); i++ {
				cards = append(cards, Card{Color: color, Value: value})
			}
		}
	}

	d := NewPile(cards...)
	d.Shuffle(r)
	return d
}
