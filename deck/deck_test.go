package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeck(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))

	assert.Equal(t, Size, d.Len())

	counts := map[Card]int{}
	for _, c := range d.Items() {
		counts[c]++
	}

	for _, color := range Colors {
		for _, value := range Values {
			assert.Equal(t, Count(value), counts[Card{color, value}], "copies of %s", Card{color, value})
		}
	}

	t.Run("same seed gives the same order", func(t *testing.T) {
		a := New(rand.New(rand.NewSource(42)))
		b := New(rand.New(rand.NewSource(42)))
		assert.Equal(t, a.Items(), b.Items())
	})

	t.Run("different seeds shuffle differently", func(t *testing.T) {
		a := New(rand.New(rand.NewSource(1)))
		b := New(rand.New(rand.NewSource(2)))
		assert.NotEqual(t, a.Items(), b.Items())
	})
}
