// Package knowledge holds what is common knowledge about the cards in a hand.
//
// The engine only creates fresh values and keeps them in step with the cards
// they describe. How clues narrow them down belongs to an Applier.
package knowledge

import "github.com/minaorangina/hanabi/deck"

// CardInfo records which colors and values a card could still have.
// It is a plain value, so copying a pile of CardInfo never aliases.
type CardInfo struct {
	colors uint8
	values uint8
}

// New returns a CardInfo about which nothing is known yet
func New() CardInfo {
	var info CardInfo
	for _, c := range deck.Colors {
		info.colors |= 1 << uint(c)
	}
	for _, v := range deck.Values {
		info.values |= 1 << uint(v)
	}
	return info
}

// MayBeColor reports whether the card could be color c
func (i CardInfo) MayBeColor(c deck.Color) bool {
	return c.Valid() && i.colors&(1<<uint(c)) != 0
}

// MayBeValue reports whether the card could have value v
func (i CardInfo) MayBeValue(v deck.Value) bool {
	return v.Valid() && i.values&(1<<uint(v)) != 0
}

// MayBe reports whether the card could be c
func (i CardInfo) MayBe(c deck.Card) bool {
	return i.MayBeColor(c.Color) && i.MayBeValue(c.Value)
}

// RuleOutColor marks color c as impossible
func (i CardInfo) RuleOutColor(c deck.Color) CardInfo {
	if c.Valid() {
		i.colors &^= 1 << uint(c)
	}
	return i
}

// RuleOutValue marks value v as impossible
func (i CardInfo) RuleOutValue(v deck.Value) CardInfo {
	if v.Valid() {
		i.values &^= 1 << uint(v)
	}
	return i
}

// Colors returns the colors still possible
func (i CardInfo) Colors() []deck.Color {
	out := []deck.Color{}
	for _, c := range deck.Colors {
		if i.MayBeColor(c) {
			out = append(out, c)
		}
	}
	return out
}

// Values returns the values still possible
func (i CardInfo) Values() []deck.Value {
	out := []deck.Value{}
	for _, v := range deck.Values {
		if i.MayBeValue(v) {
			out = append(out, v)
		}
	}
	return out
}

// Known returns the card if exactly one color and one value remain
func (i CardInfo) Known() (deck.Card, bool) {
	colors, values := i.Colors(), i.Values()
	if len(colors) != 1 || len(values) != 1 {
		return deck.Card{}, false
	}
	return deck.Card{Color: colors[0], Value: values[0]}, true
}
