package deck

import "math/rand"

// Pile is an ordered stack of items. The top is the most recently placed item.
// Unlike a pure stack, items can be taken from any position, which is what
// hands need. A nil pile reads as empty; only Place needs a real one.
type Pile[T any] struct {
	items []T
}

// NewPile constructs a pile with items in bottom-to-top order
func NewPile[T any](items ...T) *Pile[T] {
	p := &Pile[T]{items: make([]T, 0, len(items))}
	p.items = append(p.items, items...)
	return p
}

// Place puts item on top of the pile
func (p *Pile[T]) Place(item T) {
	p.items = append(p.items, item)
}

// Draw removes and returns the top item.
// ok is false when the pile is empty.
func (p *Pile[T]) Draw() (item T, ok bool) {
	if p == nil || len(p.items) == 0 {
		return item, false
	}
	last := len(p.items) - 1
	item = p.items[last]
	var zero T
	p.items[last] = zero
	p.items = p.items[:last]
	return item, true
}

// Top returns the top item without removing it
func (p *Pile[T]) Top() (item T, ok bool) {
	if p == nil || len(p.items) == 0 {
		return item, false
	}
	return p.items[len(p.items)-1], true
}

// Take removes the item at index, shifting later items down by one
func (p *Pile[T]) Take(index int) (item T, ok bool) {
	if p == nil || index < 0 || index >= len(p.items) {
		return item, false
	}
	item = p.items[index]
	copy(p.items[index:], p.items[index+1:])
	var zero T
	p.items[len(p.items)-1] = zero
	p.items = p.items[:len(p.items)-1]
	return item, true
}

// At returns the item at index
func (p *Pile[T]) At(index int) (item T, ok bool) {
	if p == nil || index < 0 || index >= len(p.items) {
		return item, false
	}
	return p.items[index], true
}

// Set replaces the item at index
func (p *Pile[T]) Set(index int, item T) bool {
	if p == nil || index < 0 || index >= len(p.items) {
		return false
	}
	p.items[index] = item
	return true
}

// Shuffle permutes the pile uniformly using r (Fisher-Yates)
func (p *Pile[T]) Shuffle(r *rand.Rand) {
	if p == nil {
		return
	}
	for i := len(p.items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		p.items[i], p.items[j] = p.items[j], p.items[i]
	}
}

// Len returns the number of items in the pile
func (p *Pile[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Items returns a copy of the pile, bottom first
func (p *Pile[T]) Items() []T {
	if p == nil {
		return []T{}
	}
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Clone returns an independent copy of the pile
func (p *Pile[T]) Clone() *Pile[T] {
	return NewPile(p.Items()...)
}
