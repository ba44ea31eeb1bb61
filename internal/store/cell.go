// Package store provides the mutable state cell that adapters hold around
// the immutable widget states, and the observer contract used to report
// widget transitions.
package store

// Cell holds the current value of a widget state.
// It is not safe for concurrent use; a cell has a single logical owner.
type Cell[S comparable] struct {
	value     S
	listeners []*listener[S]
}

type listener[S comparable] struct {
	fn func(from, to S)
}

// NewCell creates a cell holding initial.
func NewCell[S comparable](initial S) *Cell[S] {
	return &Cell[S]{value: initial}
}

// Get returns the current value.
func (c *Cell[S]) Get() S {
	return c.value
}

// Set applies update to the current value. Its signature matches the
// widget SetState types so a method value can be passed to NewActions.
func (c *Cell[S]) Set(update func(S) S) {
	c.Update(update)
}

// Update applies update and reports whether the value changed.
// Listeners run synchronously, in subscription order, only on change.
func (c *Cell[S]) Update(update func(S) S) bool {
	from := c.value
	to := update(from)
	if to == from {
		return false
	}
	c.value = to
	for _, l := range append([]*listener[S](nil), c.listeners...) {
		l.fn(from, to)
	}
	return true
}

// Subscribe registers fn for value changes and returns a function that
// removes it.
func (c *Cell[S]) Subscribe(fn func(from, to S)) func() {
	l := &listener[S]{fn: fn}
	c.listeners = append(c.listeners, l)
	return func() {
		for i, h := range c.listeners {
			if h == l {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}
