// Package modal holds the open/closed transitions of a modal dialog.
package modal

import "fmt"

// State is an immutable modal snapshot.
type State struct {
	Open bool
}

func (s State) String() string {
	return fmt.Sprintf("open=%t", s.Open)
}

// Options configures a modal.
type Options struct {
	DefaultOpen bool
	// OnOpenChange is called with the new open state after each change.
	OnOpenChange func(open bool)
}

// SetState applies update to the caller's current state.
type SetState func(update func(State) State)

// NewState returns the initial state for opts.
func NewState(opts Options) State {
	return State{Open: opts.DefaultOpen}
}

// Actions is the modal action set bound to one SetState.
type Actions struct {
	set          SetState
	onOpenChange func(bool)
}

// NewActions binds the modal transitions to set.
func NewActions(set SetState, opts Options) Actions {
	return Actions{set: set, onOpenChange: opts.OnOpenChange}
}

// Open opens the modal; already open is a no-op.
func (a Actions) Open() {
	a.set(func(prev State) State {
		if prev.Open {
			return prev
		}
		return a.flip(prev)
	})
}

// Close closes the modal; already closed is a no-op.
func (a Actions) Close() {
	a.set(func(prev State) State {
		if !prev.Open {
			return prev
		}
		return a.flip(prev)
	})
}

// Toggle flips the modal.
func (a Actions) Toggle() {
	a.set(a.flip)
}

func (a Actions) flip(prev State) State {
	next := State{Open: !prev.Open}
	if a.onOpenChange != nil {
		a.onOpenChange(next.Open)
	}
	return next
}
