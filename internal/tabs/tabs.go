// Package tabs holds the active-tab transitions of a tab group. The tab
// count belongs to the caller and is supplied each time the action set is
// derived.
package tabs

import "fmt"

// State is an immutable tab group snapshot.
type State struct {
	Active int
}

func (s State) String() string {
	return fmt.Sprintf("active=%d", s.Active)
}

// Options configures a tab group.
type Options struct {
	DefaultIndex int
	// OnChange is called with the newly active index.
	OnChange func(index int)
}

// SetState applies update to the caller's current state.
type SetState func(update func(State) State)

// NewState returns the initial state for opts.
func NewState(opts Options) State {
	return State{Active: opts.DefaultIndex}
}

// Actions is the tab action set bound to one SetState and tab count.
type Actions struct {
	set      SetState
	count    int
	onChange func(int)
}

// NewActions binds the tab transitions to set for count tabs.
func NewActions(set SetState, opts Options, count int) Actions {
	return Actions{set: set, count: count, onChange: opts.OnChange}
}

// SetActiveIndex activates tab i. Indices outside [0, count) and the
// already active index are ignored.
func (a Actions) SetActiveIndex(i int) {
	if i < 0 || i >= a.count {
		return
	}
	a.set(func(prev State) State {
		if prev.Active == i {
			return prev
		}
		return a.activate(i)
	})
}

// ActivateNext activates the following tab, wrapping to the first. With a
// single tab it re-activates that tab and still reports it.
func (a Actions) ActivateNext() {
	if a.count <= 0 {
		return
	}
	a.set(func(prev State) State {
		return a.activate((prev.Active + 1) % a.count)
	})
}

// ActivatePrevious activates the preceding tab, wrapping to the last.
func (a Actions) ActivatePrevious() {
	if a.count <= 0 {
		return
	}
	a.set(func(prev State) State {
		return a.activate(((prev.Active-1)%a.count + a.count) % a.count)
	})
}

func (a Actions) activate(i int) State {
	if a.onChange != nil {
		a.onChange(i)
	}
	return State{Active: i}
}
