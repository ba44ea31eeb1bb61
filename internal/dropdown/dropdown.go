// Package dropdown holds the headless state transitions for a listbox-style
// dropdown: open/close, committed selection, and a provisional highlight
// that keyboard navigation moves with wraparound.
//
// The package never retains state. Adapters own a state cell and hand
// NewActions a SetState that applies updaters to it; each updater returns
// its argument unchanged when the action is a no-op.
package dropdown

import "fmt"

// State is an immutable snapshot of a dropdown.
// Highlighted is only meaningful while Open; closing always resets it.
type State struct {
	Open        bool
	Selected    Index
	Highlighted Index
}

func (s State) String() string {
	return fmt.Sprintf("open=%t selected=%s highlighted=%s", s.Open, s.Selected, s.Highlighted)
}

// Options configures a dropdown. The zero value is a closed dropdown with
// no selection and no callbacks.
type Options[T any] struct {
	Items           []T
	DefaultOpen     bool
	DefaultSelected Index
	// OnSelect is called with the committed item and its position.
	OnSelect func(item T, index int)
	// OnChange is called with the new open state.
	OnChange func(open bool)
}

// SetState applies update to the caller's current state.
type SetState func(update func(State) State)

// NewState returns the initial state for opts.
func NewState[T any](opts Options[T]) State {
	return State{
		Open:        opts.DefaultOpen,
		Selected:    opts.DefaultSelected,
		Highlighted: None,
	}
}

// Actions is the dropdown action set bound to one SetState and one item
// collection. Re-derive it whenever the items or callbacks change.
type Actions[T any] struct {
	set      SetState
	items    []T
	onSelect func(T, int)
	onChange func(bool)
}

// NewActions binds the dropdown transitions to set.
func NewActions[T any](set SetState, opts Options[T]) Actions[T] {
	return Actions[T]{
		set:      set,
		items:    opts.Items,
		onSelect: opts.OnSelect,
		onChange: opts.OnChange,
	}
}

// Open shows the list and seeds the highlight from the selection, falling
// back to the first item.
func (a Actions[T]) Open() {
	a.set(func(prev State) State {
		if prev.Open {
			return prev
		}
		a.changed(true)
		return State{Open: true, Selected: prev.Selected, Highlighted: a.seed(prev)}
	})
}

// Close hides the list and clears the highlight.
func (a Actions[T]) Close() {
	a.set(func(prev State) State {
		if !prev.Open {
			return prev
		}
		a.changed(false)
		return State{Open: false, Selected: prev.Selected, Highlighted: None}
	})
}

// Toggle flips the open state.
func (a Actions[T]) Toggle() {
	a.set(func(prev State) State {
		open := !prev.Open
		a.changed(open)
		next := State{Open: open, Selected: prev.Selected, Highlighted: None}
		if open {
			next.Highlighted = a.seed(prev)
		}
		return next
	})
}

// SelectItem commits item i and closes the list. Out-of-range positions
// are ignored.
func (a Actions[T]) SelectItem(i int) {
	if i < 0 || i >= len(a.items) {
		return
	}
	a.set(func(prev State) State {
		return a.commit(i)
	})
}

// HighlightItem moves the highlight to position i; -1 clears it. Any other
// position outside the collection is ignored.
func (a Actions[T]) HighlightItem(i int) {
	if i < -1 || i >= len(a.items) {
		return
	}
	a.set(func(prev State) State {
		prev.Highlighted = At(i)
		return prev
	})
}

// HighlightNext advances the highlight, wrapping from the last item to the
// first. A missing or stale highlight starts at the first item.
func (a Actions[T]) HighlightNext() {
	n := len(a.items)
	if n == 0 {
		return
	}
	a.set(func(prev State) State {
		cur := -1
		if prev.Highlighted.In(n) {
			cur = prev.Highlighted.Int()
		}
		next := 0
		if cur < n-1 {
			next = cur + 1
		}
		prev.Highlighted = At(next)
		return prev
	})
}

// HighlightPrevious retreats the highlight, wrapping from the first item
// to the last. A missing or stale highlight starts at the last item.
func (a Actions[T]) HighlightPrevious() {
	n := len(a.items)
	if n == 0 {
		return
	}
	a.set(func(prev State) State {
		cur := n
		if prev.Highlighted.In(n) {
			cur = prev.Highlighted.Int()
		}
		next := n - 1
		if cur > 0 {
			next = cur - 1
		}
		prev.Highlighted = At(next)
		return prev
	})
}

// SelectHighlighted commits the highlighted item, if any.
func (a Actions[T]) SelectHighlighted() {
	a.set(func(prev State) State {
		if !prev.Highlighted.In(len(a.items)) {
			return prev
		}
		return a.commit(prev.Highlighted.Int())
	})
}

func (a Actions[T]) commit(i int) State {
	if a.onSelect != nil {
		a.onSelect(a.items[i], i)
	}
	a.changed(false)
	return State{Open: false, Selected: At(i), Highlighted: None}
}

func (a Actions[T]) seed(prev State) Index {
	switch {
	case prev.Selected.In(len(a.items)):
		return prev.Selected
	case len(a.items) > 0:
		return At(0)
	default:
		return None
	}
}

func (a Actions[T]) changed(open bool) {
	if a.onChange != nil {
		a.onChange(open)
	}
}

// SelectedItem returns the committed item. ok is false when nothing is
// selected or the collection no longer reaches the selection.
func SelectedItem[T any](s State, items []T) (item T, ok bool) {
	return lookup(s.Selected, items)
}

// HighlightedItem returns the highlighted item, if any.
func HighlightedItem[T any](s State, items []T) (item T, ok bool) {
	return lookup(s.Highlighted, items)
}

func lookup[T any](i Index, items []T) (T, bool) {
	var zero T
	if !i.In(len(items)) {
		return zero, false
	}
	return items[i.Int()], true
}
