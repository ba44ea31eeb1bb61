package tui

// FocusRing tracks and rotates focus across a fixed set of element ids.
type FocusRing struct {
	Current  string   // ID of the focused element
	Order    []string // Rotation order
	OnChange func(from, to string)
}

// NewFocusRing creates a ring focused on the first id in order.
func NewFocusRing(order ...string) *FocusRing {
	f := &FocusRing{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next id, wrapping at the end.
// Returns the new current id.
func (f *FocusRing) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	next := (f.index() + 1) % len(f.Order)
	f.move(f.Order[next])
	return f.Current
}

// Prev moves focus to the previous id, wrapping at the start.
func (f *FocusRing) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	prev := f.index() - 1
	if prev < 0 {
		prev = len(f.Order) - 1
	}
	f.move(f.Order[prev])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the ring.
func (f *FocusRing) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.move(id)
			return true
		}
	}
	return false
}

// Is reports whether id has focus.
func (f *FocusRing) Is(id string) bool {
	return f.Current == id
}

func (f *FocusRing) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusRing) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
