package store

// Transition describes one widget action as seen by an adapter.
type Transition struct {
	Widget  string // "dropdown", "modal", "tabs"
	ID      string // element id of the widget instance
	Action  string // e.g. "open", "highlight_next"
	From    any
	To      any
	Changed bool
}

// Observer receives widget transitions.
type Observer interface {
	OnTransition(t Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Transition)

// OnTransition implements Observer.
func (f ObserverFunc) OnTransition(t Transition) { f(t) }

// NoopObserver discards transitions.
type NoopObserver struct{}

// OnTransition implements Observer.
func (NoopObserver) OnTransition(Transition) {}

// MultiObserver fans out transitions to multiple observers.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver forwarding to observers.
// Nil observers are dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// OnTransition forwards t to every observer. A panicking observer does not
// stop delivery to the rest.
func (m *MultiObserver) OnTransition(t Transition) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnTransition(t) })
	}
}

// Len returns the number of observers.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
