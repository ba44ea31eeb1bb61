package tui

import tea "github.com/charmbracelet/bubbletea"

// Layers is a stack of modals; the topmost open modal receives input first.
type Layers struct {
	Stack []*Modal

	size tea.WindowSizeMsg
}

// Push adds m to the top of the stack.
func (l *Layers) Push(m *Modal) {
	l.Stack = append(l.Stack, m)
}

// Pop removes and returns the top modal.
func (l *Layers) Pop() (*Modal, bool) {
	if len(l.Stack) == 0 {
		return nil, false
	}
	top := l.Stack[len(l.Stack)-1]
	l.Stack[len(l.Stack)-1] = nil
	l.Stack = l.Stack[:len(l.Stack)-1]
	return top, true
}

// Peek returns the top modal without removing it.
func (l *Layers) Peek() (*Modal, bool) {
	if len(l.Stack) == 0 {
		return nil, false
	}
	return l.Stack[len(l.Stack)-1], true
}

// Len returns the number of stacked modals.
func (l *Layers) Len() int {
	return len(l.Stack)
}

// Open opens m and pushes it on top. m receives the last window size seen
// by Route so its bounds are known before the first resize.
func (l *Layers) Open(m *Modal) tea.Cmd {
	l.filter(func(s *Modal) bool { return s != m })
	if l.size.Width > 0 && l.size.Height > 0 {
		m.Update(l.size)
	}
	l.Push(m)
	return m.Open()
}

// Route delivers msg to the stack. Window sizes are remembered and go to
// every modal; other messages go to the top open modal, which captures them.
// Closed modals are pruned first. handled is true when a modal consumed msg.
func (l *Layers) Route(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		l.size = size
		for _, m := range l.Stack {
			m.Update(size)
		}
		return false, nil
	}
	l.prune()
	top, ok := l.Peek()
	if !ok {
		return false, nil
	}
	handled, cmd = top.Update(msg)
	l.prune()
	return handled, cmd
}

func (l *Layers) prune() {
	l.filter((*Modal).IsOpen)
}

// filter keeps the modals for which keep is true, in order.
func (l *Layers) filter(keep func(*Modal) bool) {
	kept := l.Stack[:0]
	for _, m := range l.Stack {
		if keep(m) {
			kept = append(kept, m)
		}
	}
	clear(l.Stack[len(kept):])
	l.Stack = kept
}
