package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/ids"
	"headlessui/internal/modal"
	"headlessui/internal/store"
)

// BoundsFunc returns the modal's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Centered returns bounds for a w×h box centered in the terminal.
func Centered(w, h int) BoundsFunc {
	return func(width, height int) (int, int, int, int) {
		return max((width-w)/2, 0), max((height-h)/2, 0), w, h
	}
}

// ModalOptions configures a Modal adapter. Start from DefaultModalOptions;
// the zero value disables both dismissal policies.
type ModalOptions struct {
	modal.Options

	ID                  string
	Registry            *ids.Registry
	CloseOnEscape       bool
	CloseOnOutsideClick bool

	// Bounds locates the dialog for outside-click detection. Without it
	// clicks are never treated as outside.
	Bounds   BoundsFunc
	Keys     ModalKeyMap
	Observer store.Observer
}

// DefaultModalOptions closes on Escape and on clicks outside the dialog.
func DefaultModalOptions() ModalOptions {
	return ModalOptions{
		CloseOnEscape:       true,
		CloseOnOutsideClick: true,
		Keys:                DefaultModalKeyMap(),
	}
}

// Modal binds the modal core to Bubble Tea key, mouse and resize messages.
type Modal struct {
	id            ids.Scope
	cell          *store.Cell[modal.State]
	actions       modal.Actions
	opts          ModalOptions
	keys          ModalKeyMap
	width, height int
	out           outbox
}

// NewModal creates a modal adapter.
func NewModal(opts ModalOptions) (*Modal, error) {
	id, err := resolveScope(opts.Registry, opts.ID, "modal")
	if err != nil {
		return nil, err
	}
	keys := opts.Keys
	if unbound(keys.Close) {
		keys = DefaultModalKeyMap()
	}
	m := &Modal{
		id:   id,
		cell: store.NewCell(modal.NewState(opts.Options)),
		opts: opts,
		keys: keys,
	}
	user := opts.OnOpenChange
	core := opts.Options
	core.OnOpenChange = func(open bool) {
		if user != nil {
			user(open)
		}
		m.out.post(ModalOpenChangedMsg{ID: m.id.String(), Open: open})
	}
	m.actions = modal.NewActions(m.cell.Set, core)
	return m, nil
}

// ID returns the modal's element id.
func (m *Modal) ID() string { return m.id.String() }

// IsOpen reports whether the modal is open.
func (m *Modal) IsOpen() bool { return m.cell.Get().Open }

// State returns the current core state.
func (m *Modal) State() modal.State { return m.cell.Get() }

// Keys returns the active key map.
func (m *Modal) Keys() ModalKeyMap { return m.keys }

// Captures reports whether the modal owns all input. While open, hosts
// must not route keys or clicks to the views behind it.
func (m *Modal) Captures() bool { return m.IsOpen() }

// Subscribe registers fn for state changes.
func (m *Modal) Subscribe(fn func(from, to modal.State)) func() {
	return m.cell.Subscribe(fn)
}

// Open opens the modal.
func (m *Modal) Open() tea.Cmd { return m.run("open", m.actions.Open) }

// Close closes the modal.
func (m *Modal) Close() tea.Cmd { return m.run("close", m.actions.Close) }

// Toggle flips the modal.
func (m *Modal) Toggle() tea.Cmd { return m.run("toggle", m.actions.Toggle) }

func (m *Modal) run(action string, fn func()) tea.Cmd {
	observe(m.opts.Observer, m.cell, "modal", m.id, action, fn)
	return m.out.flush()
}

// Bounds returns the dialog rectangle for the last known terminal size.
// ok is false when no BoundsFunc is configured or no size has been seen.
func (m *Modal) Bounds() (x, y, w, h int, ok bool) {
	if m.opts.Bounds == nil || m.width == 0 || m.height == 0 {
		return 0, 0, 0, 0, false
	}
	x, y, w, h = m.opts.Bounds(m.width, m.height)
	return x, y, w, h, true
}

// Contains reports whether the cell (cx, cy) lies inside the dialog.
func (m *Modal) Contains(cx, cy int) bool {
	x, y, w, h, ok := m.Bounds()
	if !ok {
		return false
	}
	return inRect(cx, cy, x, y, w, h)
}

// Update handles resize, Escape and outside clicks. The returned bool is
// true when the message was consumed.
func (m *Modal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return false, nil
	case tea.KeyMsg:
		if !m.IsOpen() {
			return false, nil
		}
		if m.opts.CloseOnEscape && key.Matches(msg, m.keys.Close) {
			return true, m.Close()
		}
		return true, nil
	case tea.MouseMsg:
		if !m.IsOpen() {
			return false, nil
		}
		if m.opts.CloseOnOutsideClick && isLeftPress(msg) {
			if _, _, _, _, ok := m.Bounds(); ok && !m.Contains(msg.X, msg.Y) {
				return true, m.Close()
			}
		}
		return true, nil
	}
	return false, nil
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// Attrs returns the dialog's accessibility attributes.
func (m *Modal) Attrs() Attrs {
	a := Attrs{
		"id":         m.id.String(),
		"role":       "dialog",
		"aria-modal": "true",
	}
	if !m.IsOpen() {
		a["aria-hidden"] = "true"
	}
	return a
}
