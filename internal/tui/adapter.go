package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/ids"
	"headlessui/internal/store"
)

// resolveScope picks the element id root for a widget instance: a
// caller-supplied id (claimed in reg when one is given), else the next id
// from reg, else an id from an isolated registry.
func resolveScope(reg *ids.Registry, id, kind string) (ids.Scope, error) {
	if id != "" {
		if reg == nil {
			return ids.Scope(id), nil
		}
		return reg.Claim(id)
	}
	if reg == nil {
		reg = ids.NewIsolated()
	}
	return reg.Next(kind), nil
}

// outbox collects messages raised by core callbacks during one action.
type outbox struct {
	pending []tea.Msg
}

func (o *outbox) post(msg tea.Msg) {
	o.pending = append(o.pending, msg)
}

// flush returns a command delivering the collected messages, or nil.
func (o *outbox) flush() tea.Cmd {
	if len(o.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(o.pending))
	for _, msg := range o.pending {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	o.pending = nil
	return tea.Batch(cmds...)
}

// observe runs fn against cell and reports the transition to obs.
func observe[S comparable](obs store.Observer, cell *store.Cell[S], widget string, id ids.Scope, action string, fn func()) {
	from := cell.Get()
	fn()
	if obs == nil {
		return
	}
	to := cell.Get()
	obs.OnTransition(store.Transition{
		Widget:  widget,
		ID:      id.String(),
		Action:  action,
		From:    from,
		To:      to,
		Changed: from != to,
	})
}

// inRect reports whether the cell (cx, cy) lies in the w×h rectangle at (x, y).
func inRect(cx, cy, x, y, w, h int) bool {
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}
