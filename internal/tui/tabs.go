package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/ids"
	"headlessui/internal/store"
	"headlessui/internal/tabs"
)

// Orientation is the axis a tab list is laid out on.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation parses "horizontal" or "vertical". Empty means horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// TabsOptions configures a Tabs adapter.
type TabsOptions struct {
	tabs.Options

	Orientation Orientation
	ID          string
	Registry    *ids.Registry
	Keys        TabsKeyMap // defaults to arrows along Orientation
	Observer    store.Observer
}

// Tabs binds the tabs core to Bubble Tea key messages.
type Tabs struct {
	id      ids.Scope
	opts    TabsOptions
	count   int
	cell    *store.Cell[tabs.State]
	actions tabs.Actions
	keys    TabsKeyMap
	out     outbox
}

// NewTabs creates a tabs adapter over count tabs.
func NewTabs(count int, opts TabsOptions) (*Tabs, error) {
	id, err := resolveScope(opts.Registry, opts.ID, "tabs")
	if err != nil {
		return nil, err
	}
	keys := opts.Keys
	if unbound(keys.Next) {
		keys = DefaultTabsKeyMap(opts.Orientation)
	}
	t := &Tabs{
		id:    id,
		opts:  opts,
		count: count,
		cell:  store.NewCell(tabs.NewState(opts.Options)),
		keys:  keys,
	}
	t.derive()
	return t, nil
}

func (t *Tabs) derive() {
	user := t.opts.OnChange
	opts := t.opts.Options
	opts.OnChange = func(index int) {
		if user != nil {
			user(index)
		}
		t.out.post(TabChangedMsg{ID: t.id.String(), Index: index})
	}
	t.actions = tabs.NewActions(t.cell.Set, opts, t.count)
}

// SetCount changes the number of tabs. The active index is left as is.
func (t *Tabs) SetCount(n int) {
	t.count = n
	t.derive()
}

// ID returns the tab group's root element id.
func (t *Tabs) ID() string { return t.id.String() }

// Active returns the active tab index.
func (t *Tabs) Active() int { return t.cell.Get().Active }

// Count returns the number of tabs.
func (t *Tabs) Count() int { return t.count }

// Orientation returns the list axis.
func (t *Tabs) Orientation() Orientation { return t.opts.Orientation }

// Keys returns the active key map.
func (t *Tabs) Keys() TabsKeyMap { return t.keys }

// Subscribe registers fn for state changes.
func (t *Tabs) Subscribe(fn func(from, to tabs.State)) func() {
	return t.cell.Subscribe(fn)
}

// Select activates tab i.
func (t *Tabs) Select(i int) tea.Cmd {
	return t.run("set_active_index", func() { t.actions.SetActiveIndex(i) })
}

// Next activates the following tab.
func (t *Tabs) Next() tea.Cmd {
	return t.run("activate_next", t.actions.ActivateNext)
}

// Previous activates the preceding tab.
func (t *Tabs) Previous() tea.Cmd {
	return t.run("activate_previous", t.actions.ActivatePrevious)
}

func (t *Tabs) run(action string, fn func()) tea.Cmd {
	observe(t.opts.Observer, t.cell, "tabs", t.id, action, fn)
	return t.out.flush()
}

// Update implements the Bubble Tea update step for key messages.
func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		_, cmd := t.HandleKey(msg)
		return cmd
	}
	return nil
}

// HandleKey maps arrow keys along the orientation axis to navigation.
func (t *Tabs) HandleKey(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.Next):
		return true, t.Next()
	case key.Matches(msg, t.keys.Previous):
		return true, t.Previous()
	}
	return false, nil
}

// ListAttrs returns the accessibility attributes of the tab list.
func (t *Tabs) ListAttrs() Attrs {
	return Attrs{
		"id":               t.id.String(),
		"role":             "tablist",
		"aria-orientation": t.opts.Orientation.String(),
	}
}

// TabAttrs returns the accessibility attributes of tab i. Only the active
// tab is in the tab order.
func (t *Tabs) TabAttrs(i int) Attrs {
	active := i == t.Active()
	tabindex := -1
	if active {
		tabindex = 0
	}
	return Attrs{
		"id":            t.id.Tab(i),
		"role":          "tab",
		"aria-selected": boolAttr(active),
		"aria-controls": t.id.Panel(i),
		"tabindex":      strconv.Itoa(tabindex),
	}
}

// PanelAttrs returns the accessibility attributes of panel i.
func (t *Tabs) PanelAttrs(i int) Attrs {
	a := Attrs{
		"id":              t.id.Panel(i),
		"role":            "tabpanel",
		"aria-labelledby": t.id.Tab(i),
		"tabindex":        "0",
	}
	if i != t.Active() {
		a["hidden"] = "true"
	}
	return a
}
