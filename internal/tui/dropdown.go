package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/dropdown"
	"headlessui/internal/ids"
	"headlessui/internal/store"
)

// Focusable parts of a dropdown.
const (
	PartTrigger = "trigger"
	PartMenu    = "menu"
)

// DropdownOptions configures a Dropdown adapter.
type DropdownOptions[T any] struct {
	dropdown.Options[T]

	ID       string        // optional; generated from Registry when empty
	Registry *ids.Registry // optional
	Keys     DropdownKeyMap
	Observer store.Observer

	// TriggerBounds and ItemBounds locate the trigger and the menu rows for
	// mouse handling. A nil locator disables pointer input for that part.
	TriggerBounds BoundsFunc
	ItemBounds    ItemBoundsFunc
}

// ItemBoundsFunc returns the screen rectangle of menu item i given terminal
// dimensions.
type ItemBoundsFunc func(width, height, i int) (x, y, w, h int)

// Dropdown binds the dropdown core to Bubble Tea key messages.
type Dropdown[T any] struct {
	id      ids.Scope
	opts    dropdown.Options[T]
	cell    *store.Cell[dropdown.State]
	actions dropdown.Actions[T]
	focus   *FocusRing
	keys    DropdownKeyMap
	obs     store.Observer
	out     outbox

	triggerBounds BoundsFunc
	itemBounds    ItemBoundsFunc
	width, height int
}

// NewDropdown creates a dropdown adapter. It fails only when a
// caller-supplied ID is already claimed in the registry.
func NewDropdown[T any](opts DropdownOptions[T]) (*Dropdown[T], error) {
	id, err := resolveScope(opts.Registry, opts.ID, "dropdown")
	if err != nil {
		return nil, err
	}
	keys := opts.Keys
	if unbound(keys.Toggle) {
		keys = DefaultDropdownKeyMap()
	}
	d := &Dropdown[T]{
		id:    id,
		opts:  opts.Options,
		cell:  store.NewCell(dropdown.NewState(opts.Options)),
		focus: NewFocusRing(PartTrigger, PartMenu),
		keys:  keys,
		obs:   opts.Observer,

		triggerBounds: opts.TriggerBounds,
		itemBounds:    opts.ItemBounds,
	}
	d.derive()
	d.syncFocus()
	return d, nil
}

// derive rebuilds the core action set around the current items and
// callbacks. Core callbacks are forwarded and also posted as messages.
func (d *Dropdown[T]) derive() {
	user := d.opts
	opts := d.opts
	opts.OnSelect = func(item T, index int) {
		if user.OnSelect != nil {
			user.OnSelect(item, index)
		}
		d.out.post(DropdownSelectedMsg[T]{ID: d.id.String(), Index: index, Item: item})
	}
	opts.OnChange = func(open bool) {
		if user.OnChange != nil {
			user.OnChange(open)
		}
		d.out.post(DropdownToggledMsg{ID: d.id.String(), Open: open})
	}
	d.actions = dropdown.NewActions(d.cell.Set, opts)
}

// SetItems replaces the item collection. Indices recorded against the old
// collection are kept; lookups treat out-of-range ones as absent.
func (d *Dropdown[T]) SetItems(items []T) {
	d.opts.Items = items
	d.derive()
}

// ID returns the widget's root element id.
func (d *Dropdown[T]) ID() string { return d.id.String() }

// State returns the current core state.
func (d *Dropdown[T]) State() dropdown.State { return d.cell.Get() }

// Items returns the current collection.
func (d *Dropdown[T]) Items() []T { return d.opts.Items }

// Focus returns the focused part, PartTrigger or PartMenu.
func (d *Dropdown[T]) Focus() string { return d.focus.Current }

// Keys returns the active key map.
func (d *Dropdown[T]) Keys() DropdownKeyMap { return d.keys }

// SelectedItem returns the committed item, if any.
func (d *Dropdown[T]) SelectedItem() (T, bool) {
	return dropdown.SelectedItem(d.cell.Get(), d.opts.Items)
}

// HighlightedItem returns the highlighted item, if any.
func (d *Dropdown[T]) HighlightedItem() (T, bool) {
	return dropdown.HighlightedItem(d.cell.Get(), d.opts.Items)
}

// Subscribe registers fn for state changes.
func (d *Dropdown[T]) Subscribe(fn func(from, to dropdown.State)) func() {
	return d.cell.Subscribe(fn)
}

// Open opens the menu and focuses it.
func (d *Dropdown[T]) Open() tea.Cmd {
	return d.run("open", d.actions.Open, true)
}

// Close closes the menu and returns focus to the trigger.
func (d *Dropdown[T]) Close() tea.Cmd {
	return d.run("close", d.actions.Close, true)
}

// Toggle opens or closes the menu.
func (d *Dropdown[T]) Toggle() tea.Cmd {
	return d.run("toggle", d.actions.Toggle, true)
}

// SelectItem commits item i and returns focus to the trigger.
func (d *Dropdown[T]) SelectItem(i int) tea.Cmd {
	return d.run("select_item", func() { d.actions.SelectItem(i) }, true)
}

// HighlightItem moves the highlight to i; -1 clears it.
func (d *Dropdown[T]) HighlightItem(i int) tea.Cmd {
	return d.run("highlight_item", func() { d.actions.HighlightItem(i) }, false)
}

// HighlightNext advances the highlight with wraparound.
func (d *Dropdown[T]) HighlightNext() tea.Cmd {
	return d.run("highlight_next", d.actions.HighlightNext, false)
}

// HighlightPrevious retreats the highlight with wraparound.
func (d *Dropdown[T]) HighlightPrevious() tea.Cmd {
	return d.run("highlight_previous", d.actions.HighlightPrevious, false)
}

// SelectHighlighted commits the highlighted item and returns focus to the
// trigger.
func (d *Dropdown[T]) SelectHighlighted() tea.Cmd {
	return d.run("select_highlighted", d.actions.SelectHighlighted, true)
}

// Blur handles the menu losing focus to something outside the widget.
func (d *Dropdown[T]) Blur() tea.Cmd {
	if !d.focus.Is(PartMenu) {
		return nil
	}
	return d.Close()
}

func (d *Dropdown[T]) run(action string, fn func(), refocus bool) tea.Cmd {
	observe(d.obs, d.cell, "dropdown", d.id, action, fn)
	if refocus {
		d.syncFocus()
	}
	return d.out.flush()
}

// syncFocus puts focus on the menu while open and on the trigger otherwise.
func (d *Dropdown[T]) syncFocus() {
	if d.cell.Get().Open {
		d.focus.SetFocus(PartMenu)
	} else {
		d.focus.SetFocus(PartTrigger)
	}
}

// Update implements the Bubble Tea update step for key, mouse and resize
// messages.
func (d *Dropdown[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
	case tea.KeyMsg:
		_, cmd := d.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		_, cmd := d.HandleMouse(msg)
		return cmd
	}
	return nil
}

// HandleMouse maps pointer input to actions: a left press on the trigger
// toggles, a left press on an open menu row selects it, and motion over an
// open menu row highlights it. consumed is false for input outside the
// widget.
func (d *Dropdown[T]) HandleMouse(msg tea.MouseMsg) (consumed bool, cmd tea.Cmd) {
	switch {
	case isLeftPress(msg):
		if d.onTrigger(msg.X, msg.Y) {
			return true, d.Toggle()
		}
		if i, ok := d.itemAt(msg.X, msg.Y); ok {
			return true, d.SelectItem(i)
		}
	case msg.Action == tea.MouseActionMotion:
		if i, ok := d.itemAt(msg.X, msg.Y); ok {
			return true, d.HighlightItem(i)
		}
	}
	return false, nil
}

func (d *Dropdown[T]) onTrigger(cx, cy int) bool {
	if d.triggerBounds == nil || d.width == 0 || d.height == 0 {
		return false
	}
	x, y, w, h := d.triggerBounds(d.width, d.height)
	return inRect(cx, cy, x, y, w, h)
}

// itemAt returns the menu row under (cx, cy) while the menu is open.
func (d *Dropdown[T]) itemAt(cx, cy int) (int, bool) {
	if d.itemBounds == nil || d.width == 0 || d.height == 0 || !d.cell.Get().Open {
		return 0, false
	}
	for i := range d.opts.Items {
		x, y, w, h := d.itemBounds(d.width, d.height, i)
		if inRect(cx, cy, x, y, w, h) {
			return i, true
		}
	}
	return 0, false
}

// HandleKey maps a key to an action. consumed is false for keys the
// dropdown does not bind in its current focus.
func (d *Dropdown[T]) HandleKey(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if d.focus.Is(PartMenu) && d.cell.Get().Open {
		return d.handleMenuKey(msg)
	}
	return d.handleTriggerKey(msg)
}

func (d *Dropdown[T]) handleTriggerKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Open):
		return true, d.Open()
	case key.Matches(msg, d.keys.Toggle):
		return true, d.Toggle()
	}
	return false, nil
}

func (d *Dropdown[T]) handleMenuKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Next):
		return true, d.HighlightNext()
	case key.Matches(msg, d.keys.Previous):
		return true, d.HighlightPrevious()
	case key.Matches(msg, d.keys.First):
		return true, d.HighlightItem(0)
	case key.Matches(msg, d.keys.Last):
		return true, d.HighlightItem(len(d.opts.Items) - 1)
	case key.Matches(msg, d.keys.Select):
		if d.cell.Get().Highlighted.IsNone() {
			return true, nil
		}
		return true, d.SelectHighlighted()
	case key.Matches(msg, d.keys.Dismiss):
		return true, d.Close()
	}
	return false, nil
}

// TriggerAttrs returns the accessibility attributes of the trigger.
func (d *Dropdown[T]) TriggerAttrs() Attrs {
	return Attrs{
		"id":            d.id.Part(PartTrigger),
		"role":          "button",
		"aria-haspopup": "listbox",
		"aria-expanded": boolAttr(d.cell.Get().Open),
		"aria-controls": d.id.Part(PartMenu),
		"tabindex":      "0",
	}
}

// MenuAttrs returns the accessibility attributes of the menu.
func (d *Dropdown[T]) MenuAttrs() Attrs {
	a := Attrs{
		"id":              d.id.Part(PartMenu),
		"role":            "listbox",
		"tabindex":        "-1",
		"aria-labelledby": d.id.Part(PartTrigger),
	}
	if i, ok := d.cell.Get().Highlighted.Get(); ok {
		a["aria-activedescendant"] = d.id.Item(i)
	}
	return a
}

// ItemAttrs returns the accessibility attributes of item i.
func (d *Dropdown[T]) ItemAttrs(i int) Attrs {
	return Attrs{
		"id":            d.id.Item(i),
		"role":          "option",
		"tabindex":      "-1",
		"aria-selected": boolAttr(i >= 0 && d.cell.Get().Selected == dropdown.At(i)),
	}
}
