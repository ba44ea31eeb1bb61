package main

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"headlessui/internal/config"
	"headlessui/internal/dropdown"
	"headlessui/internal/ids"
	"headlessui/internal/modal"
	"headlessui/internal/store"
	"headlessui/internal/tabs"
	"headlessui/internal/tui"
)

// Focus ring members.
const (
	focusDropdown = "dropdown"
	focusTabs     = "tabs"
)

const maxEvents = 6

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	About     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous widget")),
		About:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "about")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys merges the global bindings with the focused widget's.
type helpKeys struct {
	global keyMap
	widget help.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, h.widget.ShortHelp()...)
	return append(out, h.global.NextFocus, h.global.About, h.global.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	out := append([][]key.Binding{}, h.widget.FullHelp()...)
	return append(out, []key.Binding{h.global.NextFocus, h.global.PrevFocus, h.global.About, h.global.Quit})
}

// model composes the three widgets into one Bubble Tea program.
type model struct {
	cfg      *config.Config
	dropdown *tui.Dropdown[string]
	tabs     *tui.Tabs
	about    *tui.Modal
	layers   tui.Layers
	focus    *tui.FocusRing
	keys     keyMap
	help     help.Model
	events   []string
	width    int
	height   int
}

func newModel(cfg *config.Config, obs store.Observer) (*model, error) {
	reg := ids.NewRegistry("demo")
	m := &model{
		cfg:   cfg,
		focus: tui.NewFocusRing(focusDropdown, focusTabs),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}

	var err error
	m.dropdown, err = tui.NewDropdown(tui.DropdownOptions[string]{
		Options: dropdown.Options[string]{
			Items:           cfg.Dropdown.Items,
			DefaultOpen:     cfg.Dropdown.DefaultOpen,
			DefaultSelected: dropdown.At(cfg.Dropdown.DefaultSelected),
		},
		ID:            cfg.Dropdown.ID,
		Registry:      reg,
		Observer:      obs,
		TriggerBounds: m.triggerBounds,
		ItemBounds:    m.itemBounds,
	})
	if err != nil {
		return nil, fmt.Errorf("dropdown: %w", err)
	}

	orientation, err := tui.ParseOrientation(cfg.Tabs.Orientation)
	if err != nil {
		return nil, fmt.Errorf("tabs: %w", err)
	}
	m.tabs, err = tui.NewTabs(len(cfg.Tabs.Labels), tui.TabsOptions{
		Options:     tabs.Options{DefaultIndex: cfg.Tabs.DefaultIndex},
		Orientation: orientation,
		ID:          cfg.Tabs.ID,
		Registry:    reg,
		Observer:    obs,
	})
	if err != nil {
		return nil, fmt.Errorf("tabs: %w", err)
	}

	opts := tui.DefaultModalOptions()
	opts.Options = modal.Options{DefaultOpen: cfg.Modal.DefaultOpen}
	opts.ID = cfg.Modal.ID
	opts.Registry = reg
	opts.CloseOnEscape = cfg.Modal.CloseOnEscape
	opts.CloseOnOutsideClick = cfg.Modal.CloseOnOutsideClick
	opts.Observer = obs
	opts.Bounds = m.dialogBounds
	m.about, err = tui.NewModal(opts)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}
	if m.about.IsOpen() {
		m.layers.Push(m.about)
	}
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.dropdown.Update(msg)
		m.layers.Route(msg)
		return m, nil

	case tui.DropdownToggledMsg:
		m.record("%s %s", msg.ID, openWord(msg.Open))
		return m, nil
	case tui.DropdownSelectedMsg[string]:
		m.record("%s selected %q (#%d)", msg.ID, msg.Item, msg.Index)
		return m, nil
	case tui.TabChangedMsg:
		m.record("%s activated %q", msg.ID, m.tabLabel(msg.Index))
		return m, nil
	case tui.ModalOpenChangedMsg:
		m.record("%s %s", msg.ID, openWord(msg.Open))
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if handled, cmd := m.layers.Route(msg); handled {
		return m, cmd
	}

	if mouse, ok := msg.(tea.MouseMsg); ok {
		consumed, cmd := m.dropdown.HandleMouse(mouse)
		if consumed {
			m.focus.SetFocus(focusDropdown)
		}
		return m, cmd
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var consumed bool
	var cmd tea.Cmd
	switch m.focus.Current {
	case focusDropdown:
		consumed, cmd = m.dropdown.HandleKey(km)
	case focusTabs:
		consumed, cmd = m.tabs.HandleKey(km)
	}
	if consumed {
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.About):
		return m, m.layers.Open(m.about)
	case key.Matches(km, m.keys.NextFocus):
		return m, m.moveFocus(m.focus.Next)
	case key.Matches(km, m.keys.PrevFocus):
		return m, m.moveFocus(m.focus.Prev)
	}
	return m, nil
}

func (m *model) moveFocus(move func() string) tea.Cmd {
	cmd := m.dropdown.Blur()
	move()
	return cmd
}

func (m *model) record(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	log.Print(line)
	m.events = append(m.events, line)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *model) tabLabel(i int) string {
	if i < 0 || i >= len(m.cfg.Tabs.Labels) {
		return ""
	}
	return m.cfg.Tabs.Labels[i]
}

func (m *model) focusedKeys() help.KeyMap {
	if m.about.IsOpen() {
		return m.about.Keys()
	}
	if m.focus.Is(focusTabs) {
		return m.tabs.Keys()
	}
	return m.dropdown.Keys()
}

// Screen rows of the dropdown frame: title, blank line, top border, then
// the trigger and the open menu rows. Content starts after border and padding.
const (
	dropdownTriggerRow = 3
	dropdownContentCol = 2
)

func (m *model) triggerBounds(width, height int) (x, y, w, h int) {
	return dropdownContentCol, dropdownTriggerRow, lipgloss.Width(m.renderTrigger()), 1
}

func (m *model) itemBounds(width, height, i int) (x, y, w, h int) {
	return dropdownContentCol, dropdownTriggerRow + 1 + i, lipgloss.Width(m.renderItem(i)), 1
}

// dialogBounds locates the about dialog for outside-click detection. It
// measures the same box View renders.
func (m *model) dialogBounds(width, height int) (x, y, w, h int) {
	box := m.renderDialog()
	return tui.Centered(lipgloss.Width(box), lipgloss.Height(box))(width, height)
}

func openWord(open bool) string {
	if open {
		return "opened"
	}
	return "closed"
}
