package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Bubble Tea reports the space bar as " " in tea.KeyMsg.String().
const keySpace = " "

// DropdownKeyMap holds the dropdown bindings. Trigger bindings apply while
// the trigger has focus; the rest while the open menu has focus.
type DropdownKeyMap struct {
	// Trigger
	Open   key.Binding
	Toggle key.Binding

	// Menu
	Next     key.Binding
	Previous key.Binding
	First    key.Binding
	Last     key.Binding
	Select   key.Binding
	Dismiss  key.Binding
}

// DefaultDropdownKeyMap returns the listbox bindings: arrows open and
// navigate, Enter/Space toggle or commit, Esc/Tab dismiss.
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Open: key.NewBinding(
			key.WithKeys("down", "up"),
			key.WithHelp("↑/↓", "open"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", keySpace),
			key.WithHelp("enter/space", "toggle"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", keySpace),
			key.WithHelp("enter/space", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc/tab", "close"),
		),
	}
}

// Ensure DropdownKeyMap implements help.KeyMap.
var _ help.KeyMap = DropdownKeyMap{}

// ShortHelp implements help.KeyMap.
func (k DropdownKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Next, k.Previous, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k DropdownKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Toggle},
		{k.Next, k.Previous, k.First, k.Last},
		{k.Select, k.Dismiss},
	}
}

// ModalKeyMap holds the modal bindings.
type ModalKeyMap struct {
	Close key.Binding
}

// DefaultModalKeyMap binds Esc to close.
func DefaultModalKeyMap() ModalKeyMap {
	return ModalKeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ModalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close}
}

// FullHelp implements help.KeyMap.
func (k ModalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// TabsKeyMap holds the tab navigation bindings.
type TabsKeyMap struct {
	Next     key.Binding
	Previous key.Binding
}

// DefaultTabsKeyMap returns arrow bindings along the orientation axis.
func DefaultTabsKeyMap(o Orientation) TabsKeyMap {
	if o == Vertical {
		return TabsKeyMap{
			Next:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next tab")),
			Previous: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous tab")),
		}
	}
	return TabsKeyMap{
		Next:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tab")),
		Previous: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous tab")),
	}
}

// ShortHelp implements help.KeyMap.
func (k TabsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next}
}

// FullHelp implements help.KeyMap.
func (k TabsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func unbound(b key.Binding) bool {
	return len(b.Keys()) == 0
}
