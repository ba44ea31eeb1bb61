package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"headlessui/internal/dropdown"
	"headlessui/internal/tui"
)

// Theme colors
const (
	colorAccent    = "86"  // titles, active tab
	colorHighlight = "205" // highlighted option, focus border
	colorMuted     = "241" // hints, attributes
	colorText      = "252"
)

var styles = struct {
	Title     lipgloss.Style
	Box       lipgloss.Style
	BoxFocus  lipgloss.Style
	Dialog    lipgloss.Style
	Selected  lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Attrs     lipgloss.Style
	EventLine lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorMuted)).
		Padding(0, 1),
	BoxFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(0, 1),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(1, 2).
		Width(48),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)).
		Bold(true),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)).
		Bold(true).
		Underline(true),
	Inactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Attrs: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Italic(true),
	EventLine: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
}

func (m *model) View() string {
	if m.about.IsOpen() && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderDialog())
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("headless widgets"))
	b.WriteString("\n\n")
	b.WriteString(m.frame(focusDropdown, m.renderDropdown()))
	b.WriteString("\n")
	b.WriteString(m.frame(focusTabs, m.renderTabs()))
	b.WriteString("\n")
	b.WriteString(m.renderEvents())
	b.WriteString("\n")
	b.WriteString(m.help.View(helpKeys{global: m.keys, widget: m.focusedKeys()}))
	return b.String()
}

func (m *model) frame(id, body string) string {
	if m.focus.Is(id) {
		return styles.BoxFocus.Render(body)
	}
	return styles.Box.Render(body)
}

func (m *model) renderDropdown() string {
	d := m.dropdown
	var b strings.Builder
	b.WriteString(m.renderTrigger())
	if d.State().Open {
		for i := range d.Items() {
			b.WriteString("\n")
			b.WriteString(m.renderItem(i))
		}
		b.WriteString("\n")
		b.WriteString(styles.Attrs.Render(d.MenuAttrs().String()))
	}
	b.WriteString("\n")
	b.WriteString(styles.Attrs.Render(d.TriggerAttrs().String()))
	return b.String()
}

func (m *model) renderTrigger() string {
	d := m.dropdown
	current := "choose…"
	if item, ok := d.SelectedItem(); ok {
		current = item
	}
	arrow := "▾"
	if d.State().Open {
		arrow = "▴"
	}
	return styles.Normal.Render(m.cfg.Dropdown.Label+": ") + styles.Selected.Render("[ "+current+" "+arrow+" ]")
}

func (m *model) renderItem(i int) string {
	d := m.dropdown
	cursor := "  "
	style := styles.Normal
	if d.State().Highlighted == dropdown.At(i) {
		cursor = "> "
		style = styles.Selected
	}
	mark := " "
	if d.ItemAttrs(i)["aria-selected"] == "true" {
		mark = "✓"
	}
	return style.Render(cursor + mark + " " + d.Items()[i])
}

func (m *model) renderTabs() string {
	t := m.tabs
	labels := make([]string, 0, len(m.cfg.Tabs.Labels))
	for i, label := range m.cfg.Tabs.Labels {
		if i == t.Active() {
			labels = append(labels, styles.Active.Render(label))
		} else {
			labels = append(labels, styles.Inactive.Render(label))
		}
	}

	var list string
	if t.Orientation() == tui.Vertical {
		list = lipgloss.JoinVertical(lipgloss.Left, labels...)
	} else {
		list = strings.Join(labels, styles.Muted.Render(" │ "))
	}

	active := t.Active()
	panel := lipgloss.JoinVertical(lipgloss.Left,
		styles.Normal.Render(m.tabLabel(active)+" panel"),
		styles.Attrs.Render(t.PanelAttrs(active).String()),
	)
	if t.Orientation() == tui.Vertical {
		return lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", panel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, "", panel)
}

func (m *model) renderEvents() string {
	if len(m.events) == 0 {
		return styles.Muted.Render("no events yet")
	}
	lines := make([]string, len(m.events))
	for i, e := range m.events {
		lines[i] = styles.EventLine.Render("• " + e)
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(m.cfg.Modal.Title),
		"",
		styles.Normal.Render(m.cfg.Modal.Body),
		"",
		styles.Attrs.Render(m.about.Attrs().String()),
		"",
		styles.Muted.Render(m.help.ShortHelpView(m.about.Keys().ShortHelp())),
	)
	return styles.Dialog.Render(body)
}
