package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"headlessui/internal/modal"
)

func newDialog(t *testing.T, opts ModalOptions) *Modal {
	t.Helper()
	m, err := NewModal(opts)
	if err != nil {
		t.Fatalf("NewModal: %v", err)
	}
	return m
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModal_OpenClosePostsMessages(t *testing.T) {
	var changes []bool
	opts := DefaultModalOptions()
	opts.ID = "confirm"
	opts.OnOpenChange = func(open bool) { changes = append(changes, open) }
	m := newDialog(t, opts)

	msgs := collect(m.Open())
	if len(msgs) != 1 {
		t.Fatalf("open posted %d messages", len(msgs))
	}
	if got, ok := msgs[0].(ModalOpenChangedMsg); !ok || !got.Open || got.ID != "confirm" {
		t.Errorf("msg = %#v", msgs[0])
	}
	if !m.IsOpen() || !m.Captures() {
		t.Error("expected open and capturing")
	}

	if cmd := m.Open(); cmd != nil {
		t.Error("open on open modal should post nothing")
	}
	m.Close()
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Errorf("OnOpenChange calls = %v", changes)
	}
}

func TestModal_Toggle(t *testing.T) {
	m := newDialog(t, DefaultModalOptions())
	m.Toggle()
	if !m.IsOpen() {
		t.Error("toggle should open")
	}
	m.Toggle()
	if m.IsOpen() {
		t.Error("toggle should close")
	}
}

func TestModal_EscapeCloses(t *testing.T) {
	m := newDialog(t, DefaultModalOptions())
	if handled, _ := m.Update(keyMsg("esc")); handled {
		t.Error("closed modal should not consume keys")
	}
	m.Open()
	handled, _ := m.Update(keyMsg("esc"))
	if !handled || m.IsOpen() {
		t.Errorf("esc: handled=%v open=%v", handled, m.IsOpen())
	}
}

func TestModal_EscapeDisabled(t *testing.T) {
	opts := DefaultModalOptions()
	opts.CloseOnEscape = false
	m := newDialog(t, opts)
	m.Open()
	handled, _ := m.Update(keyMsg("esc"))
	if !handled {
		t.Error("open modal should still capture esc")
	}
	if !m.IsOpen() {
		t.Error("esc should not close when disabled")
	}
}

func TestModal_OutsideClickCloses(t *testing.T) {
	opts := DefaultModalOptions()
	opts.Bounds = Centered(20, 10)
	m := newDialog(t, opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Open()

	// Dialog spans x 30..49, y 7..16.
	if handled, _ := m.Update(click(35, 10)); !handled || !m.IsOpen() {
		t.Errorf("inside click: handled=%v open=%v", handled, m.IsOpen())
	}
	if handled, _ := m.Update(click(0, 0)); !handled || m.IsOpen() {
		t.Errorf("outside click: handled=%v open=%v", handled, m.IsOpen())
	}
}

func TestModal_OutsideClickIgnoredWithoutBounds(t *testing.T) {
	m := newDialog(t, DefaultModalOptions())
	m.Open()
	m.Update(click(0, 0))
	if !m.IsOpen() {
		t.Error("click without bounds must not close")
	}
}

func TestModal_OutsideClickDisabled(t *testing.T) {
	opts := DefaultModalOptions()
	opts.CloseOnOutsideClick = false
	opts.Bounds = Centered(20, 10)
	m := newDialog(t, opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Open()
	m.Update(click(0, 0))
	if !m.IsOpen() {
		t.Error("outside click should not close when disabled")
	}
}

func TestModal_RightClickDoesNotClose(t *testing.T) {
	opts := DefaultModalOptions()
	opts.Bounds = Centered(20, 10)
	m := newDialog(t, opts)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Open()
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if !m.IsOpen() {
		t.Error("right click should not close")
	}
}

func TestModal_DefaultOpen(t *testing.T) {
	opts := DefaultModalOptions()
	opts.Options = modal.Options{DefaultOpen: true}
	m := newDialog(t, opts)
	if !m.IsOpen() {
		t.Error("expected initially open")
	}
}

func TestModal_Attrs(t *testing.T) {
	opts := DefaultModalOptions()
	opts.ID = "dlg"
	m := newDialog(t, opts)
	a := m.Attrs()
	if a["role"] != "dialog" || a["aria-modal"] != "true" || a["aria-hidden"] != "true" {
		t.Errorf("closed attrs = %v", a)
	}
	m.Open()
	if _, ok := m.Attrs()["aria-hidden"]; ok {
		t.Error("open modal should not be aria-hidden")
	}
}

func TestCentered(t *testing.T) {
	x, y, w, h := Centered(20, 10)(80, 24)
	if x != 30 || y != 7 || w != 20 || h != 10 {
		t.Errorf("Centered = %d,%d %dx%d", x, y, w, h)
	}
	x, y, _, _ = Centered(100, 50)(80, 24)
	if x != 0 || y != 0 {
		t.Errorf("oversized box should clamp to origin, got %d,%d", x, y)
	}
}
