package tui

import "testing"

func TestAttrs_WithUserWins(t *testing.T) {
	base := Attrs{"role": "button", "tabindex": "0"}
	got := base.With(Attrs{"tabindex": "-1", "class": "x"})
	if got["tabindex"] != "-1" || got["role"] != "button" || got["class"] != "x" {
		t.Errorf("With = %v", got)
	}
	if base["tabindex"] != "0" {
		t.Error("With must not mutate the receiver")
	}
}

func TestAttrs_String(t *testing.T) {
	a := Attrs{"role": "tab", "aria-selected": "true"}
	want := `aria-selected="true" role="tab"`
	if got := a.String(); got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
}
