// Package tui binds the headless widget cores to Bubble Tea.
//
// Each adapter owns a store.Cell around the widget state and re-derives
// the core action set whenever its inputs change. On top of that it adds
// what the cores deliberately leave out:
//   - Key maps: bubbles/key bindings translated into core actions
//   - Focus: a FocusRing tracking which element of the widget has focus
//   - Attrs: accessibility attributes (roles, aria-* state, element ids)
//   - Messages: core callbacks surfaced as tea.Msg values via tea.Cmd
//   - Layers: modal stacking, input capture and outside-click dismissal
package tui
