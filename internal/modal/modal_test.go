package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"headlessui/internal/store"
)

func newModal(opts Options) (*store.Cell[State], Actions, *[]bool) {
	var calls []bool
	opts.OnOpenChange = func(open bool) { calls = append(calls, open) }
	cell := store.NewCell(NewState(opts))
	return cell, NewActions(cell.Set, opts), &calls
}

func TestNewState(t *testing.T) {
	assert.False(t, NewState(Options{}).Open)
	assert.True(t, NewState(Options{DefaultOpen: true}).Open)
}

func TestOpenClose(t *testing.T) {
	cell, a, calls := newModal(Options{})

	a.Open()
	assert.True(t, cell.Get().Open)
	a.Open()
	a.Close()
	assert.False(t, cell.Get().Open)
	a.Close()

	assert.Equal(t, []bool{true, false}, *calls)
}

func TestToggle_FiresOnceWithTrue(t *testing.T) {
	cell, a, calls := newModal(Options{})

	a.Toggle()

	assert.True(t, cell.Get().Open)
	assert.Equal(t, []bool{true}, *calls)
}

func TestToggle_FromOpen(t *testing.T) {
	cell, a, calls := newModal(Options{DefaultOpen: true})
	a.Toggle()
	assert.False(t, cell.Get().Open)
	assert.Equal(t, []bool{false}, *calls)
}

func TestNilCallbackIsSkipped(t *testing.T) {
	cell := store.NewCell(NewState(Options{}))
	a := NewActions(cell.Set, Options{})
	a.Toggle()
	a.Close()
	assert.False(t, cell.Get().Open)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "open=true", State{Open: true}.String())
}
