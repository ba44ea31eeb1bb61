// Package ids generates element identifiers for widget instances.
// Counters live in an explicit Registry, never in package state.
package ids

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

var (
	ErrEmptyID     = errors.New("ids: empty id")
	ErrDuplicateID = errors.New("ids: duplicate id")
)

// Registry hands out identifiers unique within itself.
type Registry struct {
	prefix string
	next   map[string]int
	used   map[string]struct{}
}

// NewRegistry creates a registry whose generated ids start with prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		next:   make(map[string]int),
		used:   make(map[string]struct{}),
	}
}

// NewIsolated creates a registry with a random prefix, for widgets built
// without a shared registry. Ids from separate isolated registries do not
// collide.
func NewIsolated() *Registry {
	return NewRegistry("w" + uuid.NewString()[:8])
}

// Next returns a fresh scope for a widget of the given kind,
// e.g. "ui-dropdown-1".
func (r *Registry) Next(kind string) Scope {
	for {
		r.next[kind]++
		id := kind + "-" + strconv.Itoa(r.next[kind])
		if r.prefix != "" {
			id = r.prefix + "-" + id
		}
		if _, taken := r.used[id]; !taken {
			r.used[id] = struct{}{}
			return Scope(id)
		}
	}
}

// Claim reserves a caller-supplied id.
func (r *Registry) Claim(id string) (Scope, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	if _, taken := r.used[id]; taken {
		return "", fmt.Errorf("claim %q: %w", id, ErrDuplicateID)
	}
	r.used[id] = struct{}{}
	return Scope(id), nil
}

// Scope is the root id of one widget instance. Element ids derive from it.
type Scope string

func (s Scope) String() string { return string(s) }

// Part returns the id of a named element, e.g. "<id>-menu".
func (s Scope) Part(name string) string {
	return string(s) + "-" + name
}

// Item returns the id of the i-th list item.
func (s Scope) Item(i int) string {
	return s.Part("item-" + strconv.Itoa(i))
}

// Tab returns the id of the i-th tab.
func (s Scope) Tab(i int) string {
	return s.Part("tab-" + strconv.Itoa(i))
}

// Panel returns the id of the i-th tab panel.
func (s Scope) Panel(i int) string {
	return s.Part("panel-" + strconv.Itoa(i))
}
