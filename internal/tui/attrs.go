package tui

import (
	"sort"
	"strconv"
	"strings"
)

// Attrs is a set of accessibility attributes for one element.
type Attrs map[string]string

// With returns a copy of a overlaid with user. User values win.
func (a Attrs) With(user Attrs) Attrs {
	out := make(Attrs, len(a)+len(user))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range user {
		out[k] = v
	}
	return out
}

// String renders the attributes as key="value" pairs sorted by key.
func (a Attrs) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Quote(a[k]))
	}
	return strings.Join(parts, " ")
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}
