package dropdown

import "strconv"

// Index is an optional position in the caller's item collection.
// The zero value is None.
type Index struct {
	pos int
	set bool
}

// None is the absent index.
var None Index

// At returns the index i. Negative values yield None.
func At(i int) Index {
	if i < 0 {
		return None
	}
	return Index{pos: i, set: true}
}

// Get returns the position and whether one is set.
func (x Index) Get() (int, bool) {
	return x.pos, x.set
}

// IsNone reports whether no position is set.
func (x Index) IsNone() bool {
	return !x.set
}

// Int returns the position, or -1 for None.
func (x Index) Int() int {
	if !x.set {
		return -1
	}
	return x.pos
}

// In reports whether the index is set and lies within [0, n).
func (x Index) In(n int) bool {
	return x.set && x.pos < n
}

func (x Index) String() string {
	if !x.set {
		return "none"
	}
	return strconv.Itoa(x.pos)
}
