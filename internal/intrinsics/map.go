package intrinsics

import (
	"sort"
)

// Entry is one row of the dispatch table.
type Entry struct {
	Prototype FunctionPrototype
	Type      FnType
}

// Map is an ordered mapping from FunctionPrototype to FnType. The backing
// slice is kept sorted by prototype order, so iteration order is a pure
// function of the map's contents regardless of insertion order.
//
// A Map is built fresh per compiled body and owned by a single collection
// pass; concurrent collection of two bodies must use two Maps.
type Map struct {
	entries []Entry
}

// Insert records proto if absent, computing its type lazily. Insertion is
// idempotent: the first-computed type for a prototype wins and repeated
// requests never create a second, differently-typed entry.
func (m *Map) Insert(proto FunctionPrototype, mkType func() FnType) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Prototype.Compare(proto) >= 0
	})
	if i < len(m.entries) && m.entries[i].Prototype.Compare(proto) == 0 {
		return
	}
	m.entries = append(m.entries, Entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry{Prototype: proto, Type: mkType()}
}

// Get returns the type recorded for proto.
func (m *Map) Get(proto FunctionPrototype) (FnType, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Prototype.Compare(proto) >= 0
	})
	if i < len(m.entries) && m.entries[i].Prototype.Compare(proto) == 0 {
		return m.entries[i].Type, true
	}
	return FnType{}, false
}

// Entries returns the rows in prototype order.
// READONLY: вызывающий не должен модифицировать срез.
func (m *Map) Entries() []Entry {
	return m.entries
}

// Len returns the number of rows.
func (m *Map) Len() int { return len(m.entries) }
