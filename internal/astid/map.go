package astid

import (
	"fmt"
	"strings"

	"ember/internal/syntax"
)

// ErasedItemID is the identity of a module item within one file's Map,
// with the node-kind tag erased. Identities are allocated from zero in
// assignment order, so they are totally ordered and ancestors always
// compare lower than their descendants.
type ErasedItemID uint32

// Map owns the identity→locator arena for a single file. It is built once
// per parse and replaced wholesale when the file is reparsed; it is never
// patched in place.
type Map struct {
	arena []syntax.NodePtr // index == ErasedItemID
}

// FromSource constructs a Map from the root of a syntax tree.
// root must be a true tree root; passing an interior node is a caller bug.
func FromSource(root *syntax.Node) *Map {
	if root == nil {
		panic("astid.FromSource: nil root")
	}
	if root.Parent() != nil {
		panic(fmt.Sprintf("astid.FromSource: node is not a tree root: %s", syntax.PtrOf(root)))
	}

	m := &Map{}
	// Обходим дерево в ширину: родители получают меньшие id, чем дети.
	// Adding a new function to an impl block therefore does not change the
	// ids of top-level items, which is what keeps downstream caches warm.
	bfs(root, func(n *syntax.Node) {
		if n.Kind.IsModuleItem() {
			m.arena = append(m.arena, syntax.PtrOf(n))
		}
	})
	return m
}

// Restore rebuilds a Map from previously assigned locators, in identity
// order. Only for rehydrating a cached assignment of the same content; new
// assignments must go through FromSource.
func Restore(ptrs []syntax.NodePtr) *Map {
	m := &Map{arena: make([]syntax.NodePtr, len(ptrs))}
	copy(m.arena, ptrs)
	return m
}

// Locators returns the arena contents in identity order.
// READONLY: вызывающий не должен модифицировать срез.
func (m *Map) Locators() []syntax.NodePtr {
	return m.arena
}

// Get returns the locator recorded for id.
func (m *Map) Get(id ErasedItemID) syntax.NodePtr {
	return m.arena[id]
}

// Len returns the number of items in the map.
func (m *Map) Len() int { return len(m.arena) }

// erasedID finds the identity assigned to the node behind ptr.
// A miss means the node was not an item when the map was built, or the map
// is stale; both are bugs in the caller, so this fails loudly.
//
// Зачем линейный поиск: арена маленькая (только top-level items одного
// файла). Если станет горячим местом, добавим индекс locator→id, контракт
// не изменится.
func (m *Map) erasedID(ptr syntax.NodePtr) ErasedItemID {
	for i, p := range m.arena {
		if p == ptr {
			return ErasedItemID(i)
		}
	}
	panic(fmt.Sprintf("can't find %s in astid.Map:\n%s", ptr, m.dump()))
}

func (m *Map) dump() string {
	var sb strings.Builder
	for i, p := range m.arena {
		fmt.Fprintf(&sb, "  %4d: %s\n", i, p)
	}
	if sb.Len() == 0 {
		sb.WriteString("  <empty>\n")
	}
	return sb.String()
}

// bfs walks the subtree in breadth-first order, calling f for each node.
func bfs(root *syntax.Node, f func(*syntax.Node)) {
	curr := []*syntax.Node{root}
	var next []*syntax.Node
	for len(curr) > 0 {
		for _, n := range curr {
			next = append(next, n.Children()...)
			f(n)
		}
		curr, next = next, curr[:0]
	}
}
