package astid

import (
	"fmt"

	"ember/internal/source"
	"ember/internal/syntax"
)

// ID is an ErasedItemID carrying a compile-time node-kind tag. The tag has
// no runtime representation: two IDs with the same raw value are the same
// handle no matter how they were obtained, and equality, hashing, and
// ordering all go through the raw integer alone.
type ID[N syntax.Item[N]] struct {
	raw ErasedItemID
}

// Erased drops the kind tag.
func (id ID[N]) Erased() ErasedItemID { return id.raw }

// In qualifies the handle with its owning file, producing a key that is
// safe to use across files (e.g. as an incremental-database cache key).
func (id ID[N]) In(file source.FileID) InFile[N] {
	return InFile[N]{File: file, ID: id}
}

// InFile is a file-qualified typed handle: the globally-addressable form.
type InFile[N syntax.Item[N]] struct {
	File source.FileID
	ID   ID[N]
}

// Database is the slice of the snapshot database the handle round trip
// needs: the current parse and item map of a file.
type Database interface {
	Parse(file source.FileID) *syntax.Node
	ItemMap(file source.FileID) *Map
}

// Node resolves the handle back to a live typed node via the current parse
// of its owning file. This is the only sanctioned stable-key→live-node path.
func (id InFile[N]) Node(db Database) N {
	root := db.Parse(id.File)
	ptr := Get(db.ItemMap(id.File), id.ID)
	n := ptr.Resolve(root)
	if n == nil {
		panic(fmt.Sprintf("astid: locator %s not found in current parse of file %d", ptr, id.File))
	}
	var zero N
	v, ok := zero.Cast(n)
	if !ok {
		panic(fmt.Sprintf("astid: locator %s resolved to %s node", ptr, n.Kind))
	}
	return v
}

// For mints the typed handle assigned to item when m was built.
// An item that is missing from the map is a programming error and panics
// with the map's full contents.
func For[N syntax.Item[N]](m *Map, item N) ID[N] {
	ptr := syntax.PtrOf(item.Syntax())
	return ID[N]{raw: m.erasedID(ptr)}
}

// Get returns the locator behind a typed handle. The arena entry must have
// been created from a node of the handle's kind; a mismatch means the handle
// was forged or the map is stale, and fails loudly.
func Get[N syntax.Item[N]](m *Map, id ID[N]) syntax.NodePtr {
	ptr := m.arena[id.raw]
	var zero N
	if ptr.Kind != zero.ItemKind() {
		panic(fmt.Sprintf("astid: id %d is a %s node, requested as %s", id.raw, ptr.Kind, zero.ItemKind()))
	}
	return ptr
}
