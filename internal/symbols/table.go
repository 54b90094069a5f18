package symbols

import (
	"ember/internal/source"
	"ember/internal/syntax"
)

// DefKind classifies a top-level definition.
type DefKind uint8

const (
	// DefFn is a free function.
	DefFn DefKind = iota
	// DefStruct is a struct type.
	DefStruct
)

func (k DefKind) String() string {
	switch k {
	case DefFn:
		return "fn"
	case DefStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// Def is one top-level definition of a file.
type Def struct {
	Kind DefKind
	Name source.StringID
	Ptr  syntax.NodePtr
}

// Table holds the top-level definitions of a single file. It is the slice of
// name resolution that callee classification needs: which plain names denote
// structs and which denote functions.
type Table struct {
	Strings *source.Interner
	defs    map[source.StringID]Def
	order   []source.StringID // порядок объявления, для детерминированных дампов
}

// Build collects top-level definitions from a file root. Functions inside
// impl blocks are methods and are deliberately not entered as plain names.
func Build(root *syntax.Node, strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Strings: strings,
		defs:    make(map[source.StringID]Def),
	}
	for _, item := range root.Children() {
		switch item.Kind {
		case syntax.NodeFn:
			t.add(DefFn, item)
		case syntax.NodeStruct:
			t.add(DefStruct, item)
		case syntax.NodeImpl:
			// методы недоступны как голые имена
		}
	}
	return t
}

func (t *Table) add(kind DefKind, item *syntax.Node) {
	name := item.Name()
	if name == "" {
		return
	}
	id := t.Strings.Intern(name)
	if _, exists := t.defs[id]; exists {
		// первое объявление выигрывает; дубликаты — дело диагностики
		return
	}
	t.defs[id] = Def{Kind: kind, Name: id, Ptr: syntax.PtrOf(item)}
	t.order = append(t.order, id)
}

// Lookup returns the definition for name, if any.
func (t *Table) Lookup(name source.StringID) (Def, bool) {
	d, ok := t.defs[name]
	return d, ok
}

// Defs returns definitions in declaration order.
func (t *Table) Defs() []Def {
	out := make([]Def, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.defs[id])
	}
	return out
}

// Len returns the number of definitions.
func (t *Table) Len() int { return len(t.defs) }
