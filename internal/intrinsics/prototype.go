package intrinsics

import (
	"fmt"
	"strings"
)

// TypeKind is the shape of a low-level value in a prototype.
type TypeKind uint8

const (
	// TypeVoid is the absent return value.
	TypeVoid TypeKind = iota
	// TypePtr is a target-width pointer.
	TypePtr
	// TypeUint is an unsigned integer of explicit width.
	TypeUint
)

func (k TypeKind) String() string {
	switch k {
	case TypeVoid:
		return "void"
	case TypePtr:
		return "ptr"
	case TypeUint:
		return "u"
	default:
		return "invalid"
	}
}

// TypeDesc is a concrete low-level value type: a kind plus its bit width,
// already resolved for a specific target.
type TypeDesc struct {
	Kind TypeKind
	Bits uint16
}

func (d TypeDesc) String() string {
	switch d.Kind {
	case TypeUint:
		return fmt.Sprintf("u%d", d.Bits)
	default:
		return d.Kind.String()
	}
}

// compare returns a total order over type descriptors.
func (d TypeDesc) compare(other TypeDesc) int {
	if d.Kind != other.Kind {
		if d.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if d.Bits != other.Bits {
		if d.Bits < other.Bits {
			return -1
		}
		return 1
	}
	return 0
}

// FunctionPrototype canonically describes a call target: symbolic name plus
// parameter/return shape. Prototypes are the keys of the dispatch table, so
// the total order below is part of the contract, not an implementation
// detail: dispatch tables are serialized and must be byte-stable across
// compiler runs on identical input.
type FunctionPrototype struct {
	Name   string
	Params []TypeDesc
	Ret    TypeDesc
}

// Compare orders prototypes by name, then parameters, then return type.
func (p FunctionPrototype) Compare(other FunctionPrototype) int {
	if c := strings.Compare(p.Name, other.Name); c != 0 {
		return c
	}
	for i := 0; i < len(p.Params) && i < len(other.Params); i++ {
		if c := p.Params[i].compare(other.Params[i]); c != 0 {
			return c
		}
	}
	if len(p.Params) != len(other.Params) {
		if len(p.Params) < len(other.Params) {
			return -1
		}
		return 1
	}
	return p.Ret.compare(other.Ret)
}

func (p FunctionPrototype) String() string {
	params := make([]string, len(p.Params))
	for i, d := range p.Params {
		params[i] = d.String()
	}
	return fmt.Sprintf("%s(%s) -> %s", p.Name, strings.Join(params, ", "), p.Ret)
}

// FnType is the concrete low-level function type the backend declares for a
// prototype on a particular target.
type FnType struct {
	Params []TypeDesc
	Ret    TypeDesc
	// PtrBits is the target pointer width the row was resolved against.
	PtrBits uint16
}
