package intrinsics

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/target"
)

// Intrinsic is a runtime support function the compiled code may call but the
// user never defines. An intrinsic's abstract signature is resolved against a
// target's addressing parameters; resolving the same intrinsic against the
// same target always yields equal prototypes, across process runs included.
type Intrinsic interface {
	// Prototype returns the canonical dispatch-table key for t.
	Prototype(t target.Target) FunctionPrototype
	// FnType returns the concrete low-level function type for t.
	FnType(t target.Target) FnType
}

// paramKind is a target-independent parameter shape in an intrinsic template.
type paramKind uint8

const (
	paramPtr   paramKind = iota // pointer, width comes from the target
	paramUSize                  // pointer-sized unsigned integer
)

// descriptor is a declarative intrinsic template.
type descriptor struct {
	name   string
	params []paramKind
	ret    paramKind
	hasRet bool
}

func (d descriptor) resolveParam(k paramKind, t target.Target) TypeDesc {
	bits, err := safecast.Conv[uint16](t.PtrBits())
	if err != nil {
		panic(fmt.Errorf("pointer width overflow for %q: %w", t.Triple, err))
	}
	switch k {
	case paramUSize:
		return TypeDesc{Kind: TypeUint, Bits: bits}
	default:
		return TypeDesc{Kind: TypePtr, Bits: bits}
	}
}

func (d descriptor) Prototype(t target.Target) FunctionPrototype {
	params := make([]TypeDesc, len(d.params))
	for i, k := range d.params {
		params[i] = d.resolveParam(k, t)
	}
	ret := TypeDesc{Kind: TypeVoid}
	if d.hasRet {
		ret = d.resolveParam(d.ret, t)
	}
	return FunctionPrototype{Name: d.name, Params: params, Ret: ret}
}

func (d descriptor) FnType(t target.Target) FnType {
	proto := d.Prototype(t)
	bits, err := safecast.Conv[uint16](t.PtrBits())
	if err != nil {
		panic(fmt.Errorf("pointer width overflow for %q: %w", t.Triple, err))
	}
	return FnType{Params: proto.Params, Ret: proto.Ret, PtrBits: bits}
}

// New is the "construct new instance" intrinsic: the runtime entry point
// that heap-allocates an instance. Signature: rt_new(type_info, alloc_handle)
// returning the allocated object handle.
var New Intrinsic = descriptor{
	name:   "rt_new",
	params: []paramKind{paramPtr, paramPtr},
	ret:    paramPtr,
	hasRet: true,
}

// Drop is the companion deallocation intrinsic. The destructor collection
// pass is not active yet: nothing requests Drop today, and the collector's
// call sites for it stay disabled until that pass lands. Declared here so
// the seam is explicit.
var Drop Intrinsic = descriptor{
	name:   "rt_drop",
	params: []paramKind{paramPtr},
}
