package sema

import (
	"ember/internal/hir"
	"ember/internal/source"
	"ember/internal/symbols"
)

// ResolutionKind classifies what a value path resolves to.
type ResolutionKind uint8

const (
	// ResolutionLocal is a let binding or parameter.
	ResolutionLocal ResolutionKind = iota
	// ResolutionFn is a free function referenced as a value.
	ResolutionFn
	// ResolutionStruct is a struct definition referenced as a value
	// (unit-like construction through a plain name).
	ResolutionStruct
)

// Resolution is the outcome of resolving a value path.
type Resolution struct {
	Kind ResolutionKind
	Name source.StringID
}

// Resolver resolves paths in the scope of one expression of one body.
// Construct via ResolverForExpr.
type Resolver struct {
	result *Result
}

// ResolverForExpr returns a resolver scoped to the given expression.
// The body-wide scope is flat, so the expression only pins the body;
// the parameter keeps the construction contract explicit for callers.
func ResolverForExpr(result *Result, body *hir.Body, expr hir.ExprID) *Resolver {
	body.Expr(expr) // bounds check: чужой ID — ошибка вызывающего
	return &Resolver{result: result}
}

// ResolveValuePath resolves path segments as a value, ignoring
// associated-item candidates. Locals shadow top-level definitions.
// Returns ok=false only when the name is entirely unknown.
func (rv *Resolver) ResolveValuePath(segments []source.StringID) (Resolution, bool) {
	if len(segments) == 0 {
		return Resolution{}, false
	}
	name := segments[len(segments)-1]
	if len(segments) == 1 {
		if _, isLocal := rv.result.locals[name]; isLocal {
			return Resolution{Kind: ResolutionLocal, Name: name}, true
		}
	}
	def, ok := rv.result.table.Lookup(name)
	if !ok {
		return Resolution{}, false
	}
	switch def.Kind {
	case symbols.DefStruct:
		return Resolution{Kind: ResolutionStruct, Name: name}, true
	default:
		return Resolution{Kind: ResolutionFn, Name: name}, true
	}
}
