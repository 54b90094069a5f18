// Package sema resolves names inside lowered bodies far enough to classify
// calls and value paths: struct constructor, free function, or local binding.
// Full type inference lives above this layer; the intrinsics collector only
// needs the callable classification and struct-or-not path resolutions.
package sema

import (
	"ember/internal/hir"
	"ember/internal/source"
	"ember/internal/symbols"
	"ember/internal/syntax"
)

// CallableKind classifies what a call expression's callee resolves to.
type CallableKind uint8

const (
	// CallableFn is an ordinary function call.
	CallableFn CallableKind = iota
	// CallableStruct is a struct used in constructor position.
	CallableStruct
)

// CallableDef is the resolved callee of a call expression.
type CallableDef struct {
	Kind CallableKind
	Name source.StringID
}

// Result carries per-body resolution facts, keyed by expression ID.
// It is built once per body and read-only afterwards.
type Result struct {
	table  *symbols.Table
	locals map[source.StringID]struct{}
	// callables keyed by *callee* expression ID
	callables map[hir.ExprID]CallableDef
}

// Check resolves a lowered body against the file's definition table.
// fn supplies the parameter names that seed the local scope.
func Check(fn syntax.FnItem, body *hir.Body, table *symbols.Table) *Result {
	r := &Result{
		table:     table,
		locals:    make(map[source.StringID]struct{}),
		callables: make(map[hir.ExprID]CallableDef),
	}

	for _, p := range fn.Syntax().ChildrenOfKind(syntax.NodeParam) {
		if name := p.Name(); name != "" {
			r.locals[table.Strings.Intern(name)] = struct{}{}
		}
	}

	r.walk(body, body.Root)
	return r
}

func (r *Result) walk(body *hir.Body, id hir.ExprID) {
	e := body.Expr(id)

	switch e.Kind {
	case hir.ExprLet:
		// плоская область видимости на всё тело — достаточно для классификации
		if e.Name != source.NoStringID {
			r.locals[e.Name] = struct{}{}
		}
	case hir.ExprCall:
		r.classifyCallee(body, e.Callee)
	}

	e.WalkChildExprs(func(child hir.ExprID) { r.walk(body, child) })
}

func (r *Result) classifyCallee(body *hir.Body, callee hir.ExprID) {
	e := body.Expr(callee)
	if e.Kind != hir.ExprPath || len(e.Segments) == 0 {
		return
	}
	name := e.Segments[len(e.Segments)-1]
	if _, isLocal := r.locals[name]; isLocal && len(e.Segments) == 1 {
		return
	}
	def, ok := r.table.Lookup(name)
	if !ok {
		return
	}
	switch def.Kind {
	case symbols.DefStruct:
		r.callables[callee] = CallableDef{Kind: CallableStruct, Name: name}
	case symbols.DefFn:
		r.callables[callee] = CallableDef{Kind: CallableFn, Name: name}
	}
}

// CallableFor returns the resolved callee classification for a callee
// expression, if the checker recorded one.
func (r *Result) CallableFor(callee hir.ExprID) (CallableDef, bool) {
	def, ok := r.callables[callee]
	return def, ok
}
