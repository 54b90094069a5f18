package intrinsics

import (
	"fmt"

	"ember/internal/hir"
	"ember/internal/sema"
	"ember/internal/target"
)

func collectIntrinsic(entries *Map, in Intrinsic, t target.Target) {
	proto := in.Prototype(t)
	entries.Insert(proto, func() FnType { return in.FnType(t) })
}

// CollectFnBody accumulates the runtime intrinsics a lowered body needs into
// entries and raises needsAlloc if the body performs any heap-allocating
// construct. The accumulator pair is owned by the caller so that the
// requirements of several bodies can be merged into one dispatch table.
func CollectFnBody(entries *Map, needsAlloc *bool, body *hir.Body, res *sema.Result, t target.Target) {
	collectExpr(entries, needsAlloc, body.Root, body, res, t)
}

// CollectWrapperBody accumulates the requirements of a synthesized wrapper
// body (a generated entry point with no user-written expression tree).
// Wrapper generation always constructs a result container, so the allocation
// intrinsic is required unconditionally.
func CollectWrapperBody(entries *Map, needsAlloc *bool, t target.Target) {
	collectIntrinsic(entries, New, t)
	// collectIntrinsic(entries, Drop, t) — включится вместе с пассом деструкторов
	*needsAlloc = true
}

func collectExpr(entries *Map, needsAlloc *bool, exprID hir.ExprID, body *hir.Body, res *sema.Result, t target.Target) {
	expr := body.Expr(exprID)

	// Вызов: конструктор структуры — это аллокация, обычная функция — нет.
	if expr.Kind == hir.ExprCall {
		def, ok := res.CallableFor(expr.Callee)
		if !ok {
			panic(fmt.Sprintf("expected a callable expression at %s", expr.Span))
		}
		switch def.Kind {
		case sema.CallableStruct:
			collectIntrinsic(entries, New, t)
			// collectIntrinsic(entries, Drop, t) — включится вместе с пассом деструкторов
			*needsAlloc = true
		case sema.CallableFn:
			// сам target вызова попадает в dispatch table отдельным механизмом
		default:
			panic(fmt.Sprintf("unknown callable classification %d at %s", def.Kind, expr.Span))
		}
	}

	if expr.Kind == hir.ExprStructLit {
		collectIntrinsic(entries, New, t)
		// collectIntrinsic(entries, Drop, t) — включится вместе с пассом деструкторов
		*needsAlloc = true
	}

	// Голая ссылка на структуру как значение (unit-like construction).
	if expr.Kind == hir.ExprPath {
		resolver := sema.ResolverForExpr(res, body, exprID)
		resolution, ok := resolver.ResolveValuePath(expr.Segments)
		if !ok {
			panic(fmt.Sprintf("unknown path at %s (resolution was validated upstream)", expr.Span))
		}
		if resolution.Kind == sema.ResolutionStruct {
			collectIntrinsic(entries, New, t)
			// collectIntrinsic(entries, Drop, t) — включится вместе с пассом деструкторов
			*needsAlloc = true
		}
	}

	// Рекурсивно обходим все дочерние выражения.
	expr.WalkChildExprs(func(child hir.ExprID) {
		collectExpr(entries, needsAlloc, child, body, res, t)
	})
}
