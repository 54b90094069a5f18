package hir

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/syntax"
)

func lowerFirstFn(t *testing.T, src string) (*Body, *source.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(src))
	root := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.NopReporter{}})
	fns := root.ChildrenOfKind(syntax.NodeFn)
	if len(fns) == 0 {
		t.Fatal("в тесте нет функции")
	}
	fn, _ := syntax.AsFn(fns[0])
	in := source.NewInterner()
	return LowerFnBody(fn, in), in
}

func TestLowerEmptyBody(t *testing.T) {
	b, _ := lowerFirstFn(t, "fn f() { }")
	root := b.Expr(b.Root)
	if root.Kind != ExprBlock {
		t.Fatalf("корень тела — блок, получили %v", root.Kind)
	}
	if len(root.Stmts) != 0 {
		t.Errorf("пустой блок не должен иметь stmts")
	}
}

func TestLowerLetAndLiteral(t *testing.T) {
	b, in := lowerFirstFn(t, "fn f() { let x = 42; }")
	root := b.Expr(b.Root)
	if len(root.Stmts) != 1 {
		t.Fatalf("ожидали 1 stmt, получили %d", len(root.Stmts))
	}
	let := b.Expr(root.Stmts[0])
	if let.Kind != ExprLet {
		t.Fatalf("ожидали ExprLet, получили %v", let.Kind)
	}
	if in.MustLookup(let.Name) != "x" {
		t.Errorf("имя binding = %q", in.MustLookup(let.Name))
	}
	init := b.Expr(let.Operand)
	if init.Kind != ExprLiteral || init.Literal != "42" {
		t.Errorf("инициализатор = %v %q", init.Kind, init.Literal)
	}
}

func TestLowerCall(t *testing.T) {
	b, in := lowerFirstFn(t, "fn f() { g(1, 2); }")
	root := b.Expr(b.Root)
	call := b.Expr(root.Stmts[0])
	if call.Kind != ExprCall {
		t.Fatalf("ожидали ExprCall, получили %v", call.Kind)
	}
	callee := b.Expr(call.Callee)
	if callee.Kind != ExprPath || len(callee.Segments) != 1 {
		t.Fatalf("callee = %v", callee.Kind)
	}
	if in.MustLookup(callee.Segments[0]) != "g" {
		t.Errorf("callee имя = %q", in.MustLookup(callee.Segments[0]))
	}
	if len(call.Args) != 2 {
		t.Errorf("ожидали 2 аргумента, получили %d", len(call.Args))
	}
}

func TestLowerStructLit(t *testing.T) {
	b, in := lowerFirstFn(t, "fn f() { let p = Point { x: 1, y: 2 }; }")
	root := b.Expr(b.Root)
	let := b.Expr(root.Stmts[0])
	lit := b.Expr(let.Operand)
	if lit.Kind != ExprStructLit {
		t.Fatalf("ожидали ExprStructLit, получили %v", lit.Kind)
	}
	if len(lit.Segments) != 1 || in.MustLookup(lit.Segments[0]) != "Point" {
		t.Errorf("путь литерала: %v", lit.Segments)
	}
	if len(lit.Fields) != 2 {
		t.Fatalf("ожидали 2 поля, получили %d", len(lit.Fields))
	}
	if in.MustLookup(lit.Fields[0].Name) != "x" || in.MustLookup(lit.Fields[1].Name) != "y" {
		t.Error("имена полей должны сохраняться в исходном порядке")
	}
	v := b.Expr(lit.Fields[1].Value)
	if v.Kind != ExprLiteral || v.Literal != "2" {
		t.Errorf("значение y = %v %q", v.Kind, v.Literal)
	}
}

func TestLowerReturnAndBinary(t *testing.T) {
	b, _ := lowerFirstFn(t, "fn f(a: int) -> int { return a + 1; }")
	root := b.Expr(b.Root)
	ret := b.Expr(root.Stmts[0])
	if ret.Kind != ExprReturn {
		t.Fatalf("ожидали ExprReturn, получили %v", ret.Kind)
	}
	bin := b.Expr(ret.Operand)
	if bin.Kind != ExprBinaryOp || bin.Op != "+" {
		t.Fatalf("операнд return: %v %q", bin.Kind, bin.Op)
	}
	if b.Expr(bin.Left).Kind != ExprPath || b.Expr(bin.Right).Kind != ExprLiteral {
		t.Error("операнды '+' должны быть path и literal")
	}
}

func TestLowerFieldAccess(t *testing.T) {
	b, in := lowerFirstFn(t, "fn f(p: Point) { p.x; }")
	root := b.Expr(b.Root)
	fa := b.Expr(root.Stmts[0])
	if fa.Kind != ExprFieldAccess {
		t.Fatalf("ожидали ExprFieldAccess, получили %v", fa.Kind)
	}
	if in.MustLookup(fa.Field) != "x" {
		t.Errorf("имя поля = %q", in.MustLookup(fa.Field))
	}
}

func TestLowerQualifiedPath(t *testing.T) {
	b, in := lowerFirstFn(t, "fn f() { Point::zero(); }")
	root := b.Expr(b.Root)
	call := b.Expr(root.Stmts[0])
	callee := b.Expr(call.Callee)
	if len(callee.Segments) != 2 {
		t.Fatalf("ожидали путь из 2 сегментов, получили %d", len(callee.Segments))
	}
	if in.MustLookup(callee.Segments[0]) != "Point" || in.MustLookup(callee.Segments[1]) != "zero" {
		t.Error("сегменты пути должны сохранять порядок")
	}
}

func TestLowerMissingBody(t *testing.T) {
	// Узел функции без блока — такое бывает после восстановления парсера
	node := syntax.NewNode(syntax.NodeFn, source.Span{File: 1, Start: 0, End: 6})
	node.AddChild(syntax.NewLeaf(syntax.NodeName, source.Span{File: 1, Start: 3, End: 4}, "f"))
	fn, ok := syntax.AsFn(node)
	if !ok {
		t.Fatal("AsFn должен принять NodeFn")
	}

	b := LowerFnBody(fn, source.NewInterner())
	if b.Expr(b.Root).Kind != ExprMissing {
		t.Errorf("без блока корень должен быть ExprMissing, получили %v", b.Expr(b.Root).Kind)
	}
}

func TestBodyExprPanicsOnInvalidID(t *testing.T) {
	b, _ := lowerFirstFn(t, "fn f() { }")
	defer func() {
		if recover() == nil {
			t.Error("Expr(NoExprID) должен паниковать")
		}
	}()
	b.Expr(NoExprID)
}

func TestWalkChildExprsOrder(t *testing.T) {
	b, _ := lowerFirstFn(t, "fn f() { g(1, 2); }")
	call := b.Expr(b.Expr(b.Root).Stmts[0])

	var visited []ExprID
	call.WalkChildExprs(func(id ExprID) { visited = append(visited, id) })
	if len(visited) != 3 {
		t.Fatalf("call должен обойти callee и 2 аргумента, получили %d", len(visited))
	}
	if visited[0] != call.Callee {
		t.Error("callee обходится первым")
	}
}
