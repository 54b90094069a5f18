package parser

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/syntax"
	"ember/internal/testkit"
)

func parseStr(t *testing.T, src string) (*syntax.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte(src))
	bag := diag.NewBag(100)
	root := ParseFile(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return root, bag
}

func parseOK(t *testing.T, src string) *syntax.Node {
	t.Helper()
	root, bag := parseStr(t, src)
	if bag.Len() != 0 {
		t.Fatalf("неожиданные диагностики: %v", bag.Items())
	}
	return root
}

func TestParseEmptyFile(t *testing.T) {
	root := parseOK(t, "")
	if root.Kind != syntax.NodeSourceFile {
		t.Fatalf("корень должен быть NodeSourceFile, получили %v", root.Kind)
	}
	if len(root.Children()) != 0 {
		t.Errorf("пустой файл не должен иметь детей")
	}
}

func TestParseFn(t *testing.T) {
	root := parseOK(t, "fn add(a: int, b: int) -> int { return a + b; }")
	fns := root.ChildrenOfKind(syntax.NodeFn)
	if len(fns) != 1 {
		t.Fatalf("ожидали 1 функцию, получили %d", len(fns))
	}
	fn, ok := syntax.AsFn(fns[0])
	if !ok {
		t.Fatal("AsFn должен сработать на NodeFn")
	}
	if fn.Name() != "add" {
		t.Errorf("имя = %q", fn.Name())
	}
	if params := fns[0].ChildrenOfKind(syntax.NodeParam); len(params) != 2 {
		t.Errorf("ожидали 2 параметра, получили %d", len(params))
	}
	if fns[0].FirstOfKind(syntax.NodeTypeRef) == nil {
		t.Error("возвращаемый тип должен быть в дереве")
	}
	if fn.Body() == nil {
		t.Error("тело функции должно быть в дереве")
	}
}

func TestParseStruct(t *testing.T) {
	root := parseOK(t, "struct Point { x: int, y: int }")
	st, ok := syntax.AsStruct(root.Children()[0])
	if !ok {
		t.Fatal("ожидали NodeStruct")
	}
	if st.Name() != "Point" {
		t.Errorf("имя = %q", st.Name())
	}
	if len(st.Fields()) != 2 {
		t.Errorf("ожидали 2 поля, получили %d", len(st.Fields()))
	}
}

func TestParseUnitStruct(t *testing.T) {
	root := parseOK(t, "struct Unit;")
	st, _ := syntax.AsStruct(root.Children()[0])
	if len(st.Fields()) != 0 {
		t.Error("unit-структура не должна иметь полей")
	}
}

func TestParseImplNestsFns(t *testing.T) {
	root := parseOK(t, `
impl Point {
    fn len(self: Point) -> int { return 0; }
    fn zero() -> Point { return Point { x: 0, y: 0 }; }
}
`)
	impl, ok := syntax.AsImpl(root.Children()[0])
	if !ok {
		t.Fatal("ожидали NodeImpl")
	}
	if impl.Name() != "Point" {
		t.Errorf("имя = %q", impl.Name())
	}
	fns := impl.Fns()
	if len(fns) != 2 {
		t.Fatalf("ожидали 2 метода, получили %d", len(fns))
	}
	if fns[0].Name() != "len" || fns[1].Name() != "zero" {
		t.Errorf("имена методов: %q %q", fns[0].Name(), fns[1].Name())
	}
	// Методы — дети impl, не верхнего уровня
	if got := len(root.ChildrenOfKind(syntax.NodeFn)); got != 0 {
		t.Errorf("методы не должны быть на верхнем уровне, нашли %d", got)
	}
}

func TestParseIllegalItemInImpl(t *testing.T) {
	_, bag := parseStr(t, "impl Point { struct Inner; }")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynIllegalItemInImpl {
			found = true
		}
	}
	if !found {
		t.Errorf("ожидали SynIllegalItemInImpl, получили %v", bag.Items())
	}
}

func TestParseStructLiteral(t *testing.T) {
	root := parseOK(t, "fn make() -> Point { return Point { x: 1, y: 2 }; }")
	fn, _ := syntax.AsFn(root.Children()[0])
	ret := fn.Body().FirstOfKind(syntax.NodeReturn)
	if ret == nil {
		t.Fatal("ожидали return")
	}
	lit := ret.FirstOfKind(syntax.NodeStructLit)
	if lit == nil {
		t.Fatal("ожидали литерал структуры")
	}
	if got := len(lit.ChildrenOfKind(syntax.NodeFieldInit)); got != 2 {
		t.Errorf("ожидали 2 инициализатора, получили %d", got)
	}
}

func TestParseCallAndFieldAccess(t *testing.T) {
	root := parseOK(t, "fn f(p: Point) { g(p.x, 2); }")
	fn, _ := syntax.AsFn(root.Children()[0])
	call := fn.Body().FirstOfKind(syntax.NodeCall)
	if call == nil {
		t.Fatal("ожидали вызов")
	}
	kids := call.Children()
	if len(kids) != 3 {
		t.Fatalf("вызов: callee + 2 аргумента, получили %d детей", len(kids))
	}
	if kids[0].Kind != syntax.NodePath {
		t.Errorf("callee должен быть путём, получили %v", kids[0].Kind)
	}
	if kids[1].Kind != syntax.NodeFieldAccess {
		t.Errorf("первый аргумент — доступ к полю, получили %v", kids[1].Kind)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	root := parseOK(t, "fn f() { 1 + 2 * 3; }")
	fn, _ := syntax.AsFn(root.Children()[0])
	bin := fn.Body().FirstOfKind(syntax.NodeBinary)
	if bin == nil {
		t.Fatal("ожидали бинарное выражение")
	}
	if bin.Text != "+" {
		t.Errorf("корень должен быть '+', получили %q", bin.Text)
	}
	rhs := bin.Children()[1]
	if rhs.Kind != syntax.NodeBinary || rhs.Text != "*" {
		t.Errorf("правый операнд должен быть '*', получили %v %q", rhs.Kind, rhs.Text)
	}
}

func TestParseQualifiedPath(t *testing.T) {
	root := parseOK(t, "fn f() { Point::zero(); }")
	fn, _ := syntax.AsFn(root.Children()[0])
	path := fn.Body().FirstOfKind(syntax.NodeCall).Children()[0]
	if got := len(path.ChildrenOfKind(syntax.NodeName)); got != 2 {
		t.Errorf("путь из 2 сегментов, получили %d", got)
	}
}

func TestParseRecoversAtTopLevel(t *testing.T) {
	root, bag := parseStr(t, "; fn ok() { }")
	if bag.Len() == 0 {
		t.Fatal("мусор на верхнем уровне должен давать диагностику")
	}
	if got := len(root.ChildrenOfKind(syntax.NodeFn)); got != 1 {
		t.Errorf("парсер должен восстановиться и разобрать функцию, получили %d", got)
	}
}

func TestParseRootSpanCoversFile(t *testing.T) {
	src := "fn main() { }"
	root := parseOK(t, src)
	if root.Span.Start != 0 || int(root.Span.End) != len(src) {
		t.Errorf("span корня = %v", root.Span)
	}
}

func TestParseTreeInvariants(t *testing.T) {
	sources := []string{
		"fn main() { }",
		"struct Point { x: int, y: int }",
		"impl Point { fn zero() -> Point { return Point { x: 0, y: 0 }; } }",
		"fn f(a: int) -> int { let b = a + 1; return g(b.x, Point::zero()); }",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		id := fs.AddVirtual("test.em", []byte(src))
		root := ParseFile(fs.Get(id), Options{Reporter: diag.NopReporter{}})
		if err := testkit.CheckTreeInvariants(root, fs.Get(id)); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestParseMaxErrorsStopsReporting(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.em", []byte("; ; ; ; ;"))
	bag := diag.NewBag(100)
	ParseFile(fs.Get(id), Options{MaxErrors: 2, Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() > 2 {
		t.Errorf("после MaxErrors репорты должны прекратиться, получили %d", bag.Len())
	}
}
