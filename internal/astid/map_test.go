package astid

import (
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/parser"
	"ember/internal/source"
	"ember/internal/syntax"
)

func parseVirtual(t *testing.T, fs *source.FileSet, src string) (source.FileID, *syntax.Node) {
	t.Helper()
	id := fs.AddVirtual("test.em", []byte(src))
	root := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.NopReporter{}})
	return id, root
}

func TestFromSourceAssignsBreadthFirst(t *testing.T) {
	fs := source.NewFileSet()
	_, root := parseVirtual(t, fs, `
fn top() { }
struct Point { x: int }
impl Point {
    fn method() { }
}
`)
	m := FromSource(root)

	// 3 верхнеуровневых item + 1 метод внутри impl
	if m.Len() != 4 {
		t.Fatalf("Len = %d, ожидали 4", m.Len())
	}

	// BFS: сперва все верхнеуровневые, затем вложенные
	wantKinds := []syntax.NodeKind{syntax.NodeFn, syntax.NodeStruct, syntax.NodeImpl, syntax.NodeFn}
	for i, want := range wantKinds {
		if got := m.Get(ErasedItemID(i)).Kind; got != want { // #nosec G115 -- маленькие тестовые индексы
			t.Errorf("id %d: kind = %v, ожидали %v", i, got, want)
		}
	}

	// Вложенный метод получает id строго больше любого предка
	implPtr := m.Get(2)
	methodPtr := m.Get(3)
	if !implPtr.Span.Contains(methodPtr.Span) {
		t.Error("id 3 должен быть методом внутри impl (id 2)")
	}
}

func TestIdentityStableUnderBodyEdit(t *testing.T) {
	before := `
fn alpha() { }
struct Point { x: int }
fn beta() { let a = 1; }
`
	// Правка только внутри тела beta: хвост файла после начала тела не двигается
	after := `
fn alpha() { }
struct Point { x: int }
fn beta() { let a = 1 + 1; }
`
	fs := source.NewFileSet()
	_, rootBefore := parseVirtual(t, fs, before)
	_, rootAfter := parseVirtual(t, fs, after)

	mBefore := FromSource(rootBefore)
	mAfter := FromSource(rootAfter)

	if mBefore.Len() != mAfter.Len() {
		t.Fatalf("количество item не должно меняться: %d != %d", mBefore.Len(), mAfter.Len())
	}
	// alpha и Point стоят до правки, их локаторы совпадают байт в байт,
	// значит их identity переживают правку
	for i := range 2 {
		b := mBefore.Get(ErasedItemID(i)) // #nosec G115 -- маленькие тестовые индексы
		a := mAfter.Get(ErasedItemID(i))  // #nosec G115
		if b.Kind != a.Kind || b.Span.Start != a.Span.Start {
			t.Errorf("id %d должен пережить правку тела beta: %s -> %s", i, b, a)
		}
	}
}

func TestFromSourcePanicsOnNonRoot(t *testing.T) {
	fs := source.NewFileSet()
	_, root := parseVirtual(t, fs, "fn f() { }")
	fn := root.Children()[0]

	defer func() {
		if recover() == nil {
			t.Error("FromSource должен паниковать на не-корне")
		}
	}()
	FromSource(fn)
}

func TestFromSourcePanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromSource должен паниковать на nil")
		}
	}()
	FromSource(nil)
}

func TestErasedIDMissPanicsWithDump(t *testing.T) {
	fs := source.NewFileSet()
	_, root := parseVirtual(t, fs, "fn f() { }\nstruct S;")
	m := FromSource(root)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("поиск чужого локатора должен паниковать")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "can't find") {
			t.Errorf("паника должна содержать описание промаха: %v", r)
		}
		// Дамп арены помогает отлаживать устаревшие карты
		if !strings.Contains(msg, "0:") {
			t.Errorf("паника должна содержать дамп арены: %v", r)
		}
	}()
	m.erasedID(syntax.NodePtr{Kind: syntax.NodeFn, Span: source.Span{File: 99, Start: 1, End: 2}})
}

func TestRestoreRoundTrip(t *testing.T) {
	fs := source.NewFileSet()
	_, root := parseVirtual(t, fs, "fn f() { }\nstruct S;\nimpl S { fn m() { } }")
	m := FromSource(root)

	restored := Restore(m.Locators())
	if restored.Len() != m.Len() {
		t.Fatalf("Len после Restore: %d != %d", restored.Len(), m.Len())
	}
	for i := range m.Len() {
		id := ErasedItemID(i) // #nosec G115 -- маленькие тестовые индексы
		if restored.Get(id) != m.Get(id) {
			t.Errorf("id %d: %s != %s", i, restored.Get(id), m.Get(id))
		}
	}
}

func TestLocatorsResolveToLiveNodes(t *testing.T) {
	fs := source.NewFileSet()
	_, root := parseVirtual(t, fs, "fn f() { }\nimpl S { fn m() { } }")
	m := FromSource(root)

	for i, ptr := range m.Locators() {
		n := ptr.Resolve(root)
		if n == nil {
			t.Errorf("id %d: локатор %s не нашёлся в своём же дереве", i, ptr)
			continue
		}
		if n.Kind != ptr.Kind {
			t.Errorf("id %d: kind %v != %v", i, n.Kind, ptr.Kind)
		}
	}
}
