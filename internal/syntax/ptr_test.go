package syntax

import (
	"testing"

	"ember/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

// Небольшое дерево руками, без парсера: файл { fn { block }, struct }
func buildTree() (*Node, *Node, *Node, *Node) {
	root := NewNode(NodeSourceFile, sp(0, 100))
	fn := NewNode(NodeFn, sp(0, 40))
	block := NewNode(NodeBlock, sp(10, 40))
	st := NewNode(NodeStruct, sp(50, 90))
	fn.AddChild(block)
	root.AddChild(fn)
	root.AddChild(st)
	return root, fn, block, st
}

func TestPtrRoundTrip(t *testing.T) {
	root, fn, block, st := buildTree()

	for _, n := range []*Node{root, fn, block, st} {
		ptr := PtrOf(n)
		if got := ptr.Resolve(root); got != n {
			t.Errorf("Resolve(%s) = %v, ожидали исходный узел", ptr, got)
		}
	}
}

func TestPtrResolveMiss(t *testing.T) {
	root, _, _, _ := buildTree()

	// Нет узла с таким спаном
	miss := NodePtr{Kind: NodeFn, Span: sp(1, 2)}
	if got := miss.Resolve(root); got != nil {
		t.Errorf("Resolve мимо должен вернуть nil, получили %v", got)
	}

	// Спан есть, kind другой
	wrongKind := NodePtr{Kind: NodeStruct, Span: sp(0, 40)}
	if got := wrongKind.Resolve(root); got != nil {
		t.Errorf("Resolve с чужим kind должен вернуть nil, получили %v", got)
	}

	if got := (NodePtr{}).Resolve(nil); got != nil {
		t.Error("Resolve на nil-дереве должен вернуть nil")
	}
}

func TestPtrSkipsNonCoveringChildren(t *testing.T) {
	root, _, block, _ := buildTree()

	// block лежит внутри fn; struct (50..90) не накрывает его спан
	ptr := PtrOf(block)
	if got := ptr.Resolve(root); got != block {
		t.Errorf("Resolve через вложенность = %v", got)
	}
}

func TestIsModuleItem(t *testing.T) {
	items := []NodeKind{NodeFn, NodeStruct, NodeImpl}
	for _, k := range items {
		if !k.IsModuleItem() {
			t.Errorf("%s должен быть module item", k)
		}
	}
	others := []NodeKind{NodeSourceFile, NodeBlock, NodeLet, NodeCall, NodeName}
	for _, k := range others {
		if k.IsModuleItem() {
			t.Errorf("%s не должен быть module item", k)
		}
	}
}

func TestViewsCastOnZeroValue(t *testing.T) {
	_, fn, _, st := buildTree()

	if _, ok := (FnItem{}).Cast(fn); !ok {
		t.Error("FnItem.Cast должен принять NodeFn")
	}
	if _, ok := (FnItem{}).Cast(st); ok {
		t.Error("FnItem.Cast не должен принять NodeStruct")
	}
	if got := (FnItem{}).ItemKind(); got != NodeFn {
		t.Errorf("ItemKind = %v", got)
	}
	if _, ok := AsStruct(st); !ok {
		t.Error("AsStruct должен сработать")
	}
}
