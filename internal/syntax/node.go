package syntax

import (
	"ember/internal/source"
)

// Node is a homogeneous syntax tree node. The tree is immutable once the
// parser hands it out; nothing in the compiler mutates a built tree.
type Node struct {
	Kind NodeKind
	Span source.Span
	// Text holds the source text of leaf nodes (names, literals); empty
	// for interior nodes.
	Text string

	parent   *Node
	children []*Node
}

// NewNode creates a detached node. The parser attaches it via AddChild.
func NewNode(kind NodeKind, span source.Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// NewLeaf creates a leaf node carrying its source text.
func NewLeaf(kind NodeKind, span source.Span, text string) *Node {
	return &Node{Kind: kind, Span: span, Text: text}
}

// AddChild appends child and sets its parent link.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

// Parent returns the parent node, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children возвращает read-only slice детей (не модифицировать).
func (n *Node) Children() []*Node { return n.children }

// FirstOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstOfKind(kind NodeKind) *Node {
	for _, c := range n.children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children of the given kind.
func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Name returns the text of the node's NodeName child, or "" if it has none.
func (n *Node) Name() string {
	if leaf := n.FirstOfKind(NodeName); leaf != nil {
		return leaf.Text
	}
	return ""
}
