package syntax

import (
	"fmt"

	"ember/internal/source"
)

// NodePtr locates a node within a specific tree snapshot without holding a
// live pointer into it: a (kind, span) pair. Within one snapshot two distinct
// nodes never share both the kind and the span, so NodePtr equality means
// "denotes the same node in the same tree".
//
// A NodePtr outlives the tree it was taken from; resolving it against the
// *next* snapshot succeeds exactly when a node with the same kind still
// occupies the same span.
type NodePtr struct {
	Kind NodeKind
	Span source.Span
}

// PtrOf captures a locator for the given node.
func PtrOf(n *Node) NodePtr {
	return NodePtr{Kind: n.Kind, Span: n.Span}
}

func (p NodePtr) String() string {
	return fmt.Sprintf("%s@%s", p.Kind, p.Span)
}

// Resolve finds the node denoted by p inside the tree rooted at root.
// Returns nil when no node with this kind and span exists in the snapshot.
func (p NodePtr) Resolve(root *Node) *Node {
	if root == nil {
		return nil
	}
	if root.Kind == p.Kind && root.Span == p.Span {
		return root
	}
	// Спаны вложены: спускаемся только в детей, накрывающих целевой спан.
	for _, c := range root.Children() {
		if !c.Span.Contains(p.Span) {
			continue
		}
		if found := p.Resolve(c); found != nil {
			return found
		}
	}
	return nil
}
