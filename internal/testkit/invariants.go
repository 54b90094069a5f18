// Package testkit holds invariant checkers shared by tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/source"
	"ember/internal/syntax"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a parsed file:
// 1) the root span matches the file content bounds
// 2) every child span is contained in its parent's span
// 3) parent links are consistent with the children lists
// 4) no two nodes share both kind and span (locators stay unambiguous)
func CheckTreeInvariants(root *syntax.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil root or file")
	}
	if root.Parent() != nil {
		return fmt.Errorf("root has a parent")
	}
	if root.Span.File != sf.ID {
		return fmt.Errorf("root span points to different file id: got=%d want=%d", root.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if root.Span.Start != 0 || root.Span.End != lenContent {
		return fmt.Errorf("root span %v does not match content bounds [0, %d)", root.Span, lenContent)
	}

	seen := make(map[syntax.NodePtr]struct{})
	return checkNode(root, sf.ID, seen)
}

func checkNode(n *syntax.Node, file source.FileID, seen map[syntax.NodePtr]struct{}) error {
	ptr := syntax.PtrOf(n)
	if _, dup := seen[ptr]; dup {
		return fmt.Errorf("duplicate (kind, span) pair: %s", ptr)
	}
	seen[ptr] = struct{}{}

	for _, c := range n.Children() {
		if c.Parent() != n {
			return fmt.Errorf("parent link of %s does not point at %s", syntax.PtrOf(c), ptr)
		}
		if c.Span.File != file {
			return fmt.Errorf("child span file mismatch: got=%d want=%d", c.Span.File, file)
		}
		if !n.Span.Contains(c.Span) {
			return fmt.Errorf("child span %v is outside parent span %v", c.Span, n.Span)
		}
		if err := checkNode(c, file, seen); err != nil {
			return err
		}
	}
	return nil
}
