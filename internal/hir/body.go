package hir

import (
	"fmt"
)

// Body owns the expressions of one lowered function body. IDs are 1-based;
// NoExprID is the invalid sentinel. A Body is immutable once lowering
// finishes and is only ever read afterwards.
type Body struct {
	exprs []Expr
	// Root is the body's top-level block expression.
	Root ExprID
}

// Alloc stores e and returns its ID.
func (b *Body) Alloc(e Expr) ExprID {
	b.exprs = append(b.exprs, e)
	return ExprID(len(b.exprs))
}

// Expr returns the expression behind id.
func (b *Body) Expr(id ExprID) *Expr {
	if !id.IsValid() || int(id) > len(b.exprs) {
		panic(fmt.Sprintf("hir: invalid ExprID %d (body has %d exprs)", id, len(b.exprs)))
	}
	return &b.exprs[id-1]
}

// Len returns the number of allocated expressions.
func (b *Body) Len() int { return len(b.exprs) }
