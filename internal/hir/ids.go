package hir

type (
	// ExprID identifies an expression within one Body (1-based).
	ExprID uint32
)

const (
	NoExprID ExprID = 0
)

func (id ExprID) IsValid() bool { return id != NoExprID }
