package hir

import (
	"ember/internal/source"
)

// ExprKind enumerates HIR expression kinds.
// These map closely to syntax expression kinds with minimal desugaring.
type ExprKind uint8

const (
	// ExprLiteral represents literals (int, float, bool, string).
	ExprLiteral ExprKind = iota
	// ExprPath represents a bare name reference.
	ExprPath
	// ExprCall represents function or constructor calls.
	ExprCall
	// ExprStructLit represents record literals (Type { field: value, ... }).
	ExprStructLit
	// ExprFieldAccess represents field access (expr.field).
	ExprFieldAccess
	// ExprBinaryOp represents binary operators (+, -, *, /, ==, etc.).
	ExprBinaryOp
	// ExprBlock represents a block expression { ... }.
	ExprBlock
	// ExprLet represents a let binding statement.
	ExprLet
	// ExprReturn represents a return statement.
	ExprReturn
	// ExprMissing represents an expression the parser could not produce.
	ExprMissing
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "Literal"
	case ExprPath:
		return "Path"
	case ExprCall:
		return "Call"
	case ExprStructLit:
		return "StructLit"
	case ExprFieldAccess:
		return "FieldAccess"
	case ExprBinaryOp:
		return "BinaryOp"
	case ExprBlock:
		return "Block"
	case ExprLet:
		return "Let"
	case ExprReturn:
		return "Return"
	case ExprMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

// FieldInit is one `name: value` entry of a struct literal.
type FieldInit struct {
	Name  source.StringID
	Value ExprID
}

// Expr is a single HIR expression. Payload fields are populated per Kind;
// unused fields stay zero.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// ExprLiteral
	Literal string

	// ExprPath: сегменты пути (a::b::c); ExprStructLit: путь к типу.
	Segments []source.StringID

	// ExprCall
	Callee ExprID
	Args   []ExprID

	// ExprStructLit
	Fields []FieldInit

	// ExprBlock
	Stmts []ExprID

	// ExprFieldAccess (object), ExprLet (init), ExprReturn (value)
	Operand ExprID
	Field   source.StringID
	Name    source.StringID

	// ExprBinaryOp
	Op    string
	Left  ExprID
	Right ExprID
}

// WalkChildExprs calls f for every direct child expression, in source order.
func (e *Expr) WalkChildExprs(f func(ExprID)) {
	switch e.Kind {
	case ExprCall:
		f(e.Callee)
		for _, a := range e.Args {
			f(a)
		}
	case ExprStructLit:
		for _, fi := range e.Fields {
			f(fi.Value)
		}
	case ExprBlock:
		for _, s := range e.Stmts {
			f(s)
		}
	case ExprFieldAccess, ExprLet, ExprReturn:
		if e.Operand.IsValid() {
			f(e.Operand)
		}
	case ExprBinaryOp:
		f(e.Left)
		f(e.Right)
	case ExprLiteral, ExprPath, ExprMissing:
		// листья
	}
}
