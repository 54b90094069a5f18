package hir

import (
	"ember/internal/source"
	"ember/internal/syntax"
)

// LowerFnBody lowers a function's block into a fresh Body. Names are interned
// through in so that downstream resolution compares IDs, not strings.
// The parser guarantees node shapes; malformed pieces lower to ExprMissing.
func LowerFnBody(fn syntax.FnItem, in *source.Interner) *Body {
	b := &Body{}
	block := fn.Body()
	if block == nil {
		b.Root = b.Alloc(Expr{Kind: ExprMissing, Span: fn.Syntax().Span})
		return b
	}
	b.Root = lowerExpr(b, block, in)
	return b
}

func lowerExpr(b *Body, n *syntax.Node, in *source.Interner) ExprID {
	if n == nil {
		return b.Alloc(Expr{Kind: ExprMissing})
	}
	e := Expr{Span: n.Span}

	switch n.Kind {
	case syntax.NodeBlock:
		e.Kind = ExprBlock
		for _, c := range n.Children() {
			e.Stmts = append(e.Stmts, lowerExpr(b, c, in))
		}

	case syntax.NodeLet:
		e.Kind = ExprLet
		e.Name = internName(n, in)
		e.Operand = lowerExpr(b, letInit(n), in)

	case syntax.NodeReturn:
		e.Kind = ExprReturn
		if len(n.Children()) > 0 {
			e.Operand = lowerExpr(b, n.Children()[0], in)
		}

	case syntax.NodeLiteral:
		e.Kind = ExprLiteral
		e.Literal = n.Text

	case syntax.NodePath:
		e.Kind = ExprPath
		e.Segments = internSegments(n, in)

	case syntax.NodeCall:
		e.Kind = ExprCall
		children := n.Children()
		e.Callee = lowerExpr(b, children[0], in)
		for _, a := range children[1:] {
			e.Args = append(e.Args, lowerExpr(b, a, in))
		}

	case syntax.NodeStructLit:
		e.Kind = ExprStructLit
		children := n.Children()
		e.Segments = internSegments(children[0], in)
		for _, fi := range children[1:] {
			if fi.Kind != syntax.NodeFieldInit {
				continue
			}
			var value *syntax.Node
			for _, c := range fi.Children() {
				if c.Kind != syntax.NodeName {
					value = c
				}
			}
			e.Fields = append(e.Fields, FieldInit{
				Name:  internName(fi, in),
				Value: lowerExpr(b, value, in),
			})
		}

	case syntax.NodeFieldAccess:
		e.Kind = ExprFieldAccess
		e.Operand = lowerExpr(b, n.Children()[0], in)
		e.Field = internName(n, in)

	case syntax.NodeBinary:
		e.Kind = ExprBinaryOp
		e.Op = n.Text
		children := n.Children()
		e.Left = lowerExpr(b, children[0], in)
		if len(children) > 1 {
			e.Right = lowerExpr(b, children[1], in)
		} else {
			e.Right = b.Alloc(Expr{Kind: ExprMissing, Span: n.Span})
		}

	default:
		e.Kind = ExprMissing
	}

	return b.Alloc(e)
}

func internName(n *syntax.Node, in *source.Interner) source.StringID {
	if leaf := n.FirstOfKind(syntax.NodeName); leaf != nil {
		return in.Intern(leaf.Text)
	}
	return source.NoStringID
}

func internSegments(path *syntax.Node, in *source.Interner) []source.StringID {
	var out []source.StringID
	for _, c := range path.ChildrenOfKind(syntax.NodeName) {
		out = append(out, in.Intern(c.Text))
	}
	return out
}

// letInit возвращает инициализатор let-узла: последний ребёнок,
// не являющийся именем или типом.
func letInit(n *syntax.Node) *syntax.Node {
	var init *syntax.Node
	for _, c := range n.Children() {
		if c.Kind == syntax.NodeName || c.Kind == syntax.NodeTypeRef {
			continue
		}
		init = c
	}
	return init
}
