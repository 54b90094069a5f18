package parser

import (
	"ember/internal/diag"
	"ember/internal/syntax"
	"ember/internal/token"
)

// { stmt* }
func (p *Parser) parseBlock() *syntax.Node {
	start := p.peek().Span
	n := syntax.NewNode(syntax.NodeBlock, start)
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.KwLet:
			addChild(n, p.parseLet())
		case token.KwReturn:
			addChild(n, p.parseReturn())
		default:
			before := p.peek()
			addChild(n, p.parseExpr())
			if p.at(token.Semicolon) {
				p.bump()
			}
			if p.peek() == before {
				// не сдвинулись — выбрасываем токен, чтобы не зациклиться
				p.bump()
			}
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
	p.closeSpan(n, start)
	return n
}

// let name (: Type)? = expr;
func (p *Parser) parseLet() *syntax.Node {
	start := p.bump().Span // let
	n := syntax.NewNode(syntax.NodeLet, start)
	addChild(n, p.name())
	if p.at(token.Colon) {
		p.bump()
		addChild(n, p.parseTypeRef())
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '='"); ok {
		addChild(n, p.parseExpr())
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.closeSpan(n, start)
	return n
}

// return expr?;
func (p *Parser) parseReturn() *syntax.Node {
	start := p.bump().Span // return
	n := syntax.NewNode(syntax.NodeReturn, start)
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		addChild(n, p.parseExpr())
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
	p.closeSpan(n, start)
	return n
}

// binPrec возвращает приоритет бинарного оператора, 0 — не оператор.
func binPrec(k token.Kind) int {
	switch k {
	case token.EqEq, token.BangEq:
		return 1
	case token.Lt, token.Gt:
		return 2
	case token.Plus, token.Minus:
		return 3
	case token.Star, token.Slash:
		return 4
	default:
		return 0
	}
}

func (p *Parser) parseExpr() *syntax.Node {
	return p.parseBinary(1)
}

func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	lhs := p.parsePostfix()
	for {
		prec := binPrec(p.peek().Kind)
		if prec == 0 || prec < minPrec {
			return lhs
		}
		op := p.bump()
		rhs := p.parseBinary(prec + 1)
		n := syntax.NewLeaf(syntax.NodeBinary, op.Span, op.Text)
		addChild(n, lhs)
		addChild(n, rhs)
		if lhs != nil {
			p.closeSpan(n, lhs.Span)
		}
		lhs = n
	}
}

// postfix: call и field access
func (p *Parser) parsePostfix() *syntax.Node {
	e := p.parsePrimary()
	for e != nil {
		switch p.peek().Kind {
		case token.LParen:
			p.bump()
			n := syntax.NewNode(syntax.NodeCall, e.Span)
			addChild(n, e)
			for !p.at(token.RParen) && !p.at(token.EOF) {
				addChild(n, p.parseExpr())
				if p.at(token.Comma) {
					p.bump()
					continue
				}
				break
			}
			p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
			p.closeSpan(n, e.Span)
			e = n
		case token.Dot:
			p.bump()
			n := syntax.NewNode(syntax.NodeFieldAccess, e.Span)
			addChild(n, e)
			addChild(n, p.name())
			p.closeSpan(n, e.Span)
			e = n
		default:
			return e
		}
	}
	return e
}

func (p *Parser) parsePrimary() *syntax.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse:
		p.bump()
		return syntax.NewLeaf(syntax.NodeLiteral, tok.Span, tok.Text)

	case token.Ident:
		path := p.parsePath()
		if p.at(token.LBrace) {
			return p.parseStructLit(path)
		}
		return path

	case token.LParen:
		p.bump()
		e := p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'")
		return e

	case token.LBrace:
		return p.parseBlock()

	default:
		p.report(diag.SynExpectExpr, tok.Span, "expected expression")
		p.bump()
		return nil
	}
}

// Ident (:: Ident)*
func (p *Parser) parsePath() *syntax.Node {
	start := p.peek().Span
	n := syntax.NewNode(syntax.NodePath, start)
	addChild(n, p.name())
	for p.at(token.ColonColon) {
		p.bump()
		addChild(n, p.name())
	}
	p.closeSpan(n, start)
	return n
}

// Path { field: expr, ... }
func (p *Parser) parseStructLit(path *syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.NodeStructLit, path.Span)
	addChild(n, path)
	p.bump() // {
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fi := syntax.NewNode(syntax.NodeFieldInit, p.peek().Span)
		addChild(fi, p.name())
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'"); ok {
			addChild(fi, p.parseExpr())
		}
		p.closeSpan(fi, fi.Span)
		addChild(n, fi)
		if p.at(token.Comma) {
			p.bump()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
	p.closeSpan(n, path.Span)
	return n
}
