package parser

import (
	"ember/internal/diag"
	"ember/internal/syntax"
	"ember/internal/token"
)

func (p *Parser) parseItems(root *syntax.Node) {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.KwFn:
			addChild(root, p.parseFn())
		case token.KwStruct:
			addChild(root, p.parseStruct())
		case token.KwImpl:
			addChild(root, p.parseImpl())
		default:
			tok := p.bump()
			p.report(diag.SynUnexpectedTopLevel, tok.Span, "expected 'fn', 'struct' or 'impl'")
		}
	}
}

// fn name(params) -> Type { ... }
func (p *Parser) parseFn() *syntax.Node {
	start := p.bump().Span // fn
	n := syntax.NewNode(syntax.NodeFn, start)
	addChild(n, p.name())

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); ok {
		for !p.at(token.RParen) && !p.at(token.EOF) {
			addChild(n, p.parseParam())
			if p.at(token.Comma) {
				p.bump()
				continue
			}
			break
		}
		p.expect(token.RParen, diag.SynExpectParamOrParen, "expected parameter or ')'")
	}

	if p.at(token.Arrow) {
		p.bump()
		addChild(n, p.parseTypeRef())
	}

	addChild(n, p.parseBlock())
	p.closeSpan(n, start)
	return n
}

// name: Type
func (p *Parser) parseParam() *syntax.Node {
	start := p.peek().Span
	n := syntax.NewNode(syntax.NodeParam, start)
	addChild(n, p.name())
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' and parameter type"); ok {
		addChild(n, p.parseTypeRef())
	}
	p.closeSpan(n, start)
	return n
}

// struct Name { field: Type, ... }  |  struct Name;
func (p *Parser) parseStruct() *syntax.Node {
	start := p.bump().Span // struct
	n := syntax.NewNode(syntax.NodeStruct, start)
	addChild(n, p.name())

	switch {
	case p.at(token.Semicolon):
		// unit-форма
		p.bump()
	case p.at(token.LBrace):
		p.bump()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			addChild(n, p.parseField())
			if p.at(token.Comma) {
				p.bump()
				continue
			}
			break
		}
		p.expect(token.RBrace, diag.SynExpectFieldOrBrace, "expected field or '}'")
	default:
		p.report(diag.SynUnexpectedToken, p.peek().Span, "expected '{' or ';' after struct name")
	}
	p.closeSpan(n, start)
	return n
}

// name: Type
func (p *Parser) parseField() *syntax.Node {
	start := p.peek().Span
	n := syntax.NewNode(syntax.NodeField, start)
	addChild(n, p.name())
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' and field type"); ok {
		addChild(n, p.parseTypeRef())
	}
	p.closeSpan(n, start)
	return n
}

// impl Name { fn ... }
func (p *Parser) parseImpl() *syntax.Node {
	start := p.bump().Span // impl
	n := syntax.NewNode(syntax.NodeImpl, start)
	addChild(n, p.name())

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); ok {
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			if p.at(token.KwFn) {
				addChild(n, p.parseFn())
				continue
			}
			tok := p.bump()
			p.report(diag.SynIllegalItemInImpl, tok.Span, "only functions are allowed inside impl blocks")
		}
		p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}'")
	}
	p.closeSpan(n, start)
	return n
}

// Path::To::Type
func (p *Parser) parseTypeRef() *syntax.Node {
	start := p.peek().Span
	n := syntax.NewNode(syntax.NodeTypeRef, start)
	addChild(n, p.name())
	for p.at(token.ColonColon) {
		p.bump()
		addChild(n, p.name())
	}
	p.closeSpan(n, start)
	return n
}
