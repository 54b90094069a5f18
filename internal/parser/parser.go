package parser

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/diag"
	"ember/internal/lexer"
	"ember/internal/source"
	"ember/internal/syntax"
	"ember/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Возвращает корень синтаксического дерева (NodeSourceFile).
func ParseFile(file *source.File, opts Options) *syntax.Node {
	p := Parser{
		lx:   lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file: file,
		opts: opts,
	}

	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	root := syntax.NewNode(syntax.NodeSourceFile, source.Span{File: file.ID, Start: 0, End: lenContent})
	p.parseItems(root)
	return root
}

func (p *Parser) peek() token.Token { return p.lx.Peek() }

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) bump() token.Token {
	t := p.lx.Next()
	if t.Kind != token.EOF {
		p.lastSpan = t.Span
	}
	return t
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.opts.CurrentErrors++
	if p.opts.Reporter != nil && !p.opts.Enough() {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// expect съедает токен нужного вида или репортит и возвращает ok=false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.bump(), true
	}
	got := p.peek()
	p.report(code, got.Span, fmt.Sprintf("%s, got '%s'", msg, got.Kind))
	return got, false
}

// name парсит идентификатор в leaf NodeName.
func (p *Parser) name() *syntax.Node {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
	if !ok {
		return nil
	}
	return syntax.NewLeaf(syntax.NodeName, tok.Span, tok.Text)
}

func addChild(parent, child *syntax.Node) {
	if child != nil {
		parent.AddChild(child)
	}
}

// closeSpan выставляет span узла от start до последнего съеденного токена.
func (p *Parser) closeSpan(n *syntax.Node, start source.Span) {
	n.Span = start.Cover(p.lastSpan)
}
