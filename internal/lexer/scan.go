package lexer

import (
	"ember/internal/diag"
	"ember/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: token.LookupKeyword(text), Span: sp, Text: text}
}

// scanNumber сканирует целые и простые десятичные литералы.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if isIdentStartByte(lx.cursor.Peek()) {
		// 123abc — съедаем хвост, чтобы не каскадить ошибки
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanString сканирует строковый литерал с простыми \-экранированиями.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ch == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	next := lx.cursor.PeekAt(1)
	lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		if next == '>' {
			lx.cursor.Bump()
			kind = token.Arrow
		} else {
			kind = token.Minus
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '=':
		if next == '=' {
			lx.cursor.Bump()
			kind = token.EqEq
		} else {
			kind = token.Assign
		}
	case '!':
		if next == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ':':
		if next == ':' {
			lx.cursor.Bump()
			kind = token.ColonColon
		} else {
			kind = token.Colon
		}
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.report(diag.LexUnknownChar, sp, "unknown character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
