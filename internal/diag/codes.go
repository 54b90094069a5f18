package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnclosedDelimiter   Code = 2002
	SynExpectSemicolon     Code = 2012
	SynUnexpectedTopLevel  Code = 2101
	SynExpectIdentifier    Code = 2102
	SynExpectExpr          Code = 2110
	SynExpectType          Code = 2111
	SynExpectFieldOrBrace  Code = 2112
	SynExpectParamOrParen  Code = 2113
	SynIllegalItemInImpl   Code = 2114
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexer note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	SynInfo:                     "parser note",
	SynUnexpectedToken:          "unexpected token",
	SynUnclosedDelimiter:        "unclosed delimiter",
	SynExpectSemicolon:          "expected ';'",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	SynExpectIdentifier:         "expected identifier",
	SynExpectExpr:               "expected expression",
	SynExpectType:               "expected type",
	SynExpectFieldOrBrace:       "expected field or '}'",
	SynExpectParamOrParen:       "expected parameter or ')'",
	SynIllegalItemInImpl:        "only functions are allowed inside impl blocks",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
