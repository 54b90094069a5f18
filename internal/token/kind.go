package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit

	// Plus represents '+'.
	Plus
	// Minus represents '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Assign represents '='.
	Assign
	// EqEq represents '=='.
	EqEq
	// BangEq represents '!='.
	BangEq
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// Colon represents ':'.
	Colon
	// ColonColon represents '::'.
	ColonColon
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Arrow represents '->'.
	Arrow
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Ident:      "Ident",
	KwFn:       "fn",
	KwStruct:   "struct",
	KwImpl:     "impl",
	KwLet:      "let",
	KwReturn:   "return",
	KwTrue:     "true",
	KwFalse:    "false",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	StringLit:  "StringLit",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Assign:     "=",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	Gt:         ">",
	Colon:      ":",
	ColonColon: "::",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	Arrow:      "->",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var keywords = map[string]Kind{
	"fn":     KwFn,
	"struct": KwStruct,
	"impl":   KwImpl,
	"let":    KwLet,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for ident text, or Ident otherwise.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
