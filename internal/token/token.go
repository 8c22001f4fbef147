package token

import (
	"xbase/internal/source"
)

// Token is a classified lexical unit with its origin.
type Token struct {
	Kind  Kind
	Text  string // exact source text
	Value string // decoded string literal content; empty otherwise
	Line  uint32 // 1-based line of the first character
	Col   uint32 // 1-based column of the first character
	Span  source.Span
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsLiteral reports whether the token is a number, string or logical literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Logical:
		return true
	default:
		return false
	}
}

// IsEnd reports whether the token ends a statement (newline or end of input).
func (t Token) IsEnd() bool {
	return t.Kind == Newline || t.Kind == EOF
}
