package lexer

import (
	"xbase/internal/source"
	"xbase/internal/token"
)

// scanOperator — жадно: сначала двухсимвольные операторы, потом одиночные.
func (lx *Lexer) scanOperator(start source.Mark, ch rune) token.Token {
	kind := token.Char
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '=':
		kind = token.Eq
		if lx.cur.Eat('=') {
			kind = token.EqEq
		}
	case '<':
		kind = token.Lt
		switch {
		case lx.cur.Eat('='):
			kind = token.LtEq
		case lx.cur.Eat('>'):
			kind = token.NotEq
		}
	case '>':
		kind = token.Gt
		if lx.cur.Eat('=') {
			kind = token.GtEq
		}
	case '#':
		kind = token.NotEq
	case '!':
		if lx.cur.Eat('=') {
			kind = token.NotEq
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case ':':
		kind = token.Colon
		if lx.cur.Eat('=') {
			kind = token.ColonAssign
		}
	case ';':
		kind = token.Semicolon
	case '@':
		kind = token.At
	case '?':
		kind = token.Question
		if lx.cur.Eat('?') {
			kind = token.QuestionQuestion
		}
	}
	return lx.make(kind, start)
}
