package lexer

import (
	"xbase/internal/dialect"
	"xbase/internal/source"
	"xbase/internal/token"
)

// scanIdentOrKeyword — первый символ уже съеден.
func (lx *Lexer) scanIdentOrKeyword(start source.Mark) token.Token {
	for {
		r, ok := lx.cur.PeekChar()
		if !ok || !isIdentContinue(r) {
			break
		}
		lx.cur.NextChar()
	}
	tok := lx.make(token.Ident, start)
	if kind, ok := dialect.LookupKeyword(lx.kind, tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}

var dotWords = map[string]struct {
	kind  token.Kind
	value string
}{
	"T":   {token.Logical, "T"},
	"Y":   {token.Logical, "T"},
	"F":   {token.Logical, "F"},
	"N":   {token.Logical, "F"},
	"AND": {token.And, ""},
	"OR":  {token.Or, ""},
	"NOT": {token.Not, ""},
}

// scanDotWord распознаёт .T. .F. .AND. .OR. .NOT. (без учёта регистра).
// Если за точкой не слово из таблицы, откатываемся и отдаём одиночную точку.
func (lx *Lexer) scanDotWord(start source.Mark) token.Token {
	afterDot := lx.cur.Mark()
	var word []rune
	for {
		r, ok := lx.cur.PeekChar()
		if !ok || !isLetter(r) {
			break
		}
		lx.cur.NextChar()
		word = append(word, r)
	}
	if len(word) > 0 && lx.cur.Eat('.') {
		if dw, ok := dotWords[upperASCII(string(word))]; ok {
			tok := lx.make(dw.kind, start)
			tok.Value = dw.value
			return tok
		}
	}
	lx.cur.Reset(afterDot)
	return lx.make(token.Dot, start)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
