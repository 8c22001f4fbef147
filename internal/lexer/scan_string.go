package lexer

import (
	"strings"

	"xbase/internal/diag"
	"xbase/internal/source"
	"xbase/internal/token"
)

var escapes = map[rune]rune{
	'\\': '\\',
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'a':  '\a',
	'"':  '"',
	'\'': '\'',
}

// scanString читает литерал до закрывающей кавычки q; открывающая уже съедена.
// Строка обязана закрыться до конца строки. Value: раскодированное содержимое.
func (lx *Lexer) scanString(start source.Mark, q rune) (token.Token, error) {
	var sb strings.Builder
	for {
		r, ok := lx.cur.PeekChar()
		if !ok || r == '\n' {
			return lx.invalid(), lx.errAt(diag.LexUnterminatedString, start, "unterminated string literal")
		}
		lx.cur.NextChar()
		if r == q {
			tok := lx.make(token.String, start)
			tok.Value = sb.String()
			return tok, nil
		}
		if r != '\\' || !lx.rules.BackslashEscapes {
			sb.WriteRune(r)
			continue
		}

		escStart := lx.cur.Mark()
		e, ok := lx.cur.PeekChar()
		switch {
		case !ok || e == '\n':
			return lx.invalid(), lx.errAt(diag.LexBadEscape, start, "escape at end of line")
		case e == ' ':
			return lx.invalid(), lx.errAt(diag.LexBadEscape, start, "escape before a space")
		}
		lx.cur.NextChar()
		dec, known := escapes[e]
		if !known {
			return lx.invalid(), lx.errAt(diag.LexBadEscape, escStart, "unknown escape \\%c", e)
		}
		sb.WriteRune(dec)
	}
}
