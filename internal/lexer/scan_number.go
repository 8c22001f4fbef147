package lexer

import (
	"xbase/internal/diag"
	"xbase/internal/source"
	"xbase/internal/token"
)

// scanNumber: digits [. [digits]] или .digits; первый символ уже съеден.
// "1." это число; точка перед буквой остаётся отдельным токеном ("1.AND.").
// Буква сразу после числа ("12ab"): ошибка, а не два токена.
func (lx *Lexer) scanNumber(start source.Mark) (token.Token, error) {
	seenDot := lx.cur.Text(start) == "."
	lx.eatDigits()
	if !seenDot {
		if r0, r1 := lx.cur.Peek2(); r0 == '.' && !isLetter(r1) {
			lx.cur.NextChar()
			lx.eatDigits()
		}
	}
	if r, ok := lx.cur.PeekChar(); ok && isIdentStart(r) {
		for {
			r, ok := lx.cur.PeekChar()
			if !ok || !isIdentContinue(r) {
				break
			}
			lx.cur.NextChar()
		}
		return lx.invalid(), lx.errAt(diag.LexBadNumber, start, "malformed number %q", lx.cur.Text(start))
	}
	return lx.make(token.Number, start), nil
}

func (lx *Lexer) eatDigits() {
	for {
		r, ok := lx.cur.PeekChar()
		if !ok || !isDec(r) {
			return
		}
		lx.cur.NextChar()
	}
}
