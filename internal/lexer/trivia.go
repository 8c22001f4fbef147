package lexer

import (
	"xbase/internal/diag"
	"xbase/internal/dialect"
)

// skipTrivia съедает пробелы и комментарии активного диалекта.
//   - ' ', '\t', '\r', '\f', '\v': всегда пробелы
//   - '\n': пробел, если диалект не считает его концом оператора
//   - строчные комментарии едят всё до '\n' (сам '\n' остаётся)
//   - блочные должны закрыться до конца файла
//   - чужая форма комментария: ошибка, а не молчаливый пропуск
func (lx *Lexer) skipTrivia() error {
	for {
		ch, ok := lx.cur.PeekChar()
		if !ok {
			return nil
		}
		if ch == '\n' {
			if lx.rules.NewlineSignificant {
				return nil
			}
			lx.cur.NextChar()
			continue
		}
		if isSpace(ch) {
			lx.cur.NextChar()
			continue
		}

		form, ok := lx.matchComment()
		if !ok {
			return nil
		}
		start := lx.cur.Mark()
		for range len(form.Opener()) {
			lx.cur.NextChar()
		}
		if lx.rules.Usage(form) == dialect.Foreign {
			return lx.errAt(diag.LexForeignComment, start,
				"comment %q not allowed in this dialect (%s)", form.Opener(), lx.kind)
		}
		if form.IsBlock() {
			if !lx.skipBlockComment(form.Closer()) {
				return lx.errAt(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
			}
			continue
		}
		lx.skipLine()
	}
}

// matchComment reports which comment form, allowed or foreign, starts at the cursor.
func (lx *Lexer) matchComment() (dialect.CommentForm, bool) {
	r0, r1 := lx.cur.Peek2()
	for _, form := range lx.forms {
		op := form.Opener()
		switch len(op) {
		case 1:
			if r0 == rune(op[0]) {
				return form, true
			}
		case 2:
			if r0 == rune(op[0]) && r1 == rune(op[1]) {
				return form, true
			}
		}
	}
	return 0, false
}

func (lx *Lexer) skipLine() {
	for {
		ch, ok := lx.cur.PeekChar()
		if !ok || ch == '\n' {
			return
		}
		lx.cur.NextChar()
	}
}

// skipBlockComment consumes everything up to and including closer.
// It returns false if the input ended first.
func (lx *Lexer) skipBlockComment(closer string) bool {
	for {
		r0, r1 := lx.cur.Peek2()
		if len(closer) == 2 && r0 == rune(closer[0]) && r1 == rune(closer[1]) {
			lx.cur.NextChar()
			lx.cur.NextChar()
			return true
		}
		if len(closer) == 1 && r0 == rune(closer[0]) {
			lx.cur.NextChar()
			return true
		}
		if _, ok := lx.cur.NextChar(); !ok {
			return false
		}
	}
}
