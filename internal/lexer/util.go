package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneError = utf8.RuneError

// ===== Классификаторы =====

func isIdentStart(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return r != utf8.RuneError && unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDec(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
