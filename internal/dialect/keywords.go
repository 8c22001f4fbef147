package dialect

import (
	"strings"

	"xbase/internal/token"
)

var primaryKeywords = map[string]token.Kind{
	"PARAMETER":  token.KwParameter,
	"PARAMETERS": token.KwParameter,
	"LOCAL":      token.KwLocal,
	"IF":         token.KwIf,
	"ELSE":       token.KwElse,
	"ENDIF":      token.KwEndif,
	"FOR":        token.KwFor,
	"TO":         token.KwTo,
	"STEP":       token.KwStep,
	"NEXT":       token.KwNext,
	"ENDFOR":     token.KwNext,
	"DO":         token.KwDo,
	"WHILE":      token.KwWhile,
	"ENDDO":      token.KwEnddo,
	"RETURN":     token.KwReturn,
	"SET":        token.KwSet,
	"COLOR":      token.KwColor,
	"SAY":        token.KwSay,
	"CLASS":      token.KwClass,
	"OF":         token.KwOf,
	"ENDCLASS":   token.KwEndclass,
	"THIS":       token.KwThis,
	"FORM":       token.KwForm,
	"CONTAINER":  token.KwContainer,
	"GRID":       token.KwGrid,
	"PUSHBUTTON": token.KwPushbutton,
	"MEMO":       token.KwMemo,
	"TEXT":       token.KwText,
	"EDITFIELD":  token.KwEditfield,
}

// Структурный диалект: только резервирование, парсера нет.
var structuredKeywords = wordSet(token.Keyword,
	"PROGRAM", "BEGIN", "END", "VAR", "CONST", "TYPE", "PROCEDURE", "FUNCTION",
	"IF", "THEN", "ELSE", "WHILE", "DO", "REPEAT", "UNTIL", "FOR", "TO", "DOWNTO",
	"CASE", "OF", "AND", "OR", "NOT", "DIV", "MOD", "ARRAY", "RECORD")

var listKeywords = wordSet(token.Keyword,
	"defun", "defvar", "defparameter", "let", "let*", "lambda", "if", "cond", "setq",
	"progn", "quote", "nil", "t")

func wordSet(k token.Kind, words ...string) map[string]token.Kind {
	m := make(map[string]token.Kind, len(words))
	for _, w := range words {
		m[w] = k
	}
	return m
}

// LookupKeyword classifies an identifier in dialect k.
// Primary and structured keywords are case-insensitive; list keywords are not.
func LookupKeyword(k Kind, ident string) (token.Kind, bool) {
	switch k {
	case Primary:
		kind, ok := primaryKeywords[strings.ToUpper(ident)]
		return kind, ok
	case Structured:
		kind, ok := structuredKeywords[strings.ToUpper(ident)]
		return kind, ok
	case List:
		kind, ok := listKeywords[ident]
		return kind, ok
	default:
		return token.Invalid, false
	}
}
