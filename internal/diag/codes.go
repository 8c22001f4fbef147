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
	LexForeignComment           Code = 1005
	LexBadEscape                Code = 1006

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynKeywordAsIdent     Code = 2003
	SynUnclosedParen      Code = 2004
	SynParenUnderflow     Code = 2005
	SynExpectExpression   Code = 2006
	SynExpectKeyword      Code = 2007
	SynUnknownColor       Code = 2008
	SynParameterPosition  Code = 2009
	SynExpectEndOfLine    Code = 2010
	SynNestedClass        Code = 2011
	SynUnsupportedDialect Code = 2012
	SynUnsupportedCall    Code = 2013

	// warnings
	SynNextVarMismatch Code = 2101
	SynLocalRedeclared Code = 2102

	// Блочные (IF/ENDIF, FOR/NEXT, ...)
	BlkInfo                Code = 2500
	BlkEndifWithoutIf      Code = 2501
	BlkElseWithoutIf       Code = 2502
	BlkDuplicateElse       Code = 2503
	BlkNextWithoutFor      Code = 2504
	BlkEnddoWithoutDo      Code = 2505
	BlkEndclassWithoutOpen Code = 2506
	BlkUnclosed            Code = 2507
	BlkIfCountMismatch     Code = 2508

	// Исполнение
	ExeInfo         Code = 4000
	ExeTypeMismatch Code = 4001
	ExeUndefinedVar Code = 4002
	ExeDivByZero    Code = 4003
	ExeZeroStep     Code = 4004
	ExeInternal     Code = 4005
	ExeBadArtifact  Code = 4006

	// Ввод-вывод
	IOInfo      Code = 5000
	IOLoadFile  Code = 5001
	IOCacheFile Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexForeignComment:           "Comment not allowed in this dialect",
	LexBadEscape:                "Invalid escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectIdentifier:         "Expected identifier",
	SynKeywordAsIdent:           "Reserved word used as identifier",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynParenUnderflow:           "Unmatched closing parenthesis",
	SynExpectExpression:         "Expected expression",
	SynExpectKeyword:            "Expected keyword",
	SynUnknownColor:             "Unknown color name",
	SynParameterPosition:        "PARAMETER must be the first statement",
	SynExpectEndOfLine:          "Expected end of line",
	SynNestedClass:              "CLASS inside a block",
	SynUnsupportedDialect:       "Dialect has no parser",
	SynUnsupportedCall:          "Function calls are not supported",
	SynNextVarMismatch:          "NEXT variable does not match FOR",
	SynLocalRedeclared:          "Variable declared twice",
	BlkInfo:                     "Block structure information",
	BlkEndifWithoutIf:           "ENDIF without IF",
	BlkElseWithoutIf:            "ELSE without IF",
	BlkDuplicateElse:            "Second ELSE in one IF",
	BlkNextWithoutFor:           "NEXT without FOR",
	BlkEnddoWithoutDo:           "ENDDO without DO WHILE",
	BlkEndclassWithoutOpen:      "ENDCLASS without CLASS",
	BlkUnclosed:                 "Block not closed",
	BlkIfCountMismatch:          "IF/ENDIF count mismatch",
	ExeInfo:                     "Execution information",
	ExeTypeMismatch:             "Type mismatch",
	ExeUndefinedVar:             "Variable not found",
	ExeDivByZero:                "Division by zero",
	ExeZeroStep:                 "FOR STEP is zero",
	ExeInternal:                 "Internal execution fault",
	ExeBadArtifact:              "Compiled artifact is not loadable",
	IOInfo:                      "I/O information",
	IOLoadFile:                  "Cannot read script",
	IOCacheFile:                 "Cannot access compilation cache",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 2500:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2500 && ic < 3000:
		return fmt.Sprintf("BLK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EXE%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
