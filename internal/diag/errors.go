package diag

import (
	"errors"
	"fmt"

	"xbase/internal/source"
)

// Sentinels for errors.Is; every *Error and vm error matches exactly one of them.
var (
	ErrSyntax        = errors.New("syntax error")
	ErrKeywordMisuse = errors.New("keyword misuse")
	ErrStructural    = errors.New("structural imbalance")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is the taxonomy class of a fatal error.
type ErrorKind uint8

const (
	KindSyntax ErrorKind = iota + 1
	KindKeywordMisuse
	KindStructural
	KindExecution
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "SyntaxError"
	case KindKeywordMisuse:
		return "KeywordMisuseError"
	case KindStructural:
		return "StructuralImbalanceError"
	case KindExecution:
		return "ExecutionError"
	default:
		return "Error"
	}
}

// Sentinel returns the errors.Is target of the kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindSyntax:
		return ErrSyntax
	case KindKeywordMisuse:
		return ErrKeywordMisuse
	case KindStructural:
		return ErrStructural
	case KindExecution:
		return ErrExecution
	default:
		return nil
	}
}

// Error is a fatal scanner or parser error with its source position.
type Error struct {
	Kind    ErrorKind
	Code    Code
	Message string
	File    string
	Line    uint32
	Col     uint32
	Span    source.Span
}

func (e *Error) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Col, e.Kind, e.Message)
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// Diagnostic converts the error for rendering next to warnings.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{Severity: SevError, Code: e.Code, Message: e.Message, Primary: e.Span}
}

// KindOf returns the taxonomy kind a code belongs to.
func KindOf(code Code) ErrorKind {
	switch {
	case code == SynKeywordAsIdent:
		return KindKeywordMisuse
	case code >= BlkInfo && code < 3000:
		return KindStructural
	case code >= ExeInfo && code < 5000:
		return KindExecution
	default:
		return KindSyntax
	}
}

// NewError builds an *Error whose kind follows from code.
func NewError(code Code, span source.Span, pos source.Pos, format string, args ...any) *Error {
	return &Error{
		Kind:    KindOf(code),
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Col:     pos.Col,
		Span:    span,
	}
}
