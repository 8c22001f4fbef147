package vm

import (
	"fmt"

	"xbase/internal/diag"
)

// Error is a fault raised by a running script. It matches diag.ErrExecution.
type Error struct {
	Code    diag.Code
	Message string
	Line    uint32 // source line of the failing statement, 0 if unknown
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: ExecutionError: %s", e.Code.ID(), e.Message)
	}
	return fmt.Sprintf("line %d: %s: ExecutionError: %s", e.Line, e.Code.ID(), e.Message)
}

// Is matches diag.ErrExecution.
func (e *Error) Is(target error) bool { return target == diag.ErrExecution }

// fault is raised with panic inside the interpreter and recovered in Run.
type fault struct{ err *Error }

func (m *Machine) fail(code diag.Code, format string, args ...any) {
	panic(fault{&Error{Code: code, Message: fmt.Sprintf(format, args...), Line: m.line}})
}
