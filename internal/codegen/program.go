package codegen

import (
	"errors"
	"strings"
	"sync"

	"xbase/internal/program"
)

// ErrSealed is returned when appending to a program already handed to the cache.
var ErrSealed = errors.New("codegen: program is sealed")

// Program is the generated output of one translation: the listing text and the
// executable unit built alongside. It is append-only until sealed.
type Program struct {
	mu     sync.RWMutex
	lines  []string
	unit   *program.Unit
	sealed bool
}

func newProgram(name string) *Program {
	return &Program{unit: &program.Unit{Name: name}}
}

// AppendLine adds one listing line.
func (p *Program) AppendLine(line string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sealed {
		return ErrSealed
	}
	p.lines = append(p.lines, line)
	return nil
}

// Seal makes the program read-only. Sealing twice is a no-op.
func (p *Program) Seal() {
	p.mu.Lock()
	p.sealed = true
	p.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (p *Program) Sealed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sealed
}

// Listing returns the generated text, one line per statement, '\n'-terminated.
func (p *Program) Listing() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.lines) == 0 {
		return ""
	}
	return strings.Join(p.lines, "\n") + "\n"
}

// Lines returns a copy of the listing lines.
func (p *Program) Lines() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.lines...)
}

// Unit returns the executable unit. Callers must not modify it once sealed.
func (p *Program) Unit() *program.Unit { return p.unit }
