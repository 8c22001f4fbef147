package vm

import (
	"context"
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"

	"xbase/internal/diag"
	"xbase/internal/program"
	"xbase/internal/trace"
)

// Machine executes one unit against a console.
type Machine struct {
	unit    *program.Unit
	console Console
	tracer  trace.Tracer
	vars    map[string]Value
	classes map[string]*program.Class
	line    uint32
	steps   uint64
}

type flow uint8

const (
	flowNext flow = iota
	flowReturn
)

// New prepares a machine; unit is validated first.
func New(unit *program.Unit, console Console) (*Machine, error) {
	if err := unit.Validate(); err != nil {
		return nil, &Error{Code: diag.ExeBadArtifact, Message: err.Error()}
	}
	if console == nil {
		return nil, &Error{Code: diag.ExeInternal, Message: "nil console"}
	}
	return &Machine{unit: unit, console: console, tracer: trace.Nop}, nil
}

// Run is a shortcut for New followed by Machine.Run.
func Run(ctx context.Context, unit *program.Unit, console Console, args ...Value) error {
	m, err := New(unit, console)
	if err != nil {
		return err
	}
	return m.Run(ctx, args...)
}

// Run binds args to the entry parameters (missing ones are .F.) and executes the body.
// Every fault of the script, including a Go panic inside the interpreter, is
// returned as *Error; the host is never brought down.
func (m *Machine) Run(ctx context.Context, args ...Value) (err error) {
	m.tracer = trace.FromContext(ctx)
	m.vars = make(map[string]Value)
	m.classes = make(map[string]*program.Class)
	m.line = 0
	m.steps = 0

	span := trace.Begin(m.tracer, trace.ScopeUnit, "exec:"+m.unit.Name, trace.CurrentSpan(ctx))
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(fault); ok {
				err = f.err
			} else {
				err = &Error{Code: diag.ExeInternal, Message: fmt.Sprint(r), Line: m.line}
			}
		}
		detail := "ok"
		if err != nil {
			detail = err.Error()
			trace.Point(m.tracer, trace.ScopeError, "exec-failed", detail)
		}
		span.WithExtra("steps", fmt.Sprint(m.steps)).End(detail)
	}()

	if len(args) > len(m.unit.Params) {
		m.fail(diag.ExeTypeMismatch, "%s takes %d parameters, got %d", m.unit.Name, len(m.unit.Params), len(args))
	}
	for i, p := range m.unit.Params {
		v := False
		if i < len(args) {
			v = args[i]
		}
		m.set(p, v)
	}
	for i := range m.unit.Classes {
		c := &m.unit.Classes[i]
		m.classes[key(c.Name)] = c
		trace.Point(m.tracer, trace.ScopeUnit, "class", c.Name+" extends "+c.Base.String())
	}
	m.execBlock(m.unit.Body)
	return nil
}

// Var returns a variable after Run.
func (m *Machine) Var(name string) (Value, bool) {
	v, ok := m.vars[key(name)]
	return v, ok
}

// Steps returns how many statements the last Run executed.
func (m *Machine) Steps() uint64 { return m.steps }

func key(name string) string { return strings.ToUpper(name) }

func (m *Machine) set(name string, v Value) { m.vars[key(name)] = v }

func (m *Machine) get(name string) Value {
	v, ok := m.vars[key(name)]
	if !ok {
		m.fail(diag.ExeUndefinedVar, "variable %s is not defined", name)
	}
	return v
}

func (m *Machine) execBlock(body []program.Stmt) flow {
	for i := range body {
		if m.exec(&body[i]) == flowReturn {
			return flowReturn
		}
	}
	return flowNext
}

func (m *Machine) exec(s *program.Stmt) flow {
	m.line = s.Line
	m.steps++
	trace.Point(m.tracer, trace.ScopeStmt, s.Kind.String(), fmt.Sprintf("line %d", s.Line))

	switch s.Kind {
	case program.StmtLocal:
		for _, n := range s.Local.Names {
			m.set(n, False)
		}
	case program.StmtAssign:
		m.set(s.Assign.Name, m.eval(s.Assign.Value))
	case program.StmtIf:
		if m.truth(m.eval(s.If.Cond), "IF") {
			return m.execBlock(s.If.Then)
		}
		return m.execBlock(s.If.Else)
	case program.StmtFor:
		return m.execFor(s)
	case program.StmtWhile:
		for m.truth(m.eval(s.While.Cond), "DO WHILE") {
			if m.execBlock(s.While.Body) == flowReturn {
				return flowReturn
			}
			m.line = s.Line
		}
	case program.StmtColor:
		m.console.SetColor(*s.Color)
	case program.StmtSay:
		row := m.position(m.eval(s.Say.Row), "row")
		col := m.position(m.eval(s.Say.Col), "column")
		m.console.Say(row, col, m.eval(s.Say.Value).String())
	case program.StmtPrint:
		parts := make([]string, len(s.Print.Args))
		for i, a := range s.Print.Args {
			parts[i] = m.eval(a).String()
		}
		text := strings.Join(parts, " ")
		if s.Print.Newline {
			text += "\n"
		}
		m.console.Print(text)
	case program.StmtReturn:
		return flowReturn
	default:
		m.fail(diag.ExeInternal, "unknown statement kind %d", s.Kind)
	}
	return flowNext
}

// execFor: границы и шаг вычисляются один раз; переменная читается заново на каждой итерации.
func (m *Machine) execFor(s *program.Stmt) flow {
	f := s.For
	from := m.number(m.eval(f.From), "FOR start")
	to := m.number(m.eval(f.To), "FOR limit")
	step := 1.0
	if f.Step != nil {
		step = m.number(m.eval(*f.Step), "STEP")
	}
	if step == 0 {
		m.fail(diag.ExeZeroStep, "STEP 0 never ends the loop over %s", f.Var)
	}

	m.set(f.Var, Num(from))
	for {
		cur := m.number(m.get(f.Var), "FOR variable "+f.Var)
		if (step > 0 && cur > to) || (step < 0 && cur < to) {
			return flowNext
		}
		if m.execBlock(f.Body) == flowReturn {
			return flowReturn
		}
		m.line = s.Line
		cur = m.number(m.get(f.Var), "FOR variable "+f.Var)
		m.set(f.Var, Num(cur+step))
	}
}

func (m *Machine) truth(v Value, where string) bool {
	if v.Kind != VKLogical {
		m.fail(diag.ExeTypeMismatch, "%s condition must be logical, got %s", where, v.Kind)
	}
	return v.Bool
}

func (m *Machine) number(v Value, where string) float64 {
	if v.Kind != VKNumber {
		m.fail(diag.ExeTypeMismatch, "%s must be numeric, got %s", where, v.Kind)
	}
	return v.Num
}

// position converts a numeric screen coordinate to int.
func (m *Machine) position(v Value, what string) int {
	n := m.number(v, "SAY "+what)
	if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
		m.fail(diag.ExeTypeMismatch, "SAY %s must be a non-negative integer, got %s", what, v)
	}
	p, err := safecast.Conv[int](int64(n))
	if err != nil {
		m.fail(diag.ExeTypeMismatch, "SAY %s out of range: %v", what, err)
	}
	return p
}
