package vm

import (
	"xbase/internal/diag"
	"xbase/internal/program"
)

func (m *Machine) eval(e program.Expr) Value {
	switch e.Kind {
	case program.ExprNumber:
		return Num(e.Num)
	case program.ExprString:
		return Str(e.Str)
	case program.ExprLogical:
		return Bool(e.Bool)
	case program.ExprIdent:
		return m.get(e.Str)
	case program.ExprUnary:
		return m.unary(e.Op, m.eval(*e.X))
	case program.ExprBinary:
		// and/or вычисляют правую часть только при необходимости
		if e.Op == program.OpAnd || e.Op == program.OpOr {
			x := m.truth(m.eval(*e.X), e.Op.String())
			if e.Op == program.OpAnd && !x {
				return False
			}
			if e.Op == program.OpOr && x {
				return Bool(true)
			}
			return Bool(m.truth(m.eval(*e.Y), e.Op.String()))
		}
		return m.binary(e.Op, m.eval(*e.X), m.eval(*e.Y))
	}
	m.fail(diag.ExeInternal, "unknown expression kind %d", e.Kind)
	return Value{}
}

func (m *Machine) unary(op program.Op, x Value) Value {
	switch op {
	case program.OpNot:
		return Bool(!m.truth(x, "not"))
	case program.OpNeg:
		return Num(-m.number(x, "operand of unary -"))
	case program.OpPos:
		return Num(m.number(x, "operand of unary +"))
	}
	m.fail(diag.ExeInternal, "unknown unary operator %s", op)
	return Value{}
}

func (m *Machine) binary(op program.Op, x, y Value) Value {
	switch op {
	case program.OpAdd:
		if x.Kind == VKString && y.Kind == VKString {
			return Str(x.Str + y.Str)
		}
		a, b := m.operands(op, x, y)
		return Num(a + b)
	case program.OpSub:
		a, b := m.operands(op, x, y)
		return Num(a - b)
	case program.OpMul:
		a, b := m.operands(op, x, y)
		return Num(a * b)
	case program.OpDiv:
		a, b := m.operands(op, x, y)
		if b == 0 {
			m.fail(diag.ExeDivByZero, "division by zero")
		}
		return Num(a / b)
	case program.OpEq, program.OpExactEq, program.OpNe:
		if x.Kind != y.Kind {
			m.mismatch(op, x, y)
		}
		switch op {
		case program.OpEq:
			return Bool(looseEqual(x, y))
		case program.OpExactEq:
			return Bool(x.Equal(y))
		default:
			return Bool(!looseEqual(x, y))
		}
	case program.OpLt, program.OpLe, program.OpGt, program.OpGe:
		c := m.compare(op, x, y)
		switch op {
		case program.OpLt:
			return Bool(c < 0)
		case program.OpLe:
			return Bool(c <= 0)
		case program.OpGt:
			return Bool(c > 0)
		default:
			return Bool(c >= 0)
		}
	}
	m.fail(diag.ExeInternal, "unknown binary operator %s", op)
	return Value{}
}

func (m *Machine) operands(op program.Op, x, y Value) (float64, float64) {
	if x.Kind != VKNumber || y.Kind != VKNumber {
		m.mismatch(op, x, y)
	}
	return x.Num, y.Num
}

// compare orders numbers and strings; logicals are not ordered.
func (m *Machine) compare(op program.Op, x, y Value) int {
	if x.Kind != y.Kind || x.Kind == VKLogical {
		m.mismatch(op, x, y)
	}
	switch x.Kind {
	case VKNumber:
		switch {
		case x.Num < y.Num:
			return -1
		case x.Num > y.Num:
			return 1
		}
		return 0
	case VKString:
		switch {
		case x.Str < y.Str:
			return -1
		case x.Str > y.Str:
			return 1
		}
		return 0
	}
	m.mismatch(op, x, y)
	return 0
}

func (m *Machine) mismatch(op program.Op, x, y Value) {
	m.fail(diag.ExeTypeMismatch, "operator %s: %s and %s", op, x.Kind, y.Kind)
}
