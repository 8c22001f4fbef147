package program

import (
	"strconv"
	"strings"
)

// ExprKind enumerates expression node kinds.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprNumber
	ExprString
	ExprLogical
	ExprIdent
	ExprUnary
	ExprBinary
)

// Op is a unary or binary operator.
type Op uint8

const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEq      // = (prefix match for strings)
	OpExactEq // ==
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNot
	OpNeg
	OpPos
)

var opText = [...]string{
	OpInvalid: "?",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpEq:      "=",
	OpExactEq: "==",
	OpNe:      "<>",
	OpLt:      "<",
	OpLe:      "<=",
	OpGt:      ">",
	OpGe:      ">=",
	OpAnd:     "and",
	OpOr:      "or",
	OpNot:     "not",
	OpNeg:     "-",
	OpPos:     "+",
}

func (op Op) String() string {
	if int(op) < len(opText) {
		return opText[op]
	}
	return "?"
}

// Precedence of a binary operator; larger binds tighter. Unary operators bind
// tighter than any binary one except .NOT., which sits between .AND. and comparisons.
func (op Op) Precedence() int {
	switch op {
	case OpOr:
		return 1
	case OpAnd:
		return 2
	case OpNot:
		return 3
	case OpEq, OpExactEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return 4
	case OpAdd, OpSub:
		return 5
	case OpMul, OpDiv:
		return 6
	case OpNeg, OpPos:
		return 7
	}
	return 0
}

// Expr is an expression node. Only the fields of its Kind are meaningful.
type Expr struct {
	Kind ExprKind `msgpack:"k"`
	Op   Op       `msgpack:"o,omitempty"`
	Num  float64  `msgpack:"n,omitempty"`
	Str  string   `msgpack:"s,omitempty"` // string value or identifier name
	Bool bool     `msgpack:"t,omitempty"`
	X    *Expr    `msgpack:"x,omitempty"`
	Y    *Expr    `msgpack:"y,omitempty"`
	Line uint32   `msgpack:"l,omitempty"`
}

// Number builds a numeric literal.
func Number(v float64) Expr { return Expr{Kind: ExprNumber, Num: v} }

// String builds a string literal.
func String(s string) Expr { return Expr{Kind: ExprString, Str: s} }

// Logical builds .T. or .F.
func Logical(b bool) Expr { return Expr{Kind: ExprLogical, Bool: b} }

// Ident builds a variable reference.
func Ident(name string) Expr { return Expr{Kind: ExprIdent, Str: name} }

// Unary builds op x.
func Unary(op Op, x Expr) Expr { return Expr{Kind: ExprUnary, Op: op, X: &x} }

// Binary builds x op y.
func Binary(op Op, x, y Expr) Expr { return Expr{Kind: ExprBinary, Op: op, X: &x, Y: &y} }

// IsConst reports whether e is a literal.
func (e Expr) IsConst() bool {
	switch e.Kind {
	case ExprNumber, ExprString, ExprLogical:
		return true
	default:
		return false
	}
}

// String renders e in listing syntax with the minimum of parentheses.
func (e Expr) String() string {
	var sb strings.Builder
	writeExpr(&sb, e, 0)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr, outer int) {
	switch e.Kind {
	case ExprNumber:
		sb.WriteString(FormatNumber(e.Num))
	case ExprString:
		sb.WriteString(strconv.Quote(e.Str))
	case ExprLogical:
		sb.WriteString(FormatLogical(e.Bool))
	case ExprIdent:
		sb.WriteString(e.Str)
	case ExprUnary:
		prec := e.Op.Precedence()
		open(sb, prec < outer)
		sb.WriteString(e.Op.String())
		if e.Op == OpNot {
			sb.WriteByte(' ')
		}
		if e.X != nil {
			writeExpr(sb, *e.X, prec+1)
		}
		closeParen(sb, prec < outer)
	case ExprBinary:
		prec := e.Op.Precedence()
		open(sb, prec < outer)
		if e.X != nil {
			writeExpr(sb, *e.X, prec)
		}
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		// левоассоциативные: правый операнд того же приоритета берём в скобки
		if e.Y != nil {
			writeExpr(sb, *e.Y, prec+1)
		}
		closeParen(sb, prec < outer)
	default:
		sb.WriteString("<invalid>")
	}
}

func open(sb *strings.Builder, need bool) {
	if need {
		sb.WriteByte('(')
	}
}

func closeParen(sb *strings.Builder, need bool) {
	if need {
		sb.WriteByte(')')
	}
}

// FormatNumber prints a number the way the console shows it: integers without a fraction.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatLogical prints .T. or .F.
func FormatLogical(b bool) string {
	if b {
		return ".T."
	}
	return ".F."
}
