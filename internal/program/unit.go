package program

import (
	"errors"
	"fmt"
)

// Unit is one translated script.
type Unit struct {
	Name    string   `msgpack:"name"`
	Params  []string `msgpack:"params"`
	Body    []Stmt   `msgpack:"body"`
	Classes []Class  `msgpack:"classes,omitempty"`
}

// Class is a declared widget class with its constructor assignments.
type Class struct {
	Name  string `msgpack:"name"`
	Base  Widget `msgpack:"base"`
	Props []Prop `msgpack:"props"`
	Line  uint32 `msgpack:"line"`
}

// Prop is one THIS.<name> = <value> line of a constructor.
type Prop struct {
	Name  string `msgpack:"name"`
	Value Expr   `msgpack:"value"`
	Line  uint32 `msgpack:"line,omitempty"`
}

// ErrMalformed is wrapped by every Validate failure.
var ErrMalformed = errors.New("malformed program")

// Class returns the declared class with the given name.
func (u *Unit) Class(name string) (*Class, bool) {
	for i := range u.Classes {
		if u.Classes[i].Name == name {
			return &u.Classes[i], true
		}
	}
	return nil, false
}

// Validate checks that every node carries the payload its kind requires.
// A unit decoded from disk is validated before it runs.
func (u *Unit) Validate() error {
	if u == nil {
		return fmt.Errorf("%w: nil unit", ErrMalformed)
	}
	if err := validateBlock(u.Body); err != nil {
		return err
	}
	for i := range u.Classes {
		c := &u.Classes[i]
		if !c.Base.Valid() {
			return fmt.Errorf("%w: class %s has invalid base %v", ErrMalformed, c.Name, c.Base)
		}
		for _, p := range c.Props {
			if err := validateExpr(p.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateBlock(body []Stmt) error {
	for i := range body {
		if err := validateStmt(&body[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateStmt(s *Stmt) error {
	missing := func() error {
		return fmt.Errorf("%w: line %d: %s statement without payload", ErrMalformed, s.Line, s.Kind)
	}
	switch s.Kind {
	case StmtLocal:
		if s.Local == nil {
			return missing()
		}
	case StmtAssign:
		if s.Assign == nil {
			return missing()
		}
		return validateExpr(s.Assign.Value)
	case StmtIf:
		if s.If == nil {
			return missing()
		}
		if err := validateExpr(s.If.Cond); err != nil {
			return err
		}
		if err := validateBlock(s.If.Then); err != nil {
			return err
		}
		return validateBlock(s.If.Else)
	case StmtFor:
		if s.For == nil {
			return missing()
		}
		for _, e := range []Expr{s.For.From, s.For.To} {
			if err := validateExpr(e); err != nil {
				return err
			}
		}
		if s.For.Step != nil {
			if err := validateExpr(*s.For.Step); err != nil {
				return err
			}
		}
		return validateBlock(s.For.Body)
	case StmtWhile:
		if s.While == nil {
			return missing()
		}
		if err := validateExpr(s.While.Cond); err != nil {
			return err
		}
		return validateBlock(s.While.Body)
	case StmtColor:
		if s.Color == nil {
			return missing()
		}
	case StmtSay:
		if s.Say == nil {
			return missing()
		}
		for _, e := range []Expr{s.Say.Row, s.Say.Col, s.Say.Value} {
			if err := validateExpr(e); err != nil {
				return err
			}
		}
	case StmtPrint:
		if s.Print == nil {
			return missing()
		}
		for _, e := range s.Print.Args {
			if err := validateExpr(e); err != nil {
				return err
			}
		}
	case StmtReturn:
	default:
		return fmt.Errorf("%w: line %d: unknown statement kind %d", ErrMalformed, s.Line, s.Kind)
	}
	return nil
}

func validateExpr(e Expr) error {
	switch e.Kind {
	case ExprNumber, ExprString, ExprLogical, ExprIdent:
		return nil
	case ExprUnary:
		if e.X == nil {
			return fmt.Errorf("%w: unary %s without operand", ErrMalformed, e.Op)
		}
		return validateExpr(*e.X)
	case ExprBinary:
		if e.X == nil || e.Y == nil {
			return fmt.Errorf("%w: binary %s without operands", ErrMalformed, e.Op)
		}
		if err := validateExpr(*e.X); err != nil {
			return err
		}
		return validateExpr(*e.Y)
	default:
		return fmt.Errorf("%w: unknown expression kind %d", ErrMalformed, e.Kind)
	}
}
