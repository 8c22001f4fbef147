package codegen

import (
	"fmt"
	"strings"

	"xbase/internal/program"
)

const indentUnit = "    "

type frameKind uint8

const (
	frameRoot frameKind = iota
	frameIf
	frameFor
	frameWhile
	frameClass
)

func (k frameKind) String() string {
	switch k {
	case frameIf:
		return "if"
	case frameFor:
		return "for"
	case frameWhile:
		return "while"
	case frameClass:
		return "class"
	default:
		return "root"
	}
}

// frame: открытый блок: оператор, который ещё собирается, и куда сейчас пишем.
type frame struct {
	kind   frameKind
	stmt   program.Stmt
	inElse bool
	depth  int
}

// Generator maps recognised statements onto listing lines and IR nodes.
// Statements are emitted strictly in the order they arrive.
type Generator struct {
	prog     *Program
	depth    int
	header   bool
	finished bool
	stack    []frame
	class    *program.Class
}

// New creates a generator for a unit called name.
func New(name string) *Generator {
	return &Generator{prog: newProgram(name), depth: 1}
}

// Depth returns the current listing indentation level; the entry body is level 1.
func (g *Generator) Depth() int { return g.depth }

// SetParams records the entry-point signature. It must precede every other emit.
func (g *Generator) SetParams(names []string) error {
	if g.header {
		return fmt.Errorf("codegen: parameters after the entry header")
	}
	g.prog.unit.Params = append([]string(nil), names...)
	return nil
}

// ensureHeader пишет "proc main(...)" перед первым оператором тела.
func (g *Generator) ensureHeader() error {
	if g.header {
		return nil
	}
	g.header = true
	return g.prog.AppendLine("proc main(" + strings.Join(g.prog.unit.Params, ", ") + ")")
}

func (g *Generator) line(format string, args ...any) error {
	if g.finished {
		return ErrSealed
	}
	if err := g.ensureHeader(); err != nil {
		return err
	}
	return g.prog.AppendLine(strings.Repeat(indentUnit, g.depth) + fmt.Sprintf(format, args...))
}

// add appends a finished statement to the innermost open block.
func (g *Generator) add(s program.Stmt) {
	if n := len(g.stack); n > 0 {
		top := &g.stack[n-1]
		switch top.kind {
		case frameIf:
			if top.inElse {
				top.stmt.If.Else = append(top.stmt.If.Else, s)
			} else {
				top.stmt.If.Then = append(top.stmt.If.Then, s)
			}
		case frameFor:
			top.stmt.For.Body = append(top.stmt.For.Body, s)
		case frameWhile:
			top.stmt.While.Body = append(top.stmt.While.Body, s)
		case frameRoot, frameClass:
			g.prog.unit.Body = append(g.prog.unit.Body, s)
		}
		return
	}
	g.prog.unit.Body = append(g.prog.unit.Body, s)
}

func (g *Generator) push(kind frameKind, s program.Stmt) {
	g.stack = append(g.stack, frame{kind: kind, stmt: s, depth: g.depth})
	g.depth++
}

func (g *Generator) pop(kind frameKind) (frame, error) {
	n := len(g.stack)
	if n == 0 {
		return frame{}, fmt.Errorf("codegen: end of %s without an open block", kind)
	}
	top := g.stack[n-1]
	if top.kind != kind {
		return frame{}, fmt.Errorf("codegen: end of %s while %s is open", kind, top.kind)
	}
	g.stack = g.stack[:n-1]
	g.depth = top.depth
	return top, nil
}

// Local declares names initialised to .F.
func (g *Generator) Local(names []string, line uint32) error {
	for _, n := range names {
		if err := g.line("local %s = %s", n, program.FormatLogical(false)); err != nil {
			return err
		}
	}
	g.add(program.Stmt{Kind: program.StmtLocal, Line: line, Local: &program.LocalStmt{Names: append([]string(nil), names...)}})
	return nil
}

// Assign emits name = value.
func (g *Generator) Assign(name string, value program.Expr, line uint32) error {
	if err := g.line("%s = %s", name, value); err != nil {
		return err
	}
	g.add(program.Stmt{Kind: program.StmtAssign, Line: line, Assign: &program.AssignStmt{Name: name, Value: value}})
	return nil
}

// BeginIf opens a conditional.
func (g *Generator) BeginIf(cond program.Expr, line uint32) error {
	if err := g.line("if %s then", cond); err != nil {
		return err
	}
	g.push(frameIf, program.Stmt{Kind: program.StmtIf, Line: line, If: &program.IfStmt{Cond: cond}})
	return nil
}

// Else switches the innermost conditional to its else branch.
func (g *Generator) Else() error {
	n := len(g.stack)
	if n == 0 || g.stack[n-1].kind != frameIf {
		return fmt.Errorf("codegen: else without an open if")
	}
	top := &g.stack[n-1]
	if top.inElse {
		return fmt.Errorf("codegen: second else in one if")
	}
	g.depth = top.depth
	if err := g.line("else"); err != nil {
		return err
	}
	g.depth++
	top.inElse = true
	return nil
}

// EndIf closes the innermost conditional.
func (g *Generator) EndIf() error {
	return g.closeBlock(frameIf)
}

// BeginFor opens a counted loop; step may be nil.
func (g *Generator) BeginFor(name string, from, to program.Expr, step *program.Expr, line uint32) error {
	stepText := "1"
	if step != nil {
		stepText = step.String()
	}
	if err := g.line("for %s = %s to %s step %s do", name, from, to, stepText); err != nil {
		return err
	}
	fs := &program.ForStmt{Var: name, From: from, To: to}
	if step != nil {
		s := *step
		fs.Step = &s
	}
	g.push(frameFor, program.Stmt{Kind: program.StmtFor, Line: line, For: fs})
	return nil
}

// EndFor closes the innermost counted loop.
func (g *Generator) EndFor() error {
	return g.closeBlock(frameFor)
}

// BeginWhile opens a pre-tested loop.
func (g *Generator) BeginWhile(cond program.Expr, line uint32) error {
	if err := g.line("while %s do", cond); err != nil {
		return err
	}
	g.push(frameWhile, program.Stmt{Kind: program.StmtWhile, Line: line, While: &program.WhileStmt{Cond: cond}})
	return nil
}

// EndWhile closes the innermost pre-tested loop.
func (g *Generator) EndWhile() error {
	return g.closeBlock(frameWhile)
}

func (g *Generator) closeBlock(kind frameKind) error {
	top, err := g.pop(kind)
	if err != nil {
		return err
	}
	if err := g.line("end"); err != nil {
		return err
	}
	g.add(top.stmt)
	return nil
}

// SetColor emits a colour-set call.
func (g *Generator) SetColor(c program.ColorPair, line uint32) error {
	if err := g.line("setcolor(%s, %s)", c.FG, c.BG); err != nil {
		return err
	}
	g.add(program.Stmt{Kind: program.StmtColor, Line: line, Color: &c})
	return nil
}

// Say emits a positioned print.
func (g *Generator) Say(row, col, value program.Expr, line uint32) error {
	if err := g.line("say(%s, %s, %s)", row, col, value); err != nil {
		return err
	}
	g.add(program.Stmt{Kind: program.StmtSay, Line: line, Say: &program.SayStmt{Row: row, Col: col, Value: value}})
	return nil
}

// Print emits an unpositioned print; newline selects println over print.
func (g *Generator) Print(args []program.Expr, newline bool, line uint32) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fn := "print"
	if newline {
		fn = "println"
	}
	if err := g.line("%s(%s)", fn, strings.Join(parts, ", ")); err != nil {
		return err
	}
	g.add(program.Stmt{Kind: program.StmtPrint, Line: line, Print: &program.PrintStmt{
		Args:    append([]program.Expr(nil), args...),
		Newline: newline,
	}})
	return nil
}

// Return ends the program.
func (g *Generator) Return(line uint32) error {
	if err := g.line("return"); err != nil {
		return err
	}
	g.add(program.Stmt{Kind: program.StmtReturn, Line: line})
	return nil
}

// BeginClass opens a class extending the given widget base.
func (g *Generator) BeginClass(name string, base program.Widget, line uint32) error {
	if !base.Valid() {
		return fmt.Errorf("codegen: invalid widget base %v", base)
	}
	if g.class != nil {
		return fmt.Errorf("codegen: class %s inside class %s", name, g.class.Name)
	}
	if err := g.line("class %s extends %s", name, base); err != nil {
		return err
	}
	g.push(frameClass, program.Stmt{})
	if err := g.line("constructor()"); err != nil {
		return err
	}
	g.depth++
	if err := g.line("super()"); err != nil {
		return err
	}
	g.class = &program.Class{Name: name, Base: base, Line: line}
	return nil
}

// ClassProp emits one constructor assignment of the open class.
func (g *Generator) ClassProp(name string, value program.Expr, line uint32) error {
	if g.class == nil {
		return fmt.Errorf("codegen: property %s outside a class", name)
	}
	if err := g.line("this.%s = %s", name, value); err != nil {
		return err
	}
	g.class.Props = append(g.class.Props, program.Prop{Name: name, Value: value, Line: line})
	return nil
}

// EndClass closes the constructor and the class.
func (g *Generator) EndClass() error {
	if g.class == nil {
		return fmt.Errorf("codegen: end of class without an open class")
	}
	g.depth--
	if err := g.line("end"); err != nil {
		return err
	}
	if _, err := g.pop(frameClass); err != nil {
		return err
	}
	if err := g.line("end"); err != nil {
		return err
	}
	g.prog.unit.Classes = append(g.prog.unit.Classes, *g.class)
	g.class = nil
	return nil
}

// Finish closes the entry point and returns the program. Every block must be closed.
func (g *Generator) Finish() (*Program, error) {
	if g.finished {
		return nil, ErrSealed
	}
	if n := len(g.stack); n > 0 {
		return nil, fmt.Errorf("codegen: %s block left open", g.stack[n-1].kind)
	}
	if err := g.ensureHeader(); err != nil {
		return nil, err
	}
	if err := g.prog.AppendLine("end"); err != nil {
		return nil, err
	}
	g.finished = true
	return g.prog, nil
}
