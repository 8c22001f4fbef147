package program_test

import (
	"errors"
	"testing"

	"xbase/internal/program"
	"xbase/internal/token"
)

func TestColorRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"N", 0, 0, 0},
		{"blue", 0, 0, 170},
		{"G", 0, 170, 0},
		{"BG", 0, 170, 170},
		{"R", 170, 0, 0},
		{"RB", 170, 0, 170},
		{"GR", 170, 85, 0},
		{"W", 170, 170, 170},
		{"GRAY", 85, 85, 85},
		{"grey", 85, 85, 85},
		{"YELLOW", 255, 255, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := program.LookupColor(tt.name)
			if !ok {
				t.Fatalf("color %q not found", tt.name)
			}
			r, g, b := c.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Fatalf("RGB = (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestBrightVariants(t *testing.T) {
	w, _ := program.LookupColor("W")
	w.Bright = true
	if got := w.String(); got != "rgb(255, 255, 255)" {
		t.Fatalf("W+ = %s", got)
	}
	b, _ := program.LookupColor("B")
	b.Bright = true
	if got := b.String(); got != "rgb(85, 85, 255)" {
		t.Fatalf("B+ = %s", got)
	}
}

func TestUnknownColor(t *testing.T) {
	if _, ok := program.LookupColor("PINK"); ok {
		t.Fatal("PINK must not resolve")
	}
}

func TestDefaultColors(t *testing.T) {
	p := program.DefaultColors()
	if p.FG.String() != "rgb(170, 170, 170)" || p.BG.String() != "rgb(0, 0, 0)" {
		t.Fatalf("defaults = %s/%s", p.FG, p.BG)
	}
}

func TestWidgetForKeyword(t *testing.T) {
	tests := []struct {
		kw   token.Kind
		want program.Widget
		name string
	}{
		{token.KwForm, program.WidgetForm, "Form"},
		{token.KwContainer, program.WidgetContainer, "Container"},
		{token.KwGrid, program.WidgetGrid, "Grid"},
		{token.KwPushbutton, program.WidgetPushButton, "PushButton"},
		{token.KwMemo, program.WidgetMemo, "Memo"},
		{token.KwText, program.WidgetText, "Text"},
		{token.KwEditfield, program.WidgetEditField, "EditField"},
	}
	for _, tt := range tests {
		w, ok := program.WidgetForKeyword(tt.kw)
		if !ok || w != tt.want || w.String() != tt.name || !w.Valid() {
			t.Errorf("%v -> %v %v", tt.kw, w, ok)
		}
		if len(w.Defaults()) == 0 {
			t.Errorf("%v has no defaults", w)
		}
	}
	if _, ok := program.WidgetForKeyword(token.KwIf); ok {
		t.Error("IF is not a widget")
	}
}

func TestExprString(t *testing.T) {
	a, b, c := program.Ident("a"), program.Ident("b"), program.Ident("c")
	tests := []struct {
		e    program.Expr
		want string
	}{
		{program.Number(1), "1"},
		{program.Number(2.5), "2.5"},
		{program.String("a\tb"), `"a\tb"`},
		{program.Logical(false), ".F."},
		{program.Binary(program.OpAdd, a, program.Binary(program.OpMul, b, c)), "a + b * c"},
		{program.Binary(program.OpMul, program.Binary(program.OpAdd, a, b), c), "(a + b) * c"},
		{program.Binary(program.OpSub, a, program.Binary(program.OpSub, b, c)), "a - (b - c)"},
		{program.Binary(program.OpSub, program.Binary(program.OpSub, a, b), c), "a - b - c"},
		{program.Unary(program.OpNeg, program.Binary(program.OpAdd, a, b)), "-(a + b)"},
		{program.Unary(program.OpNot, program.Binary(program.OpLt, a, b)), "not a < b"},
		{program.Binary(program.OpAnd, program.Binary(program.OpOr, a, b), c), "(a or b) and c"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	good := &program.Unit{
		Name: "ok",
		Body: []program.Stmt{
			{Kind: program.StmtLocal, Local: &program.LocalStmt{Names: []string{"x"}}},
			{Kind: program.StmtReturn},
		},
		Classes: []program.Class{{Name: "F", Base: program.WidgetForm}},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []*program.Unit{
		nil,
		{Body: []program.Stmt{{Kind: program.StmtAssign}}},
		{Body: []program.Stmt{{Kind: program.StmtKind(99)}}},
		{Body: []program.Stmt{{Kind: program.StmtPrint, Print: &program.PrintStmt{
			Args: []program.Expr{{Kind: program.ExprBinary, Op: program.OpAdd}},
		}}}},
		{Classes: []program.Class{{Name: "F"}}},
	}
	for i, u := range bad {
		if err := u.Validate(); !errors.Is(err, program.ErrMalformed) {
			t.Errorf("case %d: got %v, want ErrMalformed", i, err)
		}
	}
}

func TestUnitClassLookup(t *testing.T) {
	u := &program.Unit{Classes: []program.Class{{Name: "Foo", Base: program.WidgetPushButton}}}
	c, ok := u.Class("Foo")
	if !ok || c.Base != program.WidgetPushButton {
		t.Fatalf("got %+v %v", c, ok)
	}
	if _, ok := u.Class("Bar"); ok {
		t.Fatal("Bar must not exist")
	}
}
