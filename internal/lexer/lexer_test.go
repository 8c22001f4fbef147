package lexer_test

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/source"
	"xbase/internal/token"
)

// tk: упрощённый токен для сравнения без спанов
type tk struct {
	Kind  token.Kind
	Text  string
	Value string
	Line  uint32
}

func makeTestLexer(t *testing.T, d dialect.Kind, input string) *lexer.Lexer {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.prg", []byte(input)))
	lx, err := lexer.New(file, d)
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	return lx
}

// collect собирает токены до EOF (EOF не включается) или до первой ошибки.
func collect(t *testing.T, lx *lexer.Lexer) ([]tk, error) {
	t.Helper()
	var out []tk
	for i := 0; i < 10000; i++ {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		if tok.Kind == token.EOF {
			return out, nil
		}
		out = append(out, tk{Kind: tok.Kind, Text: tok.Text, Value: tok.Value, Line: tok.Line})
	}
	t.Fatal("lexer did not reach EOF")
	return nil, nil
}

func TestPrimaryStatement(t *testing.T) {
	lx := makeTestLexer(t, dialect.Primary, "x = 1 + 2.5\n")
	got, err := collect(t, lx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.Ident, Text: "x", Line: 1},
		{Kind: token.Eq, Text: "=", Line: 1},
		{Kind: token.Number, Text: "1", Line: 1},
		{Kind: token.Plus, Text: "+", Line: 1},
		{Kind: token.Number, Text: "2.5", Line: 1},
		{Kind: token.Newline, Text: "\n", Line: 1},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestPrimaryCommentsAreSkipped(t *testing.T) {
	src := "** header\n" +
		"x = 1 && trailing\n" +
		"// slash\n" +
		"/* block\n spanning */ y = 2\n"
	got, err := collect(t, makeTestLexer(t, dialect.Primary, src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.Newline, Text: "\n", Line: 1},
		{Kind: token.Ident, Text: "x", Line: 2},
		{Kind: token.Eq, Text: "=", Line: 2},
		{Kind: token.Number, Text: "1", Line: 2},
		{Kind: token.Newline, Text: "\n", Line: 2},
		{Kind: token.Newline, Text: "\n", Line: 3},
		{Kind: token.Ident, Text: "y", Line: 5},
		{Kind: token.Eq, Text: "=", Line: 5},
		{Kind: token.Number, Text: "2", Line: 5},
		{Kind: token.Newline, Text: "\n", Line: 5},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestStructuredBlockCommentMultiline(t *testing.T) {
	// (* ... *) через три строки: ни одного токена, позиция за комментарием
	src := "(* one\ntwo\nthree *) begin\n"
	lx := makeTestLexer(t, dialect.Structured, src)
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != token.Keyword || tok.Text != "begin" || tok.Line != 3 || tok.Col != 10 {
		t.Fatalf("got %v %q at %d:%d, want keyword begin at 3:10", tok.Kind, tok.Text, tok.Line, tok.Col)
	}
	if tok, _ = lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("got %v, want EOF", tok.Kind)
	}
}

func TestStructuredBraceComment(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.Structured, "{ note } x := 'a'"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.Ident, Text: "x", Line: 1},
		{Kind: token.ColonAssign, Text: ":=", Line: 1},
		{Kind: token.String, Text: "'a'", Value: "a", Line: 1},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestListSemicolonComment(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.List, "; comment\n(defun f)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.LParen, Text: "(", Line: 2},
		{Kind: token.Keyword, Text: "defun", Line: 2},
		{Kind: token.Ident, Text: "f", Line: 2},
		{Kind: token.RParen, Text: ")", Line: 2},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestListKeywordsAreCaseSensitive(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.List, "defun DEFUN"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Kind != token.Keyword || got[1].Kind != token.Ident {
		t.Fatalf("got %+v", got)
	}
}

func TestForeignComments(t *testing.T) {
	tests := []struct {
		name string
		d    dialect.Kind
		src  string
	}{
		{"paren-star in primary", dialect.Primary, "x = 1 (* no *)\n"},
		{"brace in primary", dialect.Primary, "{ no }\n"},
		{"semicolon in primary", dialect.Primary, "; no\n"},
		{"starstar in structured", dialect.Structured, "** no"},
		{"ampamp in structured", dialect.Structured, "x && y"},
		{"slashstar in structured", dialect.Structured, "/* no */"},
		{"slashslash in list", dialect.List, "// no"},
		{"brace in list", dialect.List, "{ no }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, makeTestLexer(t, tt.d, tt.src))
			if !errors.Is(err, diag.ErrSyntax) {
				t.Fatalf("got %v, want syntax error", err)
			}
			var de *diag.Error
			if !errors.As(err, &de) || de.Code != diag.LexForeignComment {
				t.Fatalf("got %v, want LexForeignComment", err)
			}
		})
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, err := collect(t, makeTestLexer(t, dialect.Primary, "x = 1\n/* never closed\n"))
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("got %v, want LexUnterminatedBlockComment", err)
	}
	if de.Line != 2 {
		t.Errorf("line = %d, want 2", de.Line)
	}
}

func TestKeywordsFoldCase(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.Primary, "if Endif ENDFOR parameters"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := make([]token.Kind, 0, len(got))
	for _, g := range got {
		kinds = append(kinds, g.Kind)
	}
	want := []token.Kind{token.KwIf, token.KwEndif, token.KwNext, token.KwParameter}
	if diff := deep.Equal(kinds, want); diff != nil {
		t.Error(diff)
	}
}

func TestDotWords(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.Primary, ".T. .f. .Y. .N. .AND. .or. .Not. .5 .x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.Logical, Text: ".T.", Value: "T", Line: 1},
		{Kind: token.Logical, Text: ".f.", Value: "F", Line: 1},
		{Kind: token.Logical, Text: ".Y.", Value: "T", Line: 1},
		{Kind: token.Logical, Text: ".N.", Value: "F", Line: 1},
		{Kind: token.And, Text: ".AND.", Line: 1},
		{Kind: token.Or, Text: ".or.", Line: 1},
		{Kind: token.Not, Text: ".Not.", Line: 1},
		{Kind: token.Number, Text: ".5", Line: 1},
		{Kind: token.Dot, Text: ".", Line: 1},
		{Kind: token.Ident, Text: "x", Line: 1},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestOperators(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.Primary, "== <> # != <= >= < > ?? ? @ , ( )"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{
		token.EqEq, token.NotEq, token.NotEq, token.NotEq, token.LtEq, token.GtEq,
		token.Lt, token.Gt, token.QuestionQuestion, token.Question, token.At,
		token.Comma, token.LParen, token.RParen,
	}
	kinds := make([]token.Kind, 0, len(got))
	for _, g := range got {
		kinds = append(kinds, g.Kind)
	}
	if diff := deep.Equal(kinds, want); diff != nil {
		t.Error(diff)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`"a\tb"`, "a\tb"},
		{`"x\\y"`, `x\y`},
		{`"l1\nl2\r"`, "l1\nl2\r"},
		{`"bell\a"`, "bell\a"},
		{`'it\'s'`, "it's"},
		{`"say \"hi\""`, `say "hi"`},
		{`'plain'`, "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			lx := makeTestLexer(t, dialect.Primary, tt.src)
			tok, err := lx.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != token.String || tok.Value != tt.want {
				t.Fatalf("got %v %q, want string %q", tok.Kind, tok.Value, tt.want)
			}
			if tok.Text != tt.src {
				t.Errorf("text = %q, want %q", tok.Text, tt.src)
			}
		})
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"unterminated", `? "unterminated` + "\n", diag.LexUnterminatedString},
		{"unterminated at eof", `? "open`, diag.LexUnterminatedString},
		{"escape at end of line", "? \"abc\\\n\"", diag.LexBadEscape},
		{"escape before space", `? "a\ b"`, diag.LexBadEscape},
		{"unknown escape", `? "a\qb"`, diag.LexBadEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, makeTestLexer(t, dialect.Primary, tt.src))
			var de *diag.Error
			if !errors.As(err, &de) || de.Code != tt.code {
				t.Fatalf("got %v, want %v", err, tt.code)
			}
			if !errors.Is(err, diag.ErrSyntax) {
				t.Errorf("%v does not match ErrSyntax", err)
			}
			if de.Line != 1 {
				t.Errorf("line = %d, want 1", de.Line)
			}
		})
	}
}

func TestStructuredHasNoEscapes(t *testing.T) {
	tok, err := makeTestLexer(t, dialect.Structured, `'a\tb'`).Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Value != `a\tb` {
		t.Fatalf("value = %q", tok.Value)
	}
}

func TestBadNumber(t *testing.T) {
	_, err := collect(t, makeTestLexer(t, dialect.Primary, "x = 12ab\n"))
	var de *diag.Error
	if !errors.As(err, &de) || de.Code != diag.LexBadNumber {
		t.Fatalf("got %v, want LexBadNumber", err)
	}
}

func TestTrailingDotNumber(t *testing.T) {
	tests := []struct {
		src  string
		want []tk
	}{
		{"x = 1.\n", []tk{
			{Kind: token.Ident, Text: "x", Line: 1},
			{Kind: token.Eq, Text: "=", Line: 1},
			{Kind: token.Number, Text: "1.", Line: 1},
			{Kind: token.Newline, Text: "\n", Line: 1},
		}},
		{"1.+2", []tk{
			{Kind: token.Number, Text: "1.", Line: 1},
			{Kind: token.Plus, Text: "+", Line: 1},
			{Kind: token.Number, Text: "2", Line: 1},
		}},
		{"1.AND.x", []tk{
			{Kind: token.Number, Text: "1", Line: 1},
			{Kind: token.And, Text: ".AND.", Line: 1},
			{Kind: token.Ident, Text: "x", Line: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := collect(t, makeTestLexer(t, dialect.Primary, tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := deep.Equal(got, tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := makeTestLexer(t, dialect.Primary, "a b")
	p1, _ := lx.Peek()
	p2, _ := lx.Peek()
	n1, _ := lx.Next()
	n2, _ := lx.Next()
	if p1.Text != "a" || p2.Text != "a" || n1.Text != "a" || n2.Text != "b" {
		t.Fatalf("peek/next mismatch: %q %q %q %q", p1.Text, p2.Text, n1.Text, n2.Text)
	}
}

func TestEOFIsRepeatable(t *testing.T) {
	lx := makeTestLexer(t, dialect.Primary, "")
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("call %d: got %v %v, want EOF", i, tok.Kind, err)
		}
	}
}

func TestUnknownDialect(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.prg", nil))
	if _, err := lexer.New(file, dialect.Unknown); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestCRLFInput(t *testing.T) {
	got, err := collect(t, makeTestLexer(t, dialect.Primary, "a\r\nb\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []tk{
		{Kind: token.Ident, Text: "a", Line: 1},
		{Kind: token.Newline, Text: "\r\n", Line: 1},
		{Kind: token.Ident, Text: "b", Line: 2},
		{Kind: token.Newline, Text: "\r\n", Line: 2},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}
