package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/token"
)

func writeScript(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeStructuredDialect(t *testing.T) {
	path := writeScript(t, t.TempDir(), "p.pas", "begin { note } x := 1 end\n")
	res, err := Tokenize(path, dialect.Structured)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	for _, tok := range res.Tokens {
		if tok.Text == "note" {
			t.Errorf("comment leaked into token stream")
		}
	}
}

func TestTokenizeReportsLexError(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.prg", "? \"open\n")
	res, err := Tokenize(path, dialect.Primary)
	if !errors.Is(err, diag.ErrSyntax) {
		t.Fatalf("err = %v", err)
	}
	if res == nil || !res.Bag.HasErrors() {
		t.Error("lexer error not in bag")
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "none.prg"), dialect.Primary); err == nil {
		t.Fatal("expected load error")
	}
}

func TestTranslate(t *testing.T) {
	path := writeScript(t, t.TempDir(), "hello.prg", "LOCAL x\nLOCAL x\n? \"hi\"\n")
	res, err := Translate(context.Background(), path, dialect.Primary, TranslateOptions{EnableTimings: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Program.Unit().Name != "hello" {
		t.Errorf("unit name = %q", res.Program.Unit().Name)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.SynLocalRedeclared {
		t.Errorf("warnings = %+v", res.Bag.Items())
	}
	if len(res.Timing.Phases) != 2 {
		t.Errorf("timing phases = %+v", res.Timing.Phases)
	}
}

func TestTranslateErrorGoesToBag(t *testing.T) {
	path := writeScript(t, t.TempDir(), "bad.prg", "IF .T.\n? 1\n")
	res, err := Translate(context.Background(), path, dialect.Primary, TranslateOptions{})
	if !errors.Is(err, diag.ErrStructural) {
		t.Fatalf("err = %v", err)
	}
	if res.Program != nil {
		t.Error("partial program must be dropped")
	}
	if !res.Bag.HasErrors() {
		t.Error("error not recorded")
	}
}

func TestTranslateSource(t *testing.T) {
	res, err := TranslateSource(context.Background(), "mem.prg", []byte("? 1\n"), dialect.Primary, TranslateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Program.Listing(); got != "proc main()\n    println(1)\nend\n" {
		t.Errorf("listing = %q", got)
	}
}

func TestCheckFilesIndependentContexts(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeScript(t, dir, "a.prg", "IF .T.\n? 1\nENDIF\n"),
		writeScript(t, dir, "b.prg", "ENDIF\n"),
		writeScript(t, dir, "c.prg", "FOR i = 1 TO 2\n? i\nNEXT\n"),
		filepath.Join(dir, "missing.prg"),
	}
	results, err := CheckFiles(context.Background(), paths, 2, TranslateOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true, false}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d path = %s", i, r.Path)
		}
		if r.OK() != want[i] {
			t.Errorf("%s: ok = %v, err = %v", filepath.Base(r.Path), r.OK(), r.Err)
		}
	}
	if results[0].Result.Context.IfCount != 1 || results[2].Result.Context.IfCount != 0 {
		t.Error("contexts were shared between files")
	}
	if results[3].Result != nil {
		t.Error("missing file must have no result")
	}
}

func TestCheckFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeScript(t, t.TempDir(), "a.prg", "? 1\n")
	if _, err := CheckFiles(ctx, []string{path}, 1, TranslateOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}
