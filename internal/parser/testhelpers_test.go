package parser_test

import (
	"testing"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/parser"
	"xbase/internal/source"
)

// parseSrc разбирает src в основном диалекте; предупреждения попадают в bag.
func parseSrc(t *testing.T, src string) (parser.Result, *diag.Bag, error) {
	t.Helper()
	return parseDialect(t, dialect.Primary, src)
}

func parseDialect(t *testing.T, d dialect.Kind, src string) (parser.Result, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.prg", []byte(src)))
	lx, err := lexer.New(file, d)
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	bag := diag.NewBag(0)
	res, err := parser.Parse(lx, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return res, bag, err
}

func mustParse(t *testing.T, src string) parser.Result {
	t.Helper()
	res, _, err := parseSrc(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Program == nil {
		t.Fatal("no program")
	}
	return res
}

func errCode(err error) diag.Code {
	if de, ok := err.(*diag.Error); ok {
		return de.Code
	}
	return 0
}
