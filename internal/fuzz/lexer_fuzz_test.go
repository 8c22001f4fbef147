package fuzztests

import (
	"errors"
	"testing"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/source"
	"xbase/internal/testkit"
	"xbase/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		for _, d := range []dialect.Kind{dialect.Primary, dialect.Structured, dialect.List} {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.prg", input))
			lx, err := lexer.New(file, d)
			if err != nil {
				t.Fatal(err)
			}
			var toks []token.Token
			// каждый токен продвигает курсор, поэтому токенов не больше, чем байт
			for n := 0; ; n++ {
				if n > len(input)+1 {
					t.Fatalf("%s: lexer does not advance", d)
				}
				tok, err := lx.Next()
				if err != nil {
					var de *diag.Error
					if !errors.As(err, &de) || de.Line == 0 {
						t.Fatalf("%s: unpositioned error %v", d, err)
					}
					break
				}
				toks = append(toks, tok)
				if tok.Kind == token.EOF {
					break
				}
			}
			if err := testkit.CheckTokenSpans(toks, file); err != nil {
				t.Fatalf("%s: %v", d, err)
			}
		}
	})
}
