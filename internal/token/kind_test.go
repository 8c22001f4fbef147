package token

import "testing"

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := Invalid; k < kwLast; k++ {
		if k == kwFirst {
			continue
		}
		if k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if kwLast.String() != "Kind(?)" {
		t.Errorf("sentinel must not have a name")
	}
}

func TestIsKeyword(t *testing.T) {
	cases := map[Kind]bool{
		KwParameter: true,
		KwEditfield: true,
		Keyword:     true,
		Ident:       false,
		Plus:        false,
		kwFirst:     false,
		kwLast:      false,
	}
	for k, want := range cases {
		if got := k.IsKeyword(); got != want {
			t.Errorf("%v.IsKeyword() = %v, want %v", k, got, want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(Token{Kind: Newline}).IsEnd() || !(Token{Kind: EOF}).IsEnd() {
		t.Errorf("Newline and EOF must end a statement")
	}
	if (Token{Kind: Ident}).IsEnd() {
		t.Errorf("Ident must not end a statement")
	}
	if !(Token{Kind: Logical}).IsLiteral() || (Token{Kind: Ident}).IsLiteral() {
		t.Errorf("IsLiteral misclassifies")
	}
}
