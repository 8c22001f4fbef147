package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"xbase/internal/diag"
	"xbase/internal/source"
	"xbase/internal/token"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/work/src/a.prg", []byte("? 1\nx = 日本 + 1\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "bad operand",
		Primary:  source.Span{File: id, Start: 8, End: 14},
	})
	return bag, fs
}

func TestPrettyCaretUsesScreenWidth(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1})
	want := strings.Join([]string{
		"a.prg:2:5: ERROR " + diag.SynUnexpectedToken.ID() + ": bad operand",
		"1 | ? 1",
		"2 | x = 日本 + 1",
		"  |     ^~~~",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("no escape sequences in %q", buf.String())
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.SynLocalRedeclared, Message: "again"})
	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), PrettyOpts{})
	if got, want := buf.String(), "WARNING "+diag.SynLocalRedeclared.ID()+": again\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		line       string
		start, end source.LineCol
		lead       int
		mark       string
	}{
		{"abc", source.LineCol{Line: 1, Col: 2}, source.LineCol{Line: 1, Col: 2}, 1, "^"},
		{"abcdef", source.LineCol{Line: 1, Col: 1}, source.LineCol{Line: 1, Col: 4}, 0, "^~~"},
		// span through the next line stops at the end of this one
		{"abc", source.LineCol{Line: 1, Col: 2}, source.LineCol{Line: 3, Col: 1}, 1, "^~"},
	}
	for _, tt := range tests {
		lead, mark := underline(tt.line, tt.start, tt.end)
		if lead != tt.lead || mark != tt.mark {
			t.Errorf("underline(%q) = %d %q, want %d %q", tt.line, lead, mark, tt.lead, tt.mark)
		}
	}
}

func TestJSON(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	want := DiagnosticsOutput{Count: 1, Diagnostics: []DiagnosticJSON{{
		Severity: "ERROR",
		Code:     diag.SynUnexpectedToken.ID(),
		Title:    diag.SynUnexpectedToken.Title(),
		Message:  "bad operand",
		Location: LocationJSON{
			File: "/work/src/a.prg", StartByte: 8, EndByte: 14,
			StartLine: 2, StartCol: 5, EndLine: 2, EndCol: 7,
		},
	}}}
	if diff := deep.Equal(out, want); diff != nil {
		t.Error(diff)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("/work/src/a.prg", PathModeRelative, "/work"); got != "src/a.prg" {
		t.Errorf("relative = %q", got)
	}
	if got := displayPath("src/a.prg", PathModeAuto, ""); got != "src/a.prg" {
		t.Errorf("auto = %q", got)
	}
}

func TestFormatTokens(t *testing.T) {
	toks := []token.Token{
		{Kind: token.String, Text: `"a\tb"`, Value: "a\tb", Line: 1, Col: 3},
		{Kind: token.EOF, Line: 2, Col: 1},
	}
	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], `= "a\tb"`) || !strings.Contains(lines[1], "EOF") {
		t.Errorf("pretty:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Value != "a\tb" || out[1].Kind != "EOF" {
		t.Errorf("json = %+v", out)
	}
}
