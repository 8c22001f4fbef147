// Package diagfmt renders diagnostics and token streams for the command line.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"xbase/internal/diag"
	"xbase/internal/source"
)

type palette struct {
	err, warn, info, code, caret, gutter *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items():
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | строка исходника
//	     |     ^~~~
//
// Колонка подчёркивания считается по ширине символов на экране.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeOne(w, d, fs, opts, pal)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	var f *source.File
	if fs != nil {
		f = fs.Get(d.Primary.File)
	}
	sev := pal.severity(d.Severity).Sprint(d.Severity.String())
	code := pal.code.Sprint(d.Code.ID())
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return
	}

	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(f.Path, opts.PathMode, opts.BaseDir), start.Line, start.Col, sev, code, d.Message)

	gutterWidth := len(fmt.Sprint(start.Line))
	for n := max(int(start.Line)-opts.Context, 1); n < int(start.Line); n++ {
		writeSourceLine(w, pal, gutterWidth, n, f.GetLine(uint32(n)))
	}
	line := f.GetLine(start.Line)
	writeSourceLine(w, pal, gutterWidth, int(start.Line), line)

	lead, mark := underline(line, start, end)
	fmt.Fprintf(w, "%s %s %s%s\n",
		strings.Repeat(" ", gutterWidth), pal.gutter.Sprint("|"), strings.Repeat(" ", lead), pal.caret.Sprint(mark))
}

func writeSourceLine(w io.Writer, pal palette, gutterWidth, n int, text string) {
	fmt.Fprintf(w, "%*d %s %s\n", gutterWidth, n, pal.gutter.Sprint("|"), strings.ReplaceAll(text, "\t", " "))
}

// underline returns the screen offset of the span start and its ^~~~ marker.
// A span that runs past the line is cut at the line end.
func underline(line string, start, end source.LineCol) (int, string) {
	runes := []rune(line)
	from := min(int(start.Col)-1, len(runes))
	to := len(runes)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(runes))
	}
	to = max(to, from)

	lead := runewidth.StringWidth(strings.ReplaceAll(string(runes[:from]), "\t", " "))
	width := runewidth.StringWidth(string(runes[from:to]))
	if width <= 1 {
		return lead, "^"
	}
	return lead, "^" + strings.Repeat("~", width-1)
}
