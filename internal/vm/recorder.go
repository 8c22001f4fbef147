package vm

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"xbase/internal/program"
)

// CallKind names a recorded console call.
type CallKind string

const (
	CallSay   CallKind = "say"
	CallPrint CallKind = "print"
	CallColor CallKind = "color"
)

// Call is one recorded console call.
type Call struct {
	Kind   CallKind
	Row    int
	Col    int
	Text   string
	Colors program.ColorPair
}

// Recorder is an in-memory Console for tests and headless runs. Besides the
// call log it keeps a virtual screen where wide characters take two columns.
type Recorder struct {
	Calls  []Call
	out    strings.Builder
	screen [][]rune
	row    int
	col    int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Say implements Console.
func (r *Recorder) Say(row, col int, text string) {
	r.Calls = append(r.Calls, Call{Kind: CallSay, Row: row, Col: col, Text: text})
	r.row, r.col = row, col
	r.put(text)
}

// Print implements Console.
func (r *Recorder) Print(text string) {
	r.Calls = append(r.Calls, Call{Kind: CallPrint, Text: text})
	r.out.WriteString(text)
	r.put(text)
}

// SetColor implements Console.
func (r *Recorder) SetColor(colors program.ColorPair) {
	r.Calls = append(r.Calls, Call{Kind: CallColor, Colors: colors})
}

// Output returns everything passed to Print, in order.
func (r *Recorder) Output() string { return r.out.String() }

// Screen returns the virtual screen, trailing blanks trimmed.
func (r *Recorder) Screen() []string {
	out := make([]string, len(r.screen))
	for i, line := range r.screen {
		var sb strings.Builder
		for _, ch := range line {
			if ch != 0 {
				sb.WriteRune(ch)
			}
		}
		out[i] = strings.TrimRight(sb.String(), " ")
	}
	return out
}

func (r *Recorder) put(text string) {
	for _, ch := range text {
		if ch == '\n' {
			r.row++
			r.col = 0
			r.grow()
			continue
		}
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.grow()
		line := r.screen[r.row]
		for len(line) < r.col+w {
			line = append(line, ' ')
		}
		line[r.col] = ch
		// второй столбец широкого символа остаётся пустым
		for i := 1; i < w; i++ {
			line[r.col+i] = 0
		}
		r.screen[r.row] = line
		r.col += w
	}
}

func (r *Recorder) grow() {
	for len(r.screen) <= r.row {
		r.screen = append(r.screen, nil)
	}
}
