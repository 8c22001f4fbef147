package vm

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"xbase/internal/program"
)

// Terminal writes to a terminal: ANSI colours and cursor positioning.
// Without ANSI, Say prints the text on a line of its own and colours are dropped.
type Terminal struct {
	w      io.Writer
	ansi   bool
	colors program.ColorPair
	paint  *color.Color
}

// NewTerminal creates a console over w.
func NewTerminal(w io.Writer, ansi bool) *Terminal {
	t := &Terminal{w: w, ansi: ansi}
	t.SetColor(program.DefaultColors())
	return t
}

func fgAttr(c program.Color) color.Attribute {
	if c.Bright {
		return color.FgHiBlack + color.Attribute(c.Base)
	}
	return color.FgBlack + color.Attribute(c.Base)
}

func bgAttr(c program.Color) color.Attribute {
	if c.Bright {
		return color.BgHiBlack + color.Attribute(c.Base)
	}
	return color.BgBlack + color.Attribute(c.Base)
}

// SetColor implements Console.
func (t *Terminal) SetColor(colors program.ColorPair) {
	t.colors = colors
	t.paint = color.New(fgAttr(colors.FG), bgAttr(colors.BG))
	if t.ansi {
		t.paint.EnableColor()
	} else {
		t.paint.DisableColor()
	}
}

// Colors returns the current selection.
func (t *Terminal) Colors() program.ColorPair { return t.colors }

// Say implements Console.
func (t *Terminal) Say(row, col int, text string) {
	if !t.ansi {
		fmt.Fprintln(t.w, text)
		return
	}
	fmt.Fprintf(t.w, "\x1b[%d;%dH", row+1, col+1)
	t.paint.Fprint(t.w, text)
}

// Print implements Console.
func (t *Terminal) Print(text string) {
	if text == "" {
		return
	}
	if !t.ansi {
		fmt.Fprint(t.w, text)
		return
	}
	t.paint.Fprint(t.w, text)
}
