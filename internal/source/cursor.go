package source

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Cursor — позиция чтения внутри одного File с учётом строк и колонок.
// A cursor belongs to exactly one scan; two cursors must never share a scan over the same buffer.
type Cursor struct {
	file  *File
	off   uint32
	limit uint32
	line  uint32
	col   uint32
}

// Mark is a saved cursor position that Reset can return to.
type Mark Pos

// NewCursor creates a cursor positioned at the first character of f.
func NewCursor(f *File) *Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return &Cursor{file: f, limit: limit, line: 1, col: 1}
}

// File returns the file the cursor reads.
func (c *Cursor) File() *File { return c.file }

// EOF reports whether every character has been consumed.
func (c *Cursor) EOF() bool { return c.off >= c.limit }

// Pos returns the current offset, line and column.
func (c *Cursor) Pos() Pos {
	return Pos{Off: c.off, Line: c.line, Col: c.col}
}

// charAt decodes the character at off. A CRLF pair is reported as a single '\n' of width 2.
func (c *Cursor) charAt(off uint32) (r rune, width uint32) {
	if off >= c.limit {
		return utf8.RuneError, 0
	}
	content := c.file.Content
	b := content[off]
	if b == '\r' && off+1 < c.limit && content[off+1] == '\n' {
		return '\n', 2
	}
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(content[off:c.limit])
	return r, uint32(sz) // #nosec G115 -- sz is at most utf8.UTFMax
}

// NextChar returns the next character and advances. The second result is false at end of input;
// that is the normal way a scan terminates, not a failure.
func (c *Cursor) NextChar() (rune, bool) {
	r, w := c.charAt(c.off)
	if w == 0 {
		return 0, false
	}
	c.off += w
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r, true
}

// PeekChar returns the next character without consuming it.
func (c *Cursor) PeekChar() (rune, bool) {
	r, w := c.charAt(c.off)
	return r, w != 0
}

// Peek2 returns the next two characters without consuming them; missing characters are 0.
func (c *Cursor) Peek2() (r0, r1 rune) {
	r0, w := c.charAt(c.off)
	if w == 0 {
		return 0, 0
	}
	r1, w1 := c.charAt(c.off + w)
	if w1 == 0 {
		r1 = 0
	}
	return r0, r1
}

// Eat consumes the next character if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if next, ok := c.PeekChar(); ok && next == r {
		c.NextChar()
		return true
	}
	return false
}

// Rewind moves the cursor back n characters and returns how many it actually moved.
// Line and column are recomputed from the line index, so rewinding across a newline is exact.
func (c *Cursor) Rewind(n int) int {
	moved := 0
	content := c.file.Content
	for moved < n && c.off > 0 {
		_, sz := utf8.DecodeLastRune(content[:c.off])
		w := uint32(sz) // #nosec G115 -- sz is at most utf8.UTFMax
		if content[c.off-1] == '\n' && c.off >= 2 && content[c.off-2] == '\r' {
			w = 2
		}
		c.off -= w
		moved++
	}
	if moved > 0 {
		lc := c.file.LineCol(c.off)
		c.line, c.col = lc.Line, lc.Col
	}
	return moved
}

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.Pos())
}

// Reset возвращает курсор назад к метке.
func (c *Cursor) Reset(m Mark) {
	c.off, c.line, c.col = m.Off, m.Line, m.Col
}

// SpanFrom returns the span from m up to the current position.
func (c *Cursor) SpanFrom(m Mark) Span {
	return Span{File: c.file.ID, Start: m.Off, End: c.off}
}

// Text returns the raw source text between m and the current position.
func (c *Cursor) Text(m Mark) string {
	return string(c.file.Content[m.Off:c.off])
}
