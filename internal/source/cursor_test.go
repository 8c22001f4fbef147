package source

import "testing"

func newTestCursor(t *testing.T, text string) *Cursor {
	t.Helper()
	fs := NewFileSet()
	id := fs.AddVirtual("test.prg", []byte(text))
	return NewCursor(fs.Get(id))
}

func TestCursorNextCharFoldsCRLF(t *testing.T) {
	c := newTestCursor(t, "a\r\nb")
	want := []rune{'a', '\n', 'b'}
	for i, w := range want {
		r, ok := c.NextChar()
		if !ok {
			t.Fatalf("char %d: unexpected end of input", i)
		}
		if r != w {
			t.Fatalf("char %d: got %q, want %q", i, r, w)
		}
	}
	if _, ok := c.NextChar(); ok {
		t.Fatalf("expected end of input")
	}
	if pos := c.Pos(); pos.Line != 2 || pos.Col != 2 {
		t.Errorf("expected 2:2 at end, got %d:%d", pos.Line, pos.Col)
	}
}

func TestCursorEndOfInputIsRepeatable(t *testing.T) {
	c := newTestCursor(t, "")
	for range 3 {
		if _, ok := c.NextChar(); ok {
			t.Fatalf("empty buffer must report end of input")
		}
	}
	if !c.EOF() {
		t.Errorf("EOF() = false on empty buffer")
	}
}

func TestCursorRewindWithinLine(t *testing.T) {
	c := newTestCursor(t, "abcdef")
	for range 4 {
		c.NextChar()
	}
	if got := c.Rewind(2); got != 2 {
		t.Fatalf("Rewind(2) moved %d", got)
	}
	r, _ := c.NextChar()
	if r != 'c' {
		t.Errorf("after rewind got %q, want 'c'", r)
	}
	if pos := c.Pos(); pos.Line != 1 || pos.Col != 4 {
		t.Errorf("expected 1:4, got %d:%d", pos.Line, pos.Col)
	}
}

func TestCursorRewindAcrossNewline(t *testing.T) {
	c := newTestCursor(t, "ab\r\ncd\nef")
	for range 6 { // a b \n c d \n
		c.NextChar()
	}
	if pos := c.Pos(); pos.Line != 3 || pos.Col != 1 {
		t.Fatalf("expected 3:1 before rewind, got %d:%d", pos.Line, pos.Col)
	}
	// \n, d, c, \r\n -> lands right after "ab"
	if got := c.Rewind(4); got != 4 {
		t.Fatalf("Rewind(4) moved %d", got)
	}
	pos := c.Pos()
	if pos.Line != 1 || pos.Col != 3 || pos.Off != 2 {
		t.Errorf("expected off=2 at 1:3, got off=%d at %d:%d", pos.Off, pos.Line, pos.Col)
	}
	r, _ := c.NextChar()
	if r != '\n' {
		t.Errorf("expected folded newline after rewind, got %q", r)
	}
}

func TestCursorRewindStopsAtStart(t *testing.T) {
	c := newTestCursor(t, "xy")
	c.NextChar()
	if got := c.Rewind(5); got != 1 {
		t.Errorf("Rewind(5) at offset 1 moved %d, want 1", got)
	}
	if pos := c.Pos(); pos.Off != 0 || pos.Line != 1 || pos.Col != 1 {
		t.Errorf("expected start position, got %+v", pos)
	}
}

func TestCursorUnicodeColumns(t *testing.T) {
	c := newTestCursor(t, "ёж x")
	c.NextChar()
	c.NextChar()
	if pos := c.Pos(); pos.Col != 3 || pos.Off != 4 {
		t.Errorf("expected col 3 off 4, got col %d off %d", pos.Col, pos.Off)
	}
	c.Rewind(1)
	if pos := c.Pos(); pos.Col != 2 || pos.Off != 2 {
		t.Errorf("expected col 2 off 2 after rewind, got col %d off %d", pos.Col, pos.Off)
	}
}

func TestCursorMarkReset(t *testing.T) {
	c := newTestCursor(t, "one\ntwo")
	m := c.Mark()
	for range 5 {
		c.NextChar()
	}
	if got := c.Text(m); got != "one\nt" {
		t.Errorf("Text = %q", got)
	}
	c.Reset(m)
	if pos := c.Pos(); pos != (Pos{Off: 0, Line: 1, Col: 1}) {
		t.Errorf("Reset did not restore start: %+v", pos)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := newTestCursor(t, "*")
	r0, r1 := c.Peek2()
	if r0 != '*' || r1 != 0 {
		t.Errorf("Peek2 = %q %q", r0, r1)
	}
	if !c.Eat('*') || c.Eat('*') {
		t.Errorf("Eat did not consume exactly one '*'")
	}
}
