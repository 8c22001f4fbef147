package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"xbase/internal/source"
	"xbase/internal/token"
)

// CheckTokenSpans runs a minimal set of span invariants on a token stream:
// 1) every span points into sf and stays within content bounds
// 2) spans are ordered and never overlap
// 3) Text is the exact source slice and Line/Col resolve from the span start
func CheckTokenSpans(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token[%d] %s: span points to different file id: got=%d want=%d", i, tok.Kind, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token[%d] %s: span out of bounds: %v (len=%d)", i, tok.Kind, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token[%d] %s: span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		prevEnd = sp.End

		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token[%d] %s: text %q does not match source %q", i, tok.Kind, tok.Text, got)
		}
		lc := sf.LineCol(sp.Start)
		if lc.Line != tok.Line || lc.Col != tok.Col {
			return fmt.Errorf("token[%d] %s: position %d:%d, span resolves to %d:%d", i, tok.Kind, tok.Line, tok.Col, lc.Line, lc.Col)
		}
	}
	return nil
}
