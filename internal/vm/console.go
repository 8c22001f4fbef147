package vm

import "xbase/internal/program"

// Console is the runtime namespace a script runs against: the only way a
// program reaches the outside world.
type Console interface {
	// Say prints text at a 0-based screen position.
	Say(row, col int, text string)
	// Print prints text at the current position.
	Print(text string)
	// SetColor selects the colours of subsequent output.
	SetColor(colors program.ColorPair)
}
