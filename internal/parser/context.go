package parser

import (
	"strings"

	"xbase/internal/program"
	"xbase/internal/token"
)

type blockKind uint8

const (
	blockIf blockKind = iota + 1
	blockFor
	blockDo
	blockClass
)

func (k blockKind) String() string {
	switch k {
	case blockIf:
		return "IF"
	case blockFor:
		return "FOR"
	case blockDo:
		return "DO WHILE"
	case blockClass:
		return "CLASS"
	}
	return "block"
}

// block — открытая конструкция. opener нужен для сообщений об ошибках.
type block struct {
	kind    blockKind
	opener  token.Token
	forVar  string
	hasElse bool
}

// Context is the mutable state threaded through one parse.
// A Context belongs to exactly one parse and is never shared.
type Context struct {
	Indent     int // listing depth, never below 1
	Parens     int // open '(' in the current expression, never negative
	ForDepth   int
	DoDepth    int
	IfCount    int
	EndifCount int
	Colors     program.ColorPair
	Failed     bool

	blocks   []block
	locals   map[string]struct{}
	seenStmt bool
	params   bool
}

// NewContext returns the state at the start of a script.
func NewContext() *Context {
	return &Context{
		Indent: 1,
		Colors: program.DefaultColors(),
		locals: make(map[string]struct{}),
	}
}

// OpenParen records a '('.
func (c *Context) OpenParen() { c.Parens++ }

// CloseParen records a ')'. It reports false, leaving the count at zero, on underflow.
func (c *Context) CloseParen() bool {
	if c.Parens == 0 {
		return false
	}
	c.Parens--
	return true
}

// Balanced reports whether every IF has its ENDIF.
func (c *Context) Balanced() bool { return c.IfCount == c.EndifCount }

// OpenBlocks returns the number of unclosed constructs.
func (c *Context) OpenBlocks() int { return len(c.blocks) }

func (c *Context) push(b block) {
	c.blocks = append(c.blocks, b)
}

func (c *Context) top() (*block, bool) {
	if len(c.blocks) == 0 {
		return nil, false
	}
	return &c.blocks[len(c.blocks)-1], true
}

func (c *Context) pop() block {
	b := c.blocks[len(c.blocks)-1]
	c.blocks = c.blocks[:len(c.blocks)-1]
	return b
}

// innermost returns the nearest open block of kind k.
func (c *Context) innermost(k blockKind) (*block, bool) {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].kind == k {
			return &c.blocks[i], true
		}
	}
	return nil, false
}

func (c *Context) inClass() bool {
	b, ok := c.top()
	return ok && b.kind == blockClass
}

func (c *Context) setIndent(depth int) {
	if depth < 1 {
		depth = 1
	}
	c.Indent = depth
}

// declare returns false if name was already declared.
func (c *Context) declare(name string) bool {
	key := strings.ToUpper(name)
	if _, ok := c.locals[key]; ok {
		return false
	}
	c.locals[key] = struct{}{}
	return true
}
