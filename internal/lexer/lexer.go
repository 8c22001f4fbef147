package lexer

import (
	"fmt"

	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/source"
	"xbase/internal/token"
)

// Lexer is the lexical skipper: it discards whitespace and the active dialect's comments
// and returns significant tokens one at a time.
type Lexer struct {
	file  *source.File
	cur   *source.Cursor
	kind  dialect.Kind
	rules dialect.Rules
	forms []dialect.CommentForm
	look  *lookahead // 1 элементный буфер для токена
}

type lookahead struct {
	tok token.Token
	err error
}

// New creates a lexer over file for dialect d.
func New(file *source.File, d dialect.Kind) (*Lexer, error) {
	rules, ok := dialect.RulesFor(d)
	if !ok {
		return nil, fmt.Errorf("lexer: unsupported dialect %v", d)
	}
	return &Lexer{
		file:  file,
		cur:   source.NewCursor(file),
		kind:  d,
		rules: rules,
		forms: rules.Forms(),
	}, nil
}

// Dialect returns the dialect the lexer scans.
func (lx *Lexer) Dialect() dialect.Kind { return lx.kind }

// File returns the scanned file.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий **значимый** токен.
// После EOF всегда возвращает EOF. An error is always a *diag.Error.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		la := *lx.look
		lx.look = nil
		return la.tok, la.err
	}
	return lx.scan()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look == nil {
		tok, err := lx.scan()
		lx.look = &lookahead{tok: tok, err: err}
	}
	return lx.look.tok, lx.look.err
}

func (lx *Lexer) scan() (token.Token, error) {
	if err := lx.skipTrivia(); err != nil {
		return lx.invalid(), err
	}

	start := lx.cur.Mark()
	ch, ok := lx.cur.NextChar()
	if !ok {
		return lx.make(token.EOF, start), nil
	}

	next, _ := lx.cur.PeekChar()
	switch {
	case ch == '\n':
		// сюда попадаем только если перевод строки значим в диалекте
		return lx.make(token.Newline, start), nil
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword(start), nil
	case isDec(ch), ch == '.' && isDec(next):
		return lx.scanNumber(start)
	case ch == '.' && lx.rules.DotWords:
		return lx.scanDotWord(start), nil
	case lx.rules.IsQuote(ch):
		return lx.scanString(start, ch)
	case ch == utf8RuneError:
		return lx.invalid(), lx.errAt(diag.LexUnknownChar, start, "invalid UTF-8 sequence")
	default:
		return lx.scanOperator(start, ch), nil
	}
}

func (lx *Lexer) make(kind token.Kind, start source.Mark) token.Token {
	return token.Token{
		Kind: kind,
		Text: lx.cur.Text(start),
		Line: start.Line,
		Col:  start.Col,
		Span: lx.cur.SpanFrom(start),
	}
}

func (lx *Lexer) invalid() token.Token {
	pos := lx.cur.Pos()
	return token.Token{
		Kind: token.Invalid,
		Line: pos.Line,
		Col:  pos.Col,
		Span: source.Span{File: lx.file.ID, Start: pos.Off, End: pos.Off},
	}
}

// errAt builds a positioned error for the text scanned since start.
func (lx *Lexer) errAt(code diag.Code, start source.Mark, format string, args ...any) *diag.Error {
	e := diag.NewError(code, lx.cur.SpanFrom(start), source.Pos(start), format, args...)
	e.File = lx.file.Path
	return e
}
