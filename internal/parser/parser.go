package parser

import (
	"errors"
	"fmt"

	"xbase/internal/codegen"
	"xbase/internal/diag"
	"xbase/internal/dialect"
	"xbase/internal/lexer"
	"xbase/internal/source"
	"xbase/internal/token"
)

// Options for a single parse.
type Options struct {
	// Name of the generated unit; defaults to the file's base name.
	Name string
	// Reporter receives warnings. Errors are returned, not reported.
	Reporter diag.Reporter
	// Context lets a caller inspect the final state; a fresh one is made if nil.
	Context *Context
}

// Result of a successful parse.
type Result struct {
	Program *codegen.Program
	Context *Context
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	ctx  *Context
	gen  *codegen.Generator
	rep  diag.Reporter
	last token.Token // последний съеденный токен
}

// Parse translates a primary-dialect script read from lx.
// On error the partial program is dropped and the returned error is a *diag.Error.
func Parse(lx *lexer.Lexer, opts Options) (Result, error) {
	file := lx.File()
	if lx.Dialect() != dialect.Primary {
		e := diag.NewError(diag.SynUnsupportedDialect, source.Span{File: file.ID},
			source.Pos{Line: 1, Col: 1}, "no statement parser for dialect %s", lx.Dialect())
		e.File = file.Path
		return Result{}, e
	}
	name := opts.Name
	if name == "" {
		name = source.BaseName(file.Path)
	}
	rep := opts.Reporter
	if rep == nil {
		rep = diag.NopReporter{}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = NewContext()
	}

	p := &Parser{lx: lx, file: file, ctx: ctx, gen: codegen.New(name), rep: rep}
	prog, err := p.parseFile()
	if err != nil {
		ctx.Failed = true
		return Result{Context: ctx}, err
	}
	return Result{Program: prog, Context: ctx}, nil
}

func (p *Parser) parseFile() (*codegen.Program, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.EOF:
			return p.finish(tok)
		case token.Newline:
			p.next() //nolint:errcheck // ошибка уже видна через peek
			continue
		}
		if err := p.parseStatement(); err != nil {
			return nil, p.asDiag(err)
		}
		p.ctx.setIndent(p.gen.Depth())
	}
}

func (p *Parser) finish(eof token.Token) (*codegen.Program, error) {
	if b, ok := p.ctx.top(); ok {
		return nil, p.errAt(diag.BlkUnclosed, b.opener, "%s opened on line %d is not closed", b.kind, b.opener.Line)
	}
	if !p.ctx.Balanced() {
		return nil, p.errAt(diag.BlkIfCountMismatch, eof, "%d IF but %d ENDIF", p.ctx.IfCount, p.ctx.EndifCount)
	}
	prog, err := p.gen.Finish()
	if err != nil {
		return nil, p.errAt(diag.BlkUnclosed, eof, "%v", err)
	}
	return prog, nil
}

// ===== Токены =====

func (p *Parser) peek() (token.Token, error) {
	return p.lx.Peek()
}

func (p *Parser) next() (token.Token, error) {
	tok, err := p.lx.Next()
	if err == nil {
		p.last = tok
	}
	return tok, err
}

func (p *Parser) at(k token.Kind) bool {
	tok, err := p.peek()
	return err == nil && tok.Kind == k
}

// eat съедает токен вида k, если он следующий.
func (p *Parser) eat(k token.Kind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind != k {
		return false, nil
	}
	_, err = p.next()
	return err == nil, err
}

// expect съедает токен вида k или возвращает ошибку с кодом code.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != k {
		return tok, p.unexpected(tok, code, what)
	}
	return tok, nil
}

// expectEnd требует конец оператора: перевод строки или конец файла.
func (p *Parser) expectEnd() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.IsEnd() {
		return nil
	}
	return p.unexpected(tok, diag.SynExpectEndOfLine, "end of line")
}

// unexpected builds the error for tok where want was expected.
// A stray ')' is always a parenthesis underflow.
func (p *Parser) unexpected(tok token.Token, code diag.Code, want string) *diag.Error {
	if tok.Kind == token.RParen && p.ctx.Parens == 0 {
		return p.errAt(diag.SynParenUnderflow, tok, "')' without matching '('")
	}
	return p.errAt(code, tok, "expected %s, got %s", want, describe(tok))
}

func (p *Parser) errAt(code diag.Code, tok token.Token, format string, args ...any) *diag.Error {
	pos := source.Pos{Off: tok.Span.Start, Line: tok.Line, Col: tok.Col}
	e := diag.NewError(code, tok.Span, pos, format, args...)
	e.File = p.file.Path
	return e
}

// asDiag keeps *diag.Error as is and positions anything else at the last token.
func (p *Parser) asDiag(err error) error {
	var de *diag.Error
	if errors.As(err, &de) {
		return err
	}
	return p.errAt(diag.SynUnexpectedToken, p.last, "%v", err)
}

func (p *Parser) warn(code diag.Code, tok token.Token, format string, args ...any) {
	p.rep.Report(code, diag.SevWarning, tok.Span, fmt.Sprintf(format, args...))
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Newline:
		return "end of line"
	}
	if tok.IsKeyword() {
		return "reserved word " + tok.Text
	}
	return fmt.Sprintf("%q", tok.Text)
}
