package parser

import (
	"strings"

	"xbase/internal/diag"
	"xbase/internal/program"
	"xbase/internal/token"
)

func (p *Parser) parseStatement() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}

	// внутри CLASS допустимы только THIS.<prop> = <expr> и ENDCLASS
	if p.ctx.inClass() && tok.Kind != token.KwThis && tok.Kind != token.KwEndclass {
		return p.errAt(diag.SynUnexpectedToken, tok,
			"expected THIS.<property> = <expr> or ENDCLASS inside CLASS, got %s", describe(tok))
	}
	if tok.Kind == token.KwParameter {
		return p.parseParameters()
	}
	p.ctx.seenStmt = true

	switch tok.Kind {
	case token.KwLocal:
		return p.parseLocal()
	case token.Ident:
		return p.parseAssign()
	case token.KwIf:
		return p.parseIf()
	case token.KwElse:
		return p.parseElse()
	case token.KwEndif:
		return p.parseEndif()
	case token.KwFor:
		return p.parseFor()
	case token.KwNext:
		return p.parseNext()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwEnddo:
		return p.parseEnddo()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwSet:
		return p.parseSetColor()
	case token.KwClass:
		return p.parseClass()
	case token.KwThis:
		return p.parseClassProp()
	case token.KwEndclass:
		return p.parseEndclass()
	case token.At:
		return p.parseSay()
	case token.Question, token.QuestionQuestion:
		return p.parsePrint()
	}

	if tok.IsKeyword() {
		p.next() //nolint:errcheck
		if p.at(token.Eq) || p.at(token.ColonAssign) {
			return p.errAt(diag.SynKeywordAsIdent, tok, "reserved word %s cannot be assigned", tok.Text)
		}
		return p.errAt(diag.SynUnexpectedToken, tok, "%s cannot start a statement", describe(tok))
	}
	return p.unexpected(tok, diag.SynUnexpectedToken, "a statement")
}

// PARAMETER[S] a, b, c — только первым оператором и только один раз.
func (p *Parser) parseParameters() error {
	kw, _ := p.next()
	if p.ctx.params {
		return p.errAt(diag.SynParameterPosition, kw, "PARAMETER declared twice")
	}
	if p.ctx.seenStmt {
		return p.errAt(diag.SynParameterPosition, kw, "PARAMETER must precede every other statement")
	}
	names, err := p.parseIdentList("parameter")
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.params = true
	p.ctx.seenStmt = true
	for _, n := range names {
		p.ctx.declare(n.Text)
	}
	return p.gen.SetParams(texts(names))
}

func (p *Parser) parseLocal() error {
	kw, _ := p.next()
	names, err := p.parseIdentList("variable")
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	for _, n := range names {
		if !p.ctx.declare(n.Text) {
			p.warn(diag.SynLocalRedeclared, n, "%s is already declared", n.Text)
		}
	}
	return p.gen.Local(texts(names), kw.Line)
}

// parseIdentList: ident (, ident)*; зарезервированные слова запрещены.
func (p *Parser) parseIdentList(role string) ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := p.expectIdent(role)
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		more, err := p.eat(token.Comma)
		if err != nil {
			return nil, err
		}
		if !more {
			return out, nil
		}
	}
}

func (p *Parser) expectIdent(role string) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if tok.IsKeyword() {
		return tok, p.errAt(diag.SynKeywordAsIdent, tok, "reserved word %s cannot be used as a %s name", tok.Text, role)
	}
	if tok.Kind != token.Ident {
		return tok, p.unexpected(tok, diag.SynExpectIdentifier, role+" name")
	}
	return tok, nil
}

func (p *Parser) parseAssign() error {
	name, _ := p.next()
	op, err := p.next()
	if err != nil {
		return err
	}
	switch op.Kind {
	case token.Eq, token.ColonAssign:
	case token.LParen:
		return p.errAt(diag.SynUnsupportedCall, name, "procedure calls are not supported: %s(", name.Text)
	default:
		return p.unexpected(op, diag.SynUnexpectedToken, "'=' after "+name.Text)
	}
	value, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	return p.gen.Assign(name.Text, value, name.Line)
}

func (p *Parser) parseReturn() error {
	kw, _ := p.next()
	if err := p.expectEnd(); err != nil {
		return err
	}
	return p.gen.Return(kw.Line)
}

// SET COLOR TO [fg[+][/bg[+]]]; пустой список сбрасывает в W/N.
func (p *Parser) parseSetColor() error {
	kw, _ := p.next()
	if _, err := p.expect(token.KwColor, diag.SynExpectKeyword, "COLOR after SET"); err != nil {
		return err
	}
	if _, err := p.expect(token.KwTo, diag.SynExpectKeyword, "TO after SET COLOR"); err != nil {
		return err
	}

	tok, err := p.peek()
	if err != nil {
		return err
	}
	colors := p.ctx.Colors
	if tok.IsEnd() {
		colors = program.DefaultColors()
	} else {
		fg, err := p.parseColor()
		if err != nil {
			return err
		}
		colors.FG = fg
		slash, err := p.eat(token.Slash)
		if err != nil {
			return err
		}
		if slash {
			bg, err := p.parseColor()
			if err != nil {
				return err
			}
			colors.BG = bg
		}
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.Colors = colors
	return p.gen.SetColor(colors, kw.Line)
}

func (p *Parser) parseColor() (program.Color, error) {
	tok, err := p.next()
	if err != nil {
		return program.Color{}, err
	}
	if tok.Kind != token.Ident {
		return program.Color{}, p.unexpected(tok, diag.SynUnknownColor, "a colour name")
	}
	c, ok := program.LookupColor(tok.Text)
	if !ok {
		return program.Color{}, p.errAt(diag.SynUnknownColor, tok, "unknown colour %q", tok.Text)
	}
	bright, err := p.eat(token.Plus)
	if err != nil {
		return program.Color{}, err
	}
	if bright {
		c.Bright = true
	}
	return c, nil
}

// @ row, col SAY expr
func (p *Parser) parseSay() error {
	at, _ := p.next()
	row, err := p.parseExpr()
	if err != nil {
		return err
	}
	if _, err := p.expect(token.Comma, diag.SynUnexpectedToken, "',' between row and column"); err != nil {
		return err
	}
	col, err := p.parseExpr()
	if err != nil {
		return err
	}
	if _, err := p.expect(token.KwSay, diag.SynExpectKeyword, "SAY"); err != nil {
		return err
	}
	value, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	return p.gen.Say(row, col, value, at.Line)
}

// ? [expr, ...] печатает с переводом строки, ?? без.
func (p *Parser) parsePrint() error {
	op, _ := p.next()
	var args []program.Expr
	tok, err := p.peek()
	if err != nil {
		return err
	}
	for !tok.IsEnd() {
		e, err := p.parseExpr()
		if err != nil {
			return err
		}
		args = append(args, e)
		more, err := p.eat(token.Comma)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	return p.gen.Print(args, op.Kind == token.Question, op.Line)
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func sameName(a, b string) bool { return strings.EqualFold(a, b) }
