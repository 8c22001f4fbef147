package parser

import (
	"strings"

	"xbase/internal/diag"
	"xbase/internal/program"
	"xbase/internal/token"
)

func (p *Parser) parseIf() error {
	kw, _ := p.next()
	cond, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.IfCount++
	p.ctx.push(block{kind: blockIf, opener: kw})
	return p.gen.BeginIf(cond, kw.Line)
}

func (p *Parser) parseElse() error {
	kw, _ := p.next()
	b, err := p.closing(kw, blockIf, diag.BlkElseWithoutIf)
	if err != nil {
		return err
	}
	if b.hasElse {
		return p.errAt(diag.BlkDuplicateElse, kw, "second ELSE for IF on line %d", b.opener.Line)
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	b.hasElse = true
	return p.gen.Else()
}

func (p *Parser) parseEndif() error {
	kw, _ := p.next()
	if _, err := p.closing(kw, blockIf, diag.BlkEndifWithoutIf); err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.EndifCount++
	p.ctx.pop()
	return p.gen.EndIf()
}

// FOR i = a TO b [STEP s]
func (p *Parser) parseFor() error {
	kw, _ := p.next()
	v, err := p.expectIdent("loop variable")
	if err != nil {
		return err
	}
	op, err := p.next()
	if err != nil {
		return err
	}
	if op.Kind != token.Eq && op.Kind != token.ColonAssign {
		return p.unexpected(op, diag.SynUnexpectedToken, "'=' after FOR "+v.Text)
	}
	from, err := p.parseExpr()
	if err != nil {
		return err
	}
	if _, err := p.expect(token.KwTo, diag.SynExpectKeyword, "TO"); err != nil {
		return err
	}
	to, err := p.parseExpr()
	if err != nil {
		return err
	}
	var step *program.Expr
	hasStep, err := p.eat(token.KwStep)
	if err != nil {
		return err
	}
	if hasStep {
		s, err := p.parseExpr()
		if err != nil {
			return err
		}
		step = &s
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.ForDepth++
	p.ctx.push(block{kind: blockFor, opener: kw, forVar: v.Text})
	return p.gen.BeginFor(v.Text, from, to, step, kw.Line)
}

// NEXT [ident] / ENDFOR
func (p *Parser) parseNext() error {
	kw, _ := p.next()
	b, err := p.closing(kw, blockFor, diag.BlkNextWithoutFor)
	if err != nil {
		return err
	}
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Kind == token.Ident {
		p.next() //nolint:errcheck
		if !sameName(tok.Text, b.forVar) {
			p.warn(diag.SynNextVarMismatch, tok, "NEXT %s closes FOR %s", tok.Text, b.forVar)
		}
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.ForDepth--
	p.ctx.pop()
	return p.gen.EndFor()
}

// DO WHILE expr
func (p *Parser) parseDoWhile() error {
	kw, _ := p.next()
	if _, err := p.expect(token.KwWhile, diag.SynExpectKeyword, "WHILE after DO"); err != nil {
		return err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.DoDepth++
	p.ctx.push(block{kind: blockDo, opener: kw})
	return p.gen.BeginWhile(cond, kw.Line)
}

func (p *Parser) parseEnddo() error {
	kw, _ := p.next()
	if _, err := p.closing(kw, blockDo, diag.BlkEnddoWithoutDo); err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.DoDepth--
	p.ctx.pop()
	return p.gen.EndWhile()
}

// CLASS name OF <widget> ( )
func (p *Parser) parseClass() error {
	kw, _ := p.next()
	if b, ok := p.ctx.top(); ok {
		return p.errAt(diag.SynNestedClass, kw, "CLASS is not allowed inside %s (line %d)", b.kind, b.opener.Line)
	}
	name, err := p.expectIdent("class")
	if err != nil {
		return err
	}
	if _, err := p.expect(token.KwOf, diag.SynExpectKeyword, "OF after CLASS "+name.Text); err != nil {
		return err
	}
	baseTok, err := p.next()
	if err != nil {
		return err
	}
	base, ok := program.WidgetForKeyword(baseTok.Kind)
	if !ok {
		return p.unexpected(baseTok, diag.SynExpectKeyword,
			"FORM, CONTAINER, GRID, PUSHBUTTON, MEMO, TEXT or EDITFIELD")
	}
	open, err := p.eat(token.LParen)
	if err != nil {
		return err
	}
	if open {
		p.ctx.OpenParen()
		closeTok, err := p.next()
		if err != nil {
			return err
		}
		if closeTok.Kind != token.RParen {
			return p.errAt(diag.SynUnclosedParen, closeTok, "expected ')' after CLASS %s OF %s (", name.Text, baseTok.Text)
		}
		p.ctx.CloseParen()
	}
	// пустой класс в одну строку: CLASS Foo OF PUSHBUTTON ( ) ENDCLASS
	oneLine, err := p.eat(token.KwEndclass)
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	if err := p.gen.BeginClass(name.Text, base, kw.Line); err != nil {
		return err
	}
	if oneLine {
		return p.gen.EndClass()
	}
	p.ctx.push(block{kind: blockClass, opener: kw})
	return nil
}

// THIS.<prop> = expr
func (p *Parser) parseClassProp() error {
	kw, _ := p.next()
	if !p.ctx.inClass() {
		return p.errAt(diag.SynUnexpectedToken, kw, "THIS outside CLASS")
	}
	if _, err := p.expect(token.Dot, diag.SynUnexpectedToken, "'.' after THIS"); err != nil {
		return err
	}
	prop, err := p.next()
	if err != nil {
		return err
	}
	// имя свойства может совпадать с ключевым словом: THIS.Text
	if prop.Kind != token.Ident && !prop.IsKeyword() {
		return p.unexpected(prop, diag.SynExpectIdentifier, "property name")
	}
	op, err := p.next()
	if err != nil {
		return err
	}
	if op.Kind != token.Eq && op.Kind != token.ColonAssign {
		return p.unexpected(op, diag.SynUnexpectedToken, "'=' after THIS."+prop.Text)
	}
	value, err := p.parseExpr()
	if err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	return p.gen.ClassProp(strings.ToLower(prop.Text), value, kw.Line)
}

func (p *Parser) parseEndclass() error {
	kw, _ := p.next()
	if _, err := p.closing(kw, blockClass, diag.BlkEndclassWithoutOpen); err != nil {
		return err
	}
	if err := p.expectEnd(); err != nil {
		return err
	}
	p.ctx.pop()
	return p.gen.EndClass()
}

// closing проверяет, что kw закрывает самый внутренний открытый блок вида k.
func (p *Parser) closing(kw token.Token, k blockKind, code diag.Code) (*block, error) {
	top, ok := p.ctx.top()
	if ok && top.kind == k {
		return top, nil
	}
	if _, open := p.ctx.innermost(k); open && ok {
		return nil, p.errAt(code, kw, "%s while %s from line %d is still open", strings.ToUpper(kw.Text), top.kind, top.opener.Line)
	}
	return nil, p.errAt(code, kw, "%s without %s", strings.ToUpper(kw.Text), k)
}
