package parser

import (
	"strconv"

	"xbase/internal/diag"
	"xbase/internal/program"
	"xbase/internal/token"
)

// Приоритеты, от слабого к сильному:
//
//	.OR.  <  .AND.  <  .NOT.  <  = == <> # != < <= > >=  <  + -  <  * /  <  унарные +/-
func (p *Parser) parseExpr() (program.Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (program.Expr, error) {
	return p.parseLeftAssoc(p.parseAnd, map[token.Kind]program.Op{token.Or: program.OpOr})
}

func (p *Parser) parseAnd() (program.Expr, error) {
	return p.parseLeftAssoc(p.parseNot, map[token.Kind]program.Op{token.And: program.OpAnd})
}

func (p *Parser) parseNot() (program.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return program.Expr{}, err
	}
	if tok.Kind != token.Not {
		return p.parseCompare()
	}
	p.next() //nolint:errcheck
	x, err := p.parseNot()
	if err != nil {
		return program.Expr{}, err
	}
	e := program.Unary(program.OpNot, x)
	e.Line = tok.Line
	return e, nil
}

var compareOps = map[token.Kind]program.Op{
	token.Eq:    program.OpEq,
	token.EqEq:  program.OpExactEq,
	token.NotEq: program.OpNe,
	token.Lt:    program.OpLt,
	token.LtEq:  program.OpLe,
	token.Gt:    program.OpGt,
	token.GtEq:  program.OpGe,
}

func (p *Parser) parseCompare() (program.Expr, error) {
	return p.parseLeftAssoc(p.parseAdditive, compareOps)
}

var additiveOps = map[token.Kind]program.Op{token.Plus: program.OpAdd, token.Minus: program.OpSub}

func (p *Parser) parseAdditive() (program.Expr, error) {
	return p.parseLeftAssoc(p.parseMul, additiveOps)
}

var mulOps = map[token.Kind]program.Op{token.Star: program.OpMul, token.Slash: program.OpDiv}

func (p *Parser) parseMul() (program.Expr, error) {
	return p.parseLeftAssoc(p.parseUnary, mulOps)
}

func (p *Parser) parseLeftAssoc(operand func() (program.Expr, error), ops map[token.Kind]program.Op) (program.Expr, error) {
	left, err := operand()
	if err != nil {
		return program.Expr{}, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return program.Expr{}, err
		}
		op, ok := ops[tok.Kind]
		if !ok {
			return left, nil
		}
		p.next() //nolint:errcheck
		right, err := operand()
		if err != nil {
			return program.Expr{}, err
		}
		left = combine(op, left, right, tok.Line)
	}
}

// combine строит бинарный узел; "a" + "b" склеивается сразу.
func combine(op program.Op, x, y program.Expr, line uint32) program.Expr {
	if op == program.OpAdd && x.Kind == program.ExprString && y.Kind == program.ExprString {
		e := program.String(x.Str + y.Str)
		e.Line = line
		return e
	}
	e := program.Binary(op, x, y)
	e.Line = line
	return e
}

func (p *Parser) parseUnary() (program.Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return program.Expr{}, err
	}
	var op program.Op
	switch tok.Kind {
	case token.Minus:
		op = program.OpNeg
	case token.Plus:
		op = program.OpPos
	default:
		return p.parsePrimary()
	}
	p.next() //nolint:errcheck
	x, err := p.parseUnary()
	if err != nil {
		return program.Expr{}, err
	}
	e := program.Unary(op, x)
	e.Line = tok.Line
	return e, nil
}

func (p *Parser) parsePrimary() (program.Expr, error) {
	tok, err := p.next()
	if err != nil {
		return program.Expr{}, err
	}
	var e program.Expr
	switch tok.Kind {
	case token.Number:
		v, perr := strconv.ParseFloat(tok.Text, 64)
		if perr != nil {
			return program.Expr{}, p.errAt(diag.LexBadNumber, tok, "malformed number %q", tok.Text)
		}
		e = program.Number(v)
	case token.String:
		e = program.String(tok.Value)
	case token.Logical:
		e = program.Logical(tok.Value == "T")
	case token.Ident:
		if p.at(token.LParen) {
			return program.Expr{}, p.errAt(diag.SynUnsupportedCall, tok, "function calls are not supported: %s(", tok.Text)
		}
		e = program.Ident(tok.Text)
	case token.LParen:
		return p.parseParen(tok)
	default:
		if tok.IsKeyword() {
			return program.Expr{}, p.errAt(diag.SynKeywordAsIdent, tok, "reserved word %s inside an expression", tok.Text)
		}
		return program.Expr{}, p.unexpected(tok, diag.SynExpectExpression, "an expression")
	}
	e.Line = tok.Line
	return e, nil
}

func (p *Parser) parseParen(open token.Token) (program.Expr, error) {
	p.ctx.OpenParen()
	inner, err := p.parseExpr()
	if err != nil {
		return program.Expr{}, err
	}
	tok, err := p.next()
	if err != nil {
		return program.Expr{}, err
	}
	if tok.Kind != token.RParen {
		return program.Expr{}, p.errAt(diag.SynUnclosedParen, open,
			"'(' on line %d column %d is not closed before %s", open.Line, open.Col, describe(tok))
	}
	p.ctx.CloseParen()
	return inner, nil
}
