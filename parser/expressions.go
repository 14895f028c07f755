package parser

import (
	"strconv"

	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/internal/token"
)

// exprOperators combine terms. They all share a single precedence level and
// associate to the left, so `1 < 2 == 3` parses as `((1 < 2) == 3)`.
var exprOperators = map[token.Type]bool{
	token.PLUS:      true,
	token.MINUS:     true,
	token.EQ:        true,
	token.NOT_EQ:    true,
	token.LT:        true,
	token.GT:        true,
	token.LT_EQUALS: true,
	token.GT_EQUALS: true,
}

// termOperators combine factors and bind tighter than exprOperators.
var termOperators = map[token.Type]bool{
	token.ASTERISK: true,
	token.SLASH:    true,
}

// parseExpr parses a sequence of terms joined by additive and comparison
// operators, leaving the current token on the last token of the expression.
func (p *Parser) parseExpr() ast.Expr {
	expr := p.parseTerm()
	if p.err != nil {
		return nil
	}
	for exprOperators[p.peekToken.Type] {
		p.nextToken()
		opPos := p.curToken.StartPosition
		op := p.curToken.Literal
		p.nextToken()
		right := p.parseTerm()
		if p.err != nil {
			return nil
		}
		expr = &ast.Infix{X: expr, OpPos: opPos, Op: op, Y: right}
	}
	return expr
}

// parseTerm parses a sequence of factors joined by multiplicative operators.
func (p *Parser) parseTerm() ast.Expr {
	term := p.parseFactor()
	if p.err != nil {
		return nil
	}
	for termOperators[p.peekToken.Type] {
		p.nextToken()
		opPos := p.curToken.StartPosition
		op := p.curToken.Literal
		p.nextToken()
		right := p.parseFactor()
		if p.err != nil {
			return nil
		}
		term = &ast.Infix{X: term, OpPos: opPos, Op: op, Y: right}
	}
	return term
}

// parseFactor parses an integer literal, an identifier, or a parenthesized
// expression.
func (p *Parser) parseFactor() ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.setTokenError(p.curToken, "maximum nesting depth exceeded")
		return nil
	}
	switch p.curToken.Type {
	case token.INT:
		return p.parseInt()
	case token.IDENT:
		return p.newIdent()
	case token.LPAREN:
		p.nextToken()
		expr := p.parseExpr()
		if p.err != nil {
			return nil
		}
		if !p.expectPeek("a grouped expression", token.RPAREN) {
			return nil
		}
		return expr
	default:
		p.setTokenError(p.curToken,
			"unexpected %s while parsing an expression (expected an integer, an identifier, or %q)",
			tokenDescription(p.curToken), "(")
		return nil
	}
}

// parseInt parses an integer literal from the current token.
func (p *Parser) parseInt() ast.Expr {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.setTokenError(p.curToken, "could not parse %q as an integer", p.curToken.Literal)
		return nil
	}
	return &ast.Int{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    value,
	}
}
