// Package parser is used to generate the abstract syntax tree (AST) for a
// program, given its source code or a token stream produced by the lexer.
package parser

import (
	"context"
	"fmt"

	"github.com/Lefpe/compilador/ast"
	"github.com/Lefpe/compilador/internal/lexer"
	"github.com/Lefpe/compilador/internal/token"
)

// DefaultMaxDepth is the default limit on statement and expression nesting.
const DefaultMaxDepth = 500

// Option is a function that configures the parser.
type Option func(*Parser)

// WithFilename sets the filename attached to any parser errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithSource supplies the original source text, which the parser uses to
// include the offending line in error messages.
func WithSource(input string) Option {
	return func(p *Parser) {
		p.source = []rune(input)
	}
}

// WithMaxDepth overrides the limit on statement and expression nesting.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parse tokenizes and parses the given source code and returns the AST.
func Parse(ctx context.Context, input string, options ...Option) (*ast.Program, error) {
	filename := ""
	probe := &Parser{}
	for _, opt := range options {
		opt(probe)
	}
	if probe.filename != "" {
		filename = probe.filename
	}
	var lexerOpts []lexer.Option
	if filename != "" {
		lexerOpts = append(lexerOpts, lexer.WithFile(filename))
	}
	tokens, err := lexer.Tokenize(input, lexerOpts...)
	if err != nil {
		return nil, err
	}
	options = append(options, WithSource(input))
	return New(tokens, options...).Parse(ctx)
}

// Parser transforms a stream of tokens into an abstract syntax tree. It
// consumes the token slice with a single token of lookahead and stops at the
// first error it encounters.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	err ParserError

	filename string
	source   []rune

	depth    int
	maxDepth int
}

// New returns a parser for the given tokens, which should end with an EOF
// token as produced by lexer.Tokenize.
func New(tokens []token.Token, options ...Option) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF}}
	}
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken reads the next token from the stream. Once the stream is
// exhausted the EOF token repeats indefinitely.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	}
}

// Parse the entire token stream and return the resulting program. On error,
// no partial program is returned.
func (p *Parser) Parse(ctx context.Context) (*ast.Program, error) {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil, p.err
		}
		program.Stmts = append(program.Stmts, stmt)
		p.nextToken()
	}
	return program, nil
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek advances to the next token if it is of the expected type.
// Otherwise it records a syntax error describing what was expected while
// parsing the given context.
func (p *Parser) expectPeek(context string, t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(context, t)
	return false
}

// peekError records a syntax error at the peek token.
func (p *Parser) peekError(context string, expected token.Type) {
	p.setTokenError(p.peekToken, "unexpected %s while parsing %s (expected %s)",
		tokenDescription(p.peekToken), context, tokenTypeDescription(expected))
}

// setTokenError records a syntax error at the given token, unless an error
// has already been recorded.
func (p *Parser) setTokenError(tok token.Token, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = NewSyntaxError(ErrorOpts{
		Message:       fmt.Sprintf(format, args...),
		File:          p.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.lineText(tok),
	})
}

// lineText returns the text of the source line containing the given token.
func (p *Parser) lineText(tok token.Token) string {
	if len(p.source) == 0 {
		return ""
	}
	start := tok.StartPosition.LineStart
	if start < 0 || start >= len(p.source) {
		return ""
	}
	end := start
	for end < len(p.source) && p.source[end] != '\n' {
		end++
	}
	return string(p.source[start:end])
}

// newIdent returns an identifier node for the current token.
func (p *Parser) newIdent() *ast.Ident {
	return &ast.Ident{NamePos: p.curToken.StartPosition, Name: p.curToken.Literal}
}

// parseStatement dispatches on the current token. A single token of
// lookahead distinguishes an assignment from an expression statement
// beginning with an identifier.
func (p *Parser) parseStatement() ast.Node {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		p.setTokenError(p.curToken, "maximum nesting depth exceeded")
		return nil
	}
	switch {
	case p.curTokenIs(token.IF):
		return p.parseIfStatement()
	case p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN):
		return p.parseAssignment()
	default:
		return p.parseExprStatement()
	}
}

// parseAssignment parses `name = expr ;` with the current token on the name.
// It leaves the current token on the terminating semicolon.
func (p *Parser) parseAssignment() ast.Node {
	name := p.newIdent()
	p.nextToken() // the "=" token
	opPos := p.curToken.StartPosition
	p.nextToken()
	value := p.parseExpr()
	if p.err != nil {
		return nil
	}
	if !p.expectPeek("an assignment statement", token.SEMICOLON) {
		return nil
	}
	return &ast.Assign{Name: name, OpPos: opPos, Value: value}
}

// parseExprStatement parses a bare expression terminated by a semicolon. The
// expression node itself represents the statement.
func (p *Parser) parseExprStatement() ast.Node {
	expr := p.parseExpr()
	if p.err != nil {
		return nil
	}
	if !p.expectPeek("an expression statement", token.SEMICOLON) {
		return nil
	}
	return expr
}

// parseIfStatement parses `if (cond) branch [else branch]` where each branch
// is either a braced block or a single statement.
func (p *Parser) parseIfStatement() ast.Node {
	ifPos := p.curToken.StartPosition
	if !p.expectPeek("an if statement", token.LPAREN) {
		return nil
	}
	lparen := p.curToken.StartPosition
	p.nextToken()
	cond := p.parseExpr()
	if p.err != nil {
		return nil
	}
	if !p.expectPeek("an if statement", token.RPAREN) {
		return nil
	}
	rparen := p.curToken.StartPosition
	p.nextToken()
	consequence := p.parseBlockOrStmt()
	if p.err != nil {
		return nil
	}
	stmt := &ast.If{
		If:          ifPos,
		Lparen:      lparen,
		Cond:        cond,
		Rparen:      rparen,
		Consequence: consequence,
	}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // the "else" token
		p.nextToken()
		stmt.Alternative = p.parseBlockOrStmt()
		if p.err != nil {
			return nil
		}
	}
	return stmt
}

// parseBlockOrStmt parses either a braced block or a single statement,
// leaving the current token on the last token consumed.
func (p *Parser) parseBlockOrStmt() ast.Node {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlock()
	}
	return p.parseStatement()
}

// parseBlock parses a brace-delimited sequence of statements with the
// current token on "{". It leaves the current token on the closing "}".
func (p *Parser) parseBlock() ast.Node {
	block := &ast.Block{Lbrace: p.curToken.StartPosition}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.setTokenError(p.curToken, "unterminated block statement")
			return nil
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return nil
		}
		block.Stmts = append(block.Stmts, stmt)
		p.nextToken()
	}
	block.Rbrace = p.curToken.StartPosition
	return block
}
