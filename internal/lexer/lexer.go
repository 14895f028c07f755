// Package lexer converts source code text into a stream of tokens.
package lexer

import (
	"github.com/Lefpe/compilador/errz"
	"github.com/Lefpe/compilador/internal/token"
)

// Lexer scans an input string and produces tokens one at a time.
type Lexer struct {
	// input being lexed, as runes
	input []rune

	// index of the current rune
	position int

	// index of the next rune to read
	readPosition int

	// current rune under examination; 0 at end of input
	ch rune

	// 0-indexed line number of the current rune
	line int

	// index in input where the current line starts
	lineStart int

	// 0-indexed column number of the current rune
	column int

	// optional filename used in token positions
	file string
}

// Option is a function that configures a Lexer.
type Option func(*Lexer)

// WithFile sets the filename recorded in token positions.
func WithFile(file string) Option {
	return func(l *Lexer) {
		l.file = file
	}
}

// New returns a Lexer for the given input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: []rune(input), line: 0, column: -1}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Tokenize scans the entire input and returns the token sequence, ending
// with the EOF token. The first invalid character aborts the scan.
func Tokenize(input string, opts ...Option) ([]token.Token, error) {
	l := New(input, opts...)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token in the input. After the input is exhausted,
// it returns an EOF token on every call.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()

	start := l.currentPosition()

	switch l.ch {
	case rune(0):
		return l.newToken(token.EOF, "", start), nil
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.EQ, "==", start), nil
		}
		l.readChar()
		return l.newToken(token.ASSIGN, "=", start), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.NOT_EQ, "!=", start), nil
		}
		return token.Token{}, l.unexpectedChar(start)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.LT_EQUALS, "<=", start), nil
		}
		l.readChar()
		return l.newToken(token.LT, "<", start), nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.GT_EQUALS, ">=", start), nil
		}
		l.readChar()
		return l.newToken(token.GT, ">", start), nil
	case '+':
		l.readChar()
		return l.newToken(token.PLUS, "+", start), nil
	case '-':
		l.readChar()
		return l.newToken(token.MINUS, "-", start), nil
	case '*':
		l.readChar()
		return l.newToken(token.ASTERISK, "*", start), nil
	case '/':
		l.readChar()
		return l.newToken(token.SLASH, "/", start), nil
	case '(':
		l.readChar()
		return l.newToken(token.LPAREN, "(", start), nil
	case ')':
		l.readChar()
		return l.newToken(token.RPAREN, ")", start), nil
	case '{':
		l.readChar()
		return l.newToken(token.LBRACE, "{", start), nil
	case '}':
		l.readChar()
		return l.newToken(token.RBRACE, "}", start), nil
	case ';':
		l.readChar()
		return l.newToken(token.SEMICOLON, ";", start), nil
	}

	if isLetter(l.ch) {
		literal := l.readIdentifier()
		return l.newToken(token.LookupIdentifier(literal), literal, start), nil
	}
	if isDigit(l.ch) {
		literal := l.readNumber()
		return l.newToken(token.INT, literal, start), nil
	}
	return token.Token{}, l.unexpectedChar(start)
}

// GetLineText returns the text of the line on which the given token appears.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start >= len(l.input) {
		return ""
	}
	end := start
	for end < len(l.input) && l.input[end] != '\n' {
		end++
	}
	return string(l.input[start:end])
}

// currentPosition returns the Position of the current rune.
func (l *Lexer) currentPosition() token.Position {
	return token.Position{
		Char:      l.position,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.column,
		File:      l.file,
	}
}

// newToken builds a token spanning from start to the current scan position.
func (l *Lexer) newToken(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   start.Advance(len(literal)),
	}
}

// unexpectedChar builds the lex error for a rune outside the alphabet.
// Scanning never skips input: the first bad rune aborts the scan.
func (l *Lexer) unexpectedChar(pos token.Position) error {
	return errz.NewStructuredErrorf(errz.ErrLex, errz.SourceLocation{
		Filename: l.file,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   l.GetLineText(token.Token{StartPosition: pos}),
	}, "unexpected character: %q", l.ch)
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.readPosition
		l.column = -1
	}
	if l.readPosition >= len(l.input) {
		l.ch = rune(0)
		l.position = l.readPosition
		return
	}
	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.column++
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return rune(0)
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

func isLetter(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
