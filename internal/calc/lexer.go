package calc

import "fmt"

// TokenType identifies a lexical token of an arithmetic expression.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPower
	TokenFloorDiv
)

// Token is a lexical token with its source offset.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Lexer splits an expression into tokens.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token, or an error for a character outside the grammar.
func (l *Lexer) NextToken() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]
	switch {
	case isDigit(ch) || ch == '.':
		return l.readNumber()
	case ch == '+':
		l.pos++
		return Token{Type: TokenPlus, Value: "+", Pos: start}, nil
	case ch == '-':
		l.pos++
		return Token{Type: TokenMinus, Value: "-", Pos: start}, nil
	case ch == '*':
		if l.peek(1) == '*' {
			l.pos += 2
			return Token{Type: TokenPower, Value: "**", Pos: start}, nil
		}
		l.pos++
		return Token{Type: TokenStar, Value: "*", Pos: start}, nil
	case ch == '/':
		if l.peek(1) == '/' {
			l.pos += 2
			return Token{Type: TokenFloorDiv, Value: "//", Pos: start}, nil
		}
		l.pos++
		return Token{Type: TokenSlash, Value: "/", Pos: start}, nil
	default:
		return Token{}, fmt.Errorf("%w: unexpected character %q at %d", ErrInvalidExpression, ch, start)
	}
}

func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	digits := 0
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
		digits++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
			digits++
		}
	}
	if digits == 0 {
		return Token{}, fmt.Errorf("%w: lone '.' at %d", ErrInvalidExpression, start)
	}
	return Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: start}, nil
}

func (l *Lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenStar:
		return "'*'"
	case TokenSlash:
		return "'/'"
	case TokenPower:
		return "'**'"
	case TokenFloorDiv:
		return "'//'"
	default:
		return "unknown"
	}
}
