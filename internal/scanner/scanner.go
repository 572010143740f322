package scanner

import (
	"fmt"
	"strconv"
)

// Scanner turns a complete source string into a token sequence in a single
// pass. It borrows the source without copying and is not reusable for a
// second input. Lexical errors are collected rather than stopping the scan,
// so one pass surfaces every diagnostic.
type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset of the lexeme start
	Length   int      // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanSource tokenizes source and returns the produced tokens together with
// any lexical errors found along the way.
func ScanSource(source string) ([]Token, []ScanError) {
	s := NewScanner(source)
	tokens := s.ScanTokens()
	return tokens, s.errors
}

// ScanTokens scans the whole source. The returned sequence always ends with
// a single EOF token carrying an empty lexeme and the last consumed line.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

// Errors returns the lexical errors collected during the scan.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case '*':
		s.addToken(STAR)

	// Operators with potential two-character variants
	case '!':
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL)
		} else {
			s.addToken(BANG)
		}
	case '=':
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL)
		}
	case '<':
		if s.matchNext('=') {
			s.addToken(LESS_EQUAL)
		} else {
			s.addToken(LESS)
		}
	case '>':
		if s.matchNext('=') {
			s.addToken(GREATER_EQUAL)
		} else {
			s.addToken(GREATER)
		}
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		// Handled in advance()

	// String literals
	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.scanLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

// Comments never produce tokens; the scanner just consumes them.

func (s *Scanner) scanLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return
		}
		s.advance()
	}
	s.reportError("Unterminated block comment.")
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	tokenType := lookupIdentifier(text)
	if tokenType == IDENTIFIER {
		s.addLiteralToken(IDENTIFIER, TextLiteral(text))
	} else {
		s.addToken(tokenType)
	}
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part is only consumed when a digit follows the dot, so a
	// trailing "." stays available as a DOT token for the parser.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The digit classification above guarantees a well-formed numeral;
		// failing to parse one is a scanner bug, not bad input.
		panic(fmt.Sprintf("scanner produced malformed numeral %q: %v", text, err))
	}
	s.addLiteralToken(NUMBER, NumberLiteral(value))
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(STRING, TextLiteral(value))
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addLiteralToken(tokenType, Literal{})
}

func (s *Scanner) addLiteralToken(tokenType TokenType, literal Literal) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:    tokenType,
		Lexeme:  text,
		Literal: literal,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}
