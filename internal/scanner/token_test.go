package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdentifier(t *testing.T) {
	assert.Equal(t, PRINT, lookupIdentifier("print"))
	assert.Equal(t, WHILE, lookupIdentifier("while"))
	assert.Equal(t, IDENTIFIER, lookupIdentifier("printer"))
	assert.Equal(t, IDENTIFIER, lookupIdentifier("Print"), "keyword lookup is case-sensitive")
	assert.Equal(t, IDENTIFIER, lookupIdentifier("_while"))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "BANG_EQUAL", BANG_EQUAL.String())
	assert.Equal(t, "WHILE", WHILE.String())
	assert.Equal(t, "TokenType(40)", TokenType(40).String())
}

func TestLiteralConstructors(t *testing.T) {
	num := NumberLiteral(123.45)
	assert.Equal(t, LiteralNumber, num.Kind)
	assert.Equal(t, 123.45, num.Number)

	text := TextLiteral("hi")
	assert.Equal(t, LiteralText, text.Kind)
	assert.Equal(t, "hi", text.Text)

	var none Literal
	assert.Equal(t, LiteralNone, none.Kind)
}

func TestTokenStructuralEquality(t *testing.T) {
	a := Token{Type: NUMBER, Lexeme: "1.5", Literal: NumberLiteral(1.5), Position: Position{Line: 1, Column: 1}}
	b := Token{Type: NUMBER, Lexeme: "1.5", Literal: NumberLiteral(1.5), Position: Position{Line: 1, Column: 1}}
	assert.Equal(t, a, b)

	b.Position.Line = 2
	assert.NotEqual(t, a, b)
}
