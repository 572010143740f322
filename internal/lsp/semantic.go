package lsp

import (
	"lox/internal/scanner"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens maps the scanner's token stream to LSP semantic
// tokens. Delimiters and the EOF sentinel carry no highlighting class and
// are skipped; everything else is classified directly from its token type.
func collectSemanticTokens(tokens []scanner.Token) []SemanticToken {
	var out []SemanticToken

	for _, tok := range tokens {
		class, ok := semanticClass(tok.Type)
		if !ok {
			continue
		}

		// Multi-line string lexemes are reported at their opening line; the
		// editor clamps the length to the line end.
		out = append(out, SemanticToken{
			Line:      uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
			StartChar: uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
			Length:    uint32(len(tok.Lexeme)),
			TokenType: indexOf(class, SemanticTokenTypes),
		})
	}

	return out
}

func semanticClass(t scanner.TokenType) (string, bool) {
	switch t {
	case scanner.IDENTIFIER:
		return "variable", true
	case scanner.NUMBER:
		return "number", true
	case scanner.STRING:
		return "string", true
	case scanner.MINUS, scanner.PLUS, scanner.SLASH, scanner.STAR,
		scanner.BANG, scanner.BANG_EQUAL, scanner.EQUAL, scanner.EQUAL_EQUAL,
		scanner.GREATER, scanner.GREATER_EQUAL, scanner.LESS, scanner.LESS_EQUAL:
		return "operator", true
	}

	if t >= scanner.AND && t <= scanner.WHILE {
		return "keyword", true
	}

	return "", false
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
