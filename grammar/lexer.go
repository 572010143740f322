package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// LoxLexer is a regex-rule rendition of the token grammar the hand-written
// scanner in internal/scanner implements. The two are held to the same
// classification by the differential tests in this package.
var LoxLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments (a block comment may span lines)
		{Name: "BlockComment", Pattern: `/\*(?s:.*?)\*/`},
		{Name: "Comment", Pattern: `//[^\n]*`},

		// String literals, verbatim between quotes (no escapes)
		{Name: "String", Pattern: `"[^"]*"`},

		// Number literals; the fractional part requires a digit after the
		// dot, so a trailing "." is left to the Punctuation rule
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},

		// Keywords and identifiers share one rule
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

		// Operators (two-character forms first)
		{Name: "Operator", Pattern: `(==|!=|<=|>=|[-+*/=<>!])`},

		// Punctuation (must come after operators)
		{Name: "Punctuation", Pattern: `[(){},.;]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
