package scanner

// LiteralKind discriminates the payload carried by a Literal.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralNumber
	LiteralText
)

// Literal is the value payload attached to NUMBER, STRING and IDENTIFIER
// tokens. It is one tagged union over a float64 and a string rather than
// three wrapper types, and it stays comparable so whole tokens can be
// compared structurally in tests.
type Literal struct {
	Kind   LiteralKind
	Number float64
	Text   string
}

func NumberLiteral(value float64) Literal {
	return Literal{Kind: LiteralNumber, Number: value}
}

func TextLiteral(text string) Literal {
	return Literal{Kind: LiteralText, Text: text}
}
