// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"lox/internal/scanner"
)

const PROMPT = ">> "

// Start reads lines from in and prints the token sequence each line scans
// to. Every line is scanned independently, so a lexical error on one line
// does not poison the next.
func Start(in io.Reader, out io.Writer) {
	input := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !input.Scan() {
			return
		}

		line := input.Text()
		tokens, scanErrors := scanner.ScanSource(line)

		for _, scanErr := range scanErrors {
			fmt.Fprintf(out, "error: %s\n", scanErr.Message)
		}
		for _, tok := range tokens {
			if tok.Type == scanner.EOF {
				continue
			}
			fmt.Fprintf(out, "%s %q%s\n", tok.Type, tok.Lexeme, literalSuffix(tok.Literal))
		}
	}
}

func literalSuffix(literal scanner.Literal) string {
	switch literal.Kind {
	case scanner.LiteralNumber:
		return fmt.Sprintf(" (%v)", literal.Number)
	case scanner.LiteralText:
		return fmt.Sprintf(" (%s)", literal.Text)
	}
	return ""
}
