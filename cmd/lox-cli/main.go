// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	loxerrors "lox/internal/errors"
	"lox/internal/scanner"
)

func main() {
	jsonOutput := flag.Bool("json", false, "print the token stream as JSON")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: lox-cli [-json] <file.lox>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	tokens, scanErrors := scanner.ScanSource(string(source))

	// Report lexical errors with full source frames
	reporter := loxerrors.NewErrorReporter(path, string(source))
	for _, scanErr := range scanErrors {
		fmt.Print(reporter.FormatScanError(scanErr))
	}

	duration := time.Since(startTime)

	// A script with lexical errors is never handed on
	if len(scanErrors) > 0 {
		color.Red("Scanning failed after %s", formatDuration(duration))
		os.Exit(1)
	}

	if *jsonOutput {
		if err := writeTokensJSON(os.Stdout, tokens); err != nil {
			fmt.Fprintf(os.Stderr, "could not marshal tokens: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	} else {
		for _, tok := range tokens {
			fmt.Println(formatToken(tok))
		}
	}

	color.Green("Successfully scanned %s in %s", path, formatDuration(duration))
}

func formatToken(tok scanner.Token) string {
	out := fmt.Sprintf("%4d  %-13s %q", tok.Position.Line, tok.Type, tok.Lexeme)
	switch tok.Literal.Kind {
	case scanner.LiteralNumber:
		out += fmt.Sprintf("  (%v)", tok.Literal.Number)
	case scanner.LiteralText:
		out += fmt.Sprintf("  (%s)", tok.Literal.Text)
	}
	return out
}

// tokenDump is the JSON view of a token; the literal payload is flattened
// into optional number/text fields.
type tokenDump struct {
	Type   string   `json:"type"`
	Lexeme string   `json:"lexeme"`
	Line   int      `json:"line"`
	Number *float64 `json:"number,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

func writeTokensJSON(w io.Writer, tokens []scanner.Token) error {
	dumps := make([]tokenDump, 0, len(tokens))
	for _, tok := range tokens {
		dump := tokenDump{
			Type:   tok.Type.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Position.Line,
		}
		switch tok.Literal.Kind {
		case scanner.LiteralNumber:
			number := tok.Literal.Number
			dump.Number = &number
		case scanner.LiteralText:
			text := tok.Literal.Text
			dump.Text = &text
		}
		dumps = append(dumps, dump)
	}

	return json.MarshalWrite(w, dumps, jsontext.Multiline(true), jsontext.WithIndent("  "))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
