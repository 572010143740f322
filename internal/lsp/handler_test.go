package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lox/internal/lsp"
	"lox/internal/scanner"
)

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewLoxHandler()

	absPath, err := filepath.Abs(filepath.Join("../../examples", "fibonacci.lox"))
	require.NoError(t, err, "Failed to get absolute path")

	uri := "file://" + filepath.ToSlash(absPath)

	ctx := &glsp.Context{}
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: uri,
		},
	}

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, params)
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")
	require.NotEmpty(t, tokens.Data, "Returned token data should not be empty")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.NotEmpty(t, decoded, "No semantic tokens decoded")

	// `// Recursive Fibonacci` on line 1 produces no semantic tokens;
	// highlighting starts with the fun declaration on line 2.
	assertToken(t, &decoded[0], 2, 1, 3, "keyword")   // fun
	assertToken(t, &decoded[1], 2, 5, 3, "variable")  // fib
	assertToken(t, &decoded[2], 2, 9, 1, "variable")  // n
	assertToken(t, &decoded[3], 3, 3, 2, "keyword")   // if
	assertToken(t, &decoded[4], 3, 7, 1, "variable")  // n
	assertToken(t, &decoded[5], 3, 9, 2, "operator")  // <=
	assertToken(t, &decoded[6], 3, 12, 1, "number")   // 1
	assertToken(t, &decoded[7], 3, 15, 6, "keyword")  // return
	assertToken(t, &decoded[8], 3, 22, 1, "variable") // n
	assertToken(t, &decoded[9], 4, 3, 6, "keyword")   // return
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	handler := lsp.NewLoxHandler()

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.lox")
	require.NoError(t, os.WriteFile(path, []byte("var s = \"oops;\n"), 0o644))

	uri := "file://" + filepath.ToSlash(path)

	var published *protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				published = params.(*protocol.PublishDiagnosticsParams)
			}
		},
	}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	})
	require.NoError(t, err)

	require.NotNil(t, published, "expected a publishDiagnostics notification")
	require.Len(t, published.Diagnostics, 1)
	require.Equal(t, "Unterminated string.", published.Diagnostics[0].Message)
	require.Equal(t, uint32(0), published.Diagnostics[0].Range.Start.Line)
	require.Equal(t, uint32(8), published.Diagnostics[0].Range.Start.Character)
}

func TestCompletionReturnsKeywords(t *testing.T) {
	handler := lsp.NewLoxHandler()

	result, err := handler.TextDocumentCompletion(&glsp.Context{}, &protocol.CompletionParams{})
	require.NoError(t, err)

	list, ok := result.(*protocol.CompletionList)
	require.True(t, ok, "expected a CompletionList")
	require.Len(t, list.Items, len(scanner.KEYWORDS))
	require.Equal(t, "and", list.Items[0].Label, "keywords should be sorted")
}

func TestConvertScanErrors(t *testing.T) {
	_, errs := scanner.ScanSource("@")
	require.Len(t, errs, 1)

	diagnostics := lsp.ConvertScanErrors(errs)
	require.Len(t, diagnostics, 1)
	require.Equal(t, `Unexpected character: '@'`, diagnostics[0].Message)
	require.Equal(t, uint32(0), diagnostics[0].Range.Start.Line)
	require.Equal(t, uint32(0), diagnostics[0].Range.Start.Character)
	require.Equal(t, uint32(1), diagnostics[0].Range.End.Character)
	require.Equal(t, "lox-scanner", *diagnostics[0].Source)
}

type DecodedToken struct {
	Index  int
	Line   uint32
	Char   uint32
	Length uint32
	Type   string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		decoded = append(decoded, DecodedToken{
			Index:  i / 5,
			Line:   line + 1, // LSP uses 0-based indexing
			Char:   char + 1, // LSP uses 0-based indexing
			Length: length,
			Type:   lsp.SemanticTokenTypes[tokenTypeIdx],
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
}
