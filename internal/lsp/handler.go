package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lox/internal/scanner"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

// Define the set of supported semantic token modifiers (for extra tagging like declaration, readonly, etc.)
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

// LoxHandler implements the LSP server handlers for the Lox language.
// Everything it reports is derived from the scanner alone: lexical
// diagnostics, token-class highlighting and keyword completion.
type LoxHandler struct {
	mu      sync.RWMutex
	content map[string]string
	tokens  map[string][]scanner.Token
}

// NewLoxHandler creates and returns a new LoxHandler instance
func NewLoxHandler() *LoxHandler {
	return &LoxHandler{
		content: make(map[string]string),
		tokens:  make(map[string][]scanner.Token),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *LoxHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *LoxHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Lox LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *LoxHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Lox LSP Shutdown")
	return nil
}

// SetTrace handles trace-level changes requested by the client
func (h *LoxHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *LoxHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to rescan document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *LoxHandler) TextDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.tokens, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *LoxHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateTokens(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to rescan document: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the fixed keyword table as completion items
func (h *LoxHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	keywords := make([]string, 0, len(scanner.KEYWORDS))
	for keyword := range scanner.KEYWORDS {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *LoxHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	scanned, err := h.getOrUpdateTokens(ctx, path, rawURI)
	if err != nil {
		return nil, err
	}

	// Classify the token stream and encode it into the LSP wire format
	// (delta-line, delta-start compression).
	tokens := collectSemanticTokens(scanned)

	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

func (h *LoxHandler) getOrUpdateTokens(ctx *glsp.Context, path string, rawURI protocol.DocumentUri) ([]scanner.Token, error) {
	h.mu.RLock()
	tokens, ok := h.tokens[path]
	h.mu.RUnlock()

	if !ok {
		diagnostics, err := h.updateTokens(rawURI)
		if err != nil {
			return nil, err
		}

		h.mu.RLock()
		tokens = h.tokens[path]
		h.mu.RUnlock()

		if diagnostics != nil {
			sendDiagnosticNotification(ctx, rawURI, diagnostics)
		}
	}

	return tokens, nil
}

func (h *LoxHandler) updateTokens(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, scanErrors := scanner.ScanSource(string(content))

	h.mu.Lock()
	h.content[path] = string(content)
	h.tokens[path] = tokens
	h.mu.Unlock()

	return ConvertScanErrors(scanErrors), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	log.Printf("Sending %d diagnostics for %s\n", len(diagnostics), uri)

	// An empty list clears any diagnostics a previous scan produced.
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}
