// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"lox/internal/lsp"
)

const lsName = "lox" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	loxHandler := lsp.NewLoxHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     loxHandler.Initialize,
		Initialized:                    loxHandler.Initialized,
		Shutdown:                       loxHandler.Shutdown,
		SetTrace:                       loxHandler.SetTrace,
		TextDocumentDidOpen:            loxHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           loxHandler.TextDocumentDidClose,
		TextDocumentDidChange:          loxHandler.TextDocumentDidChange,
		TextDocumentCompletion:         loxHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: loxHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Lox LSP server...")

	// Serve over standard input/output, the transport editors expect
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Lox LSP server:", err)
		os.Exit(1)
	}
}
