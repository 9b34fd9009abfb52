// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"prover/internal/lsp"
)

const lsName = "prover-lsp"

var (
	version = "0.0.1"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(verbosityFromEnv(), nil)

	h := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:             h.Initialize,
		Initialized:            h.Initialized,
		Shutdown:               h.Shutdown,
		TextDocumentDidOpen:    h.TextDocumentDidOpen,
		TextDocumentDidClose:   h.TextDocumentDidClose,
		TextDocumentDidChange:  h.TextDocumentDidChange,
		TextDocumentCompletion: h.TextDocumentCompletion,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting prover LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting prover LSP server:", err)
		os.Exit(1)
	}
}

// verbosityFromEnv reads PROVER_LOG (spec.md 6.1), the same mapping
// cmd/proverctl uses.
func verbosityFromEnv() int {
	switch strings.ToLower(os.Getenv("PROVER_LOG")) {
	case "trace":
		return 4
	case "debug":
		return 3
	case "info":
		return 2
	case "error":
		return 0
	default:
		return 1
	}
}
