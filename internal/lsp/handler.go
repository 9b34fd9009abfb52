// Package lsp serves axiom files over the Language Server Protocol: parse
// diagnostics on open/change, grounded on the source's KansoHandler
// (internal/lsp/handler.go before this rewrite) with its AST/semantic-token
// machinery dropped — axiom files have no AST rich enough to make semantic
// tokens worth the position-tracking a real grammar would need (see
// DESIGN.md).
package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"prover/internal/surface"
	"prover/internal/term"
)

// Handler implements the LSP server handlers for axiom files.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler creates and returns a new Handler instance.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

// Initialize responds to the LSP client's initialize request and
// advertises the server's capabilities.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's
// capabilities and completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	diagnostics, err := h.validate(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Full-sync mode (advertised in Initialize) re-reads the document from
// disk rather than unpacking the change payload's concrete event type.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	diagnostics, err := h.validate(params.TextDocument.URI, string(text))
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentCompletion offers the axiom-file keyword/operator surface.
func (h *Handler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	kw := func(label string) protocol.CompletionItem {
		kind := protocol.CompletionItemKindKeyword
		return protocol.CompletionItem{Label: label, Kind: &kind}
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items: []protocol.CompletionItem{
			kw("rule"), kw("forall"), kw("<->"), kw("->"), kw("<-"),
		},
	}, nil
}

// validate parses text as an axiom file and converts any failure into LSP
// diagnostics, caching the source regardless of whether it parsed.
func (h *Handler) validate(uri protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	h.mu.Lock()
	h.content[path] = text
	h.mu.Unlock()

	store := term.NewStore()
	af, parseErr := surface.ParseAxiomFile(path, text)
	if parseErr != nil {
		return ConvertParseError(parseErr), nil
	}
	if _, err := surface.DesugarAxiomFile(af, store); err != nil {
		return ConvertDesugarError(err), nil
	}
	return nil, nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
