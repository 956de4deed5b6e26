package langserver

import (
	"context"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/gokiburi-labs/folprover/pkg/parser"
	"github.com/gokiburi-labs/folprover/pkg/proverr"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]string)}
}

func (ds *documentStore) put(uri, content string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = content
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (ds *documentStore) get(uri string) (string, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	content, ok := ds.docs[uri]

	return content, ok
}

// DidOpen parses the newly opened document and publishes its diagnostics.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.put(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, uri)

	return nil
}

// DidChange re-parses the document on every full-content sync and
// republishes its diagnostics.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		s.docs.put(uri, change.Text)
	}

	s.publishDiagnostics(ctx, uri)

	return nil
}

// DidClose drops the document; no further diagnostics are published for it.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))

	return nil
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	content, ok := s.docs.get(uri)
	if !ok {
		return
	}

	if s.conn == nil {
		return
	}

	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diagnosticsForContent(content),
	})
}

// diagnosticsForContent parses content line by line (the CLI's own
// one-formula-per-line convention) and turns each parse failure into a
// diagnostic anchored at its InvalidFormulaError rune offset.
func diagnosticsForContent(content string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	line := 0
	start := 0

	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			text := content[start:i]
			if trimmed := trimFormula(text); trimmed != "" {
				if _, err := parser.Parse(trimmed); err != nil {
					diagnostics = append(diagnostics, diagnosticFor(line, err))
				}
			}

			line++
			start = i + 1
		}
	}

	return diagnostics
}

func trimFormula(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t' || s[i] == '\r') {
		i++
	}

	for j > i && (s[j-1] == ' ' || s[j-1] == '\t' || s[j-1] == '\r') {
		j--
	}

	return s[i:j]
}

func diagnosticFor(line int, err error) protocol.Diagnostic {
	character := uint32(0)

	var invalid *proverr.InvalidFormulaError
	if asInvalidFormulaError(err, &invalid) {
		character = uint32(invalid.Pos)
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: character},
			End:   protocol.Position{Line: uint32(line), Character: character + 1},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   "folprover",
		Message:  err.Error(),
	}
}

func asInvalidFormulaError(err error, target **proverr.InvalidFormulaError) bool {
	if e, ok := err.(*proverr.InvalidFormulaError); ok {
		*target = e
		return true
	}

	return false
}
