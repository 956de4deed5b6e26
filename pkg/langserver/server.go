// Package langserver exposes formula files to an editor over the
// Language Server Protocol: open/change/close tracking plus
// publish-diagnostics driven by pkg/parser's parse errors.
//
// Grounded on the signadot-tony-format teacher's cmd/tony-lsp (main.go's
// stdio transport + minimal Server, diagnostics.go's documentStore +
// publishDiagnostics), adapted from Tony documents to one formula per
// line (§6's grammar, the CLI's input convention) and from go-tony's parser errors to
// proverr.InvalidFormulaError's rune-offset span. Not named in spec.md;
// added per SPEC_FULL.md's DOMAIN STACK as the home for
// go.lsp.dev/jsonrpc2 + go.lsp.dev/protocol + go.lsp.dev/uri.
package langserver

import (
	"context"
	"io"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const name = "folprover-lsp"

// Version is the server's reported version, overridable at link time.
var Version = "0.1.0"

// Server implements protocol.Server for formula files.
type Server struct {
	conn jsonrpc2.Conn
	docs *documentStore
}

// Run wires a Server to stdio and blocks until the connection closes.
func Run(ctx context.Context, r io.Reader, w io.Writer) error {
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{read: r, write: w})
	server := &Server{docs: newDocumentStore()}
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, handler)
	<-conn.Done()

	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (int, error)  { return s.read.Read(p) }
func (s *stdioReadWriteCloser) Write(p []byte) (int, error) { return s.write.Write(p) }
func (s *stdioReadWriteCloser) Close() error                { return nil }

// Initialize advertises the subset of capabilities this server actually
// implements: open/close tracking with full-content change sync, and
// diagnostics.
func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
		},
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo:   &protocol.ServerInfo{Name: name, Version: Version},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error { return nil }
func (s *Server) Shutdown(ctx context.Context) error                                       { return nil }
func (s *Server) Exit(ctx context.Context) error                                            { return nil }
func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error        { return nil }
