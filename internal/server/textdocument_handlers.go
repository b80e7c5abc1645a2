package server

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RvanB/marc-lsp/internal/parser"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	s.docs[uri] = params.TextDocument.Text
	publishDiagnostics(context, uri, parser.Validate(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			s.docs[uri] = change.Text
		case protocol.TextDocumentContentChangeEvent:
			// Sync is negotiated as full, so treat any event as a
			// full replacement.
			s.docs[uri] = change.Text
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}
	publishDiagnostics(context, uri, parser.Validate(s.docs[uri]))
	return nil
}

func (s *Server) textDocumentDidSave(
	context *glsp.Context,
	params *protocol.DidSaveTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		s.docs[uri] = *params.Text
	}
	publishDiagnostics(context, uri, parser.Validate(s.docs[uri]))
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	delete(s.docs, uri)
	publishDiagnostics(context, uri, nil)
	return nil
}

func publishDiagnostics(
	context *glsp.Context,
	uri string,
	diagnostics []protocol.Diagnostic,
) {
	if diagnostics == nil {
		// An empty list clears previously published diagnostics.
		diagnostics = []protocol.Diagnostic{}
	}
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}
