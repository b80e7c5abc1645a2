// Package server wires the MARC language features into a glsp LSP
// server.
package server

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/RvanB/marc-lsp/internal/config"
	"github.com/RvanB/marc-lsp/internal/hover"
	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/resolver"
)

const lsName = "marc-lsp"

var version = "0.1.0"

type Server struct {
	handler  *protocol.Handler
	defaults config.Config

	data     marcdata.Provider
	resolver *resolver.Resolver
	renderer *hover.Renderer

	docs map[string]string
}

// NewServer builds the LSP server. The reference-data provider is
// constructed during initialize, once initializationOptions are known;
// defaults carry the command-line fallbacks.
func NewServer(defaults config.Config) (*glspserver.Server, error) {
	ls := &Server{
		defaults: defaults,
		docs:     make(map[string]string),
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidSave:    ls.textDocumentDidSave,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentHover:      ls.textDocumentHover,
		TextDocumentCompletion: ls.textDocumentCompletion,
		Shutdown:               ls.shutdown,
	}

	return glspserver.NewServer(ls.handler, lsName, false), nil
}

// setProvider installs the reference data and the components derived
// from it. Called once during initialize; read-only afterwards.
func (s *Server) setProvider(data marcdata.Provider) {
	s.data = data
	s.resolver = resolver.New(data)
	s.renderer = hover.New(data)
}
