package server

import (
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RvanB/marc-lsp/internal/config"
	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/marcdata/database"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	cfg, err := config.Load(params.InitializationOptions)
	if err != nil {
		log.Printf("Invalid initializationOptions, using defaults: %v", err)
		cfg = config.Config{}
	}
	if cfg.Database == "" {
		cfg.Database = s.defaults.Database
	}
	if cfg.DataDir == "" {
		cfg.DataDir = s.defaults.DataDir
	}

	s.setProvider(loadProvider(cfg))

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"=", "$"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

// loadProvider builds the reference-data provider from the configured
// source, degrading to an empty provider on failure so requests still
// get answered.
func loadProvider(cfg config.Config) marcdata.Provider {
	if cfg.Database != "" {
		db, err := database.Open(cfg.Database)
		if err != nil {
			log.Printf("Failed to open reference database %s: %v", cfg.Database, err)
			return marcdata.Empty()
		}
		defer db.Close()

		data, err := database.LoadProvider(db)
		if err != nil {
			log.Printf("Failed to load reference database %s: %v", cfg.Database, err)
			return marcdata.Empty()
		}
		return data
	}

	if cfg.DataDir != "" {
		data, err := marcdata.LoadDir(cfg.DataDir)
		if err != nil {
			log.Printf("Failed to load reference data from %s: %v", cfg.DataDir, err)
			return marcdata.Empty()
		}
		return data
	}

	data, err := marcdata.Default()
	if err != nil {
		log.Printf("Failed to load embedded reference data: %v", err)
		return marcdata.Empty()
	}
	return data
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Client initialized.")
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	log.Println("Server shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
