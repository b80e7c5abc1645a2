package server

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RvanB/marc-lsp/internal/completion"
	"github.com/RvanB/marc-lsp/internal/parser"
)

func (s *Server) textDocumentCompletion(
	context *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	text, ok := s.docs[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	lineIdx := int(params.Position.Line)
	if lineIdx < 0 || lineIdx >= len(lines) {
		return nil, nil
	}

	items := completion.ForPosition(
		s.data,
		lines[lineIdx],
		int(params.Position.Character),
		parser.DetectFormat(text),
	)

	return protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
