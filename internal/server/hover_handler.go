package server

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/parser"
)

func (s *Server) textDocumentHover(
	context *glsp.Context,
	params *protocol.HoverParams,
) (*protocol.Hover, error) {
	text, ok := s.docs[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	lineIdx := int(params.Position.Line)
	if lineIdx < 0 || lineIdx >= len(lines) {
		return nil, nil
	}
	line := lines[lineIdx]

	format := parser.DetectFormat(text)
	tok := parser.ForFormat(format)
	if !tok.IsMARCLine(line) {
		return nil, nil
	}

	field := tok.ParseLine(line, lineIdx+1)
	if field == nil {
		return nil, nil
	}

	res := s.resolver.Resolve(line, field, int(params.Position.Character), tok, s.recordTypeAt(text, tok, lineIdx+1))
	if res == nil {
		return nil, nil
	}

	markdown, ok := s.renderer.Render(res, field)
	if !ok {
		return nil, nil
	}

	result := &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: markdown,
		},
	}

	// The tag zone spans the whole line; underlining it all is noise,
	// so only narrower zones carry a range.
	if res.End-res.Start < len(line) {
		result.Range = &protocol.Range{
			Start: protocol.Position{
				Line:      params.Position.Line,
				Character: protocol.UInteger(res.Start),
			},
			End: protocol.Position{
				Line:      params.Position.Line,
				Character: protocol.UInteger(res.End),
			},
		}
	}

	return result, nil
}

// recordTypeAt finds the record containing lineNumber and derives its
// type from the leader. Leaderless fragments are treated as
// bibliographic.
func (s *Server) recordTypeAt(text string, tok parser.Tokenizer, lineNumber int) marcdata.RecordType {
	records := parser.ParseDocument(text, tok)
	record := parser.RecordForLine(records, lineNumber)
	if record == nil || record.Leader == nil {
		return marcdata.Bibliographic
	}
	return marcdata.RecordTypeFromLeader(record.Leader.Content)
}
