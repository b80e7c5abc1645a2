// Package completion produces tag and subfield completion candidates.
package completion

import (
	"fmt"
	"regexp"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/parser"
)

var (
	mrkTagPrefix  = regexp.MustCompile(`=(\d{0,2})$`)
	lineTagPrefix = regexp.MustCompile(`^(\d{0,2})$`)
	subfieldStub  = regexp.MustCompile(`\$([a-z0-9]*)$`)

	mrkLineTag  = regexp.MustCompile(`=(\d{3})`)
	lineLineTag = regexp.MustCompile(`^(\d{3})\s`)
)

// ForPosition returns completion candidates for a cursor position.
// Tag candidates are offered while typing a tag at the start of a
// line, subfield candidates after a '$' once the line's tag is known.
func ForPosition(data marcdata.Provider, line string, char int, format parser.Format) []protocol.CompletionItem {
	if char > len(line) {
		char = len(line)
	}
	prefix := line[:char]

	if partial, ok := tagStub(prefix, format); ok {
		return Tags(data, partial, format)
	}

	if strings.Contains(prefix, "$") {
		if tag, ok := lineTag(line, format); ok {
			partial := ""
			if m := subfieldStub.FindStringSubmatch(prefix); m != nil {
				partial = m[1]
			}
			return Subfields(data, tag, partial)
		}
	}

	return nil
}

// Tags lists tag candidates matching a partial tag.
func Tags(data marcdata.Provider, partial string, format parser.Format) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	kind := protocol.CompletionItemKindClass

	for _, tag := range data.GetAllTags() {
		// Only numeric tags can be typed as field lines; LDR is not
		// offered.
		if !isNumericTag(tag) || !strings.HasPrefix(tag, partial) {
			continue
		}
		def, ok := data.GetTagDefinition(tag)
		if !ok {
			continue
		}

		label := tag
		if format == parser.FormatMRK {
			label = "=" + tag
		}
		insertText := tag
		item := protocol.CompletionItem{
			Label:  label,
			Kind:   &kind,
			Detail: strPtr(def.Name),
			Documentation: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: fmt.Sprintf("**%s**\n\n%s", def.Name, def.Description),
			},
			InsertText: &insertText,
			FilterText: strPtr(tag),
		}

		// Data fields get a snippet that positions the cursor over the
		// indicators and the first subfield.
		if format == parser.FormatMRK && tag >= "010" && len(def.Indicators) > 0 {
			snippet := protocol.InsertTextFormatSnippet
			text := tag + `  ${1: }${2: }${3:\$a}`
			item.InsertText = &text
			item.InsertTextFormat = &snippet
		}

		items = append(items, item)
	}
	return items
}

// Subfields lists subfield candidates for a tag matching a partial
// code. Unknown tags contribute no candidates.
func Subfields(data marcdata.Provider, tag, partial string) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	kind := protocol.CompletionItemKindProperty

	for _, code := range data.GetSubfieldsForTag(tag) {
		if !strings.HasPrefix(code, partial) {
			continue
		}
		def, ok := data.GetSubfieldDefinition(tag, code)
		if !ok {
			continue
		}

		detail := def.Name
		if def.Repeatable {
			detail += " (Repeatable)"
		}
		insertText := code
		items = append(items, protocol.CompletionItem{
			Label:  "$" + code,
			Kind:   &kind,
			Detail: &detail,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: fmt.Sprintf("**$%s - %s**\n\n%s", code, def.Name, def.Description),
			},
			InsertText: &insertText,
			FilterText: strPtr(code),
		})
	}
	return items
}

// tagStub extracts a partial tag when the prefix looks like the start
// of a field line.
func tagStub(prefix string, format parser.Format) (string, bool) {
	if format == parser.FormatMRK {
		if m := mrkTagPrefix.FindStringSubmatch(prefix); m != nil {
			return m[1], true
		}
		return "", false
	}
	if m := lineTagPrefix.FindStringSubmatch(strings.TrimLeft(prefix, " ")); m != nil {
		return m[1], true
	}
	return "", false
}

// lineTag finds the field tag already present on the line.
func lineTag(line string, format parser.Format) (string, bool) {
	pattern := mrkLineTag
	if format == parser.FormatLine {
		pattern = lineLineTag
	}
	if m := pattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

func isNumericTag(tag string) bool {
	if len(tag) != 3 {
		return false
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] < '0' || tag[i] > '9' {
			return false
		}
	}
	return true
}

func strPtr(s string) *string { return &s }
