// Package resolver maps a cursor offset within a parsed MARC line back
// to the semantic element it belongs to and computes the text range an
// editor should highlight for that element.
package resolver

import (
	"strings"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/parser"
)

// ZoneKind identifies the semantic element under the cursor.
type ZoneKind int

const (
	ZoneTag ZoneKind = iota
	ZoneIndicator1
	ZoneIndicator2
	ZoneSubfield
	ZoneFixedPosition
)

func (z ZoneKind) String() string {
	switch z {
	case ZoneTag:
		return "tag"
	case ZoneIndicator1:
		return "indicator1"
	case ZoneIndicator2:
		return "indicator2"
	case ZoneSubfield:
		return "subfield"
	case ZoneFixedPosition:
		return "fixed-position"
	}
	return "unknown"
}

// Resolution is the zone containing a cursor offset plus its highlight
// range in full-line character offsets.
type Resolution struct {
	Kind  ZoneKind
	Start int
	End   int

	// FullLine marks the tag zone's default range, which callers are
	// expected not to underline visually.
	FullLine bool

	// Subfield zone: the subfield and its index within the field.
	Subfield      *parser.Subfield
	SubfieldIndex int

	// Fixed-field zone: the matched position definition (nil when no
	// definition covers the offset), the offset within the field
	// content, and the value occupying the position.
	Position    *marcdata.FixedFieldPosition
	FieldOffset int
	Value       string
}

// Resolver resolves cursor positions against reference data.
type Resolver struct {
	data marcdata.Provider
}

func New(data marcdata.Provider) *Resolver {
	return &Resolver{data: data}
}

// Resolve determines which zone of the line contains charOffset.
// Resolution order reflects visual layout precedence: fixed-field
// positions, then indicator slots, then subfields, then the tag
// region. Returns nil when no zone matches.
func (r *Resolver) Resolve(
	line string,
	field *parser.Field,
	charOffset int,
	tok parser.Tokenizer,
	rt marcdata.RecordType,
) *Resolution {
	if res := r.resolveFixedField(line, field, charOffset, tok, rt); res != nil {
		return res
	}

	if field.Kind == parser.KindData {
		if res := resolveIndicators(line, charOffset, tok); res != nil {
			return res
		}
		if res := resolveSubfield(line, field, charOffset); res != nil {
			return res
		}
	}

	if charOffset >= 0 && charOffset <= tok.TagEnd() {
		return &Resolution{
			Kind:     ZoneTag,
			Start:    0,
			End:      len(line),
			FullLine: true,
		}
	}

	return nil
}

// resolveFixedField maps the offset onto the tag's byte-position table
// for the current record type. Offsets inside the tag-and-spacer
// region fall through to the other zones.
func (r *Resolver) resolveFixedField(
	line string,
	field *parser.Field,
	charOffset int,
	tok parser.Tokenizer,
	rt marcdata.RecordType,
) *Resolution {
	if !r.data.IsFixedField(field.Tag, rt) || charOffset <= tok.TagEnd() {
		return nil
	}

	contentStart := tok.ContentStart(line, field)
	if contentStart == -1 || charOffset < contentStart {
		return nil
	}

	fieldOffset := charOffset - contentStart
	content := strings.TrimRight(line[contentStart:], " \t")

	pos, ok := r.data.GetPositionInfo(field.Tag, fieldOffset, rt)
	if !ok {
		// No definition covers this byte: a generic single-character
		// zone so callers can still report the raw position.
		return &Resolution{
			Kind:        ZoneFixedPosition,
			Start:       charOffset,
			End:         minInt(charOffset+1, len(line)),
			FieldOffset: fieldOffset,
		}
	}

	start := contentStart + pos.Start
	var end int
	if pos.OpenEnded() {
		end = contentStart + len(content)
	} else {
		end = contentStart + pos.End + 1
	}
	start = minInt(start, len(line))
	end = minInt(end, len(line))

	return &Resolution{
		Kind:        ZoneFixedPosition,
		Start:       start,
		End:         end,
		Position:    pos,
		FieldOffset: fieldOffset,
		Value:       positionValue(content, pos),
	}
}

// positionValue extracts the substring of the field content occupied
// by the position. Content shorter than the position yields "".
func positionValue(content string, pos *marcdata.FixedFieldPosition) string {
	if pos.Start >= len(content) {
		return ""
	}
	if pos.OpenEnded() {
		return content[pos.Start:]
	}
	end := minInt(pos.End+1, len(content))
	return content[pos.Start:end]
}

// resolveIndicators matches the offset against the two one-character
// indicator slots. Only an exact hit resolves.
func resolveIndicators(line string, charOffset int, tok parser.Tokenizer) *Resolution {
	ind1, ind2, ok := tok.IndicatorPositions(line)
	if !ok {
		return nil
	}
	switch charOffset {
	case ind1:
		return &Resolution{Kind: ZoneIndicator1, Start: ind1, End: ind1 + 1}
	case ind2:
		return &Resolution{Kind: ZoneIndicator2, Start: ind2, End: ind2 + 1}
	}
	return nil
}

// resolveSubfield walks the subfields left to right with an advancing
// cursor. Sequential search is required because codes may repeat; a
// plain first-match search would always find the first occurrence.
func resolveSubfield(line string, field *parser.Field, charOffset int) *Resolution {
	cursor := 0
	for i := range field.Subfields {
		sf := &field.Subfields[i]
		rel := strings.Index(line[cursor:], "$"+sf.Code)
		if rel == -1 {
			continue
		}
		start := cursor + rel
		contentEnd := start + 2 + len(sf.Content)
		cursor = contentEnd

		if charOffset >= start && charOffset <= contentEnd {
			return &Resolution{
				Kind:          ZoneSubfield,
				Start:         start,
				End:           contentEnd,
				Subfield:      sf,
				SubfieldIndex: i,
			}
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
