// Package hover renders resolver output as hover markdown.
package hover

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/RvanB/marc-lsp/internal/marcdata"
	"github.com/RvanB/marc-lsp/internal/parser"
	"github.com/RvanB/marc-lsp/internal/resolver"
)

// Renderer builds hover documentation from reference data.
type Renderer struct {
	data marcdata.Provider
}

func New(data marcdata.Provider) *Renderer {
	return &Renderer{data: data}
}

// Render produces the markdown for a resolved zone. The second return
// is false when there is nothing worth showing.
func (r *Renderer) Render(res *resolver.Resolution, field *parser.Field) (string, bool) {
	switch res.Kind {
	case resolver.ZoneTag:
		return r.renderTag(field), true
	case resolver.ZoneIndicator1:
		return r.renderIndicator(field, "1", field.Indicator1), true
	case resolver.ZoneIndicator2:
		return r.renderIndicator(field, "2", field.Indicator2), true
	case resolver.ZoneSubfield:
		return r.renderSubfield(field, res.Subfield), true
	case resolver.ZoneFixedPosition:
		return r.renderFixedPosition(field, res), true
	}
	return "", false
}

func (r *Renderer) renderTag(field *parser.Field) string {
	def, ok := r.data.GetTagDefinition(field.Tag)
	if !ok {
		return fmt.Sprintf("**%s** - Unknown MARC tag", field.Tag)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s - %s**\n\n", def.Tag, def.Name)
	fmt.Fprintf(&b, "%s\n\n", def.Description)

	if def.Repeatable {
		b.WriteString("*Repeatable field*\n\n")
	}

	if field.Kind == parser.KindData && len(def.Indicators) > 0 {
		b.WriteString("**Indicators:**\n\n")
		for _, num := range sortedKeys(def.Indicators) {
			fmt.Fprintf(&b, "Indicator %s:\n", num)
			values := def.Indicators[num]
			for _, value := range sortedKeys(values) {
				fmt.Fprintf(&b, "- `%s`: %s\n", value, values[value])
			}
			b.WriteString("\n")
		}
	}

	if len(def.Subfields) > 0 {
		b.WriteString("**Subfields:**\n\n")
		for _, code := range sortedKeys(def.Subfields) {
			sub := def.Subfields[code]
			repeatable := ""
			if sub.Repeatable {
				repeatable = " (R)"
			}
			fmt.Fprintf(&b, "- `$%s`: %s%s\n", code, sub.Name, repeatable)
			if sub.Description != sub.Name {
				fmt.Fprintf(&b, "  %s\n", sub.Description)
			}
		}
	}

	appendTagURL(&b, field.Tag, "\n")
	return b.String()
}

func (r *Renderer) renderIndicator(field *parser.Field, number, value string) string {
	if value == "" {
		value = " "
	}

	def, ok := r.data.GetTagDefinition(field.Tag)
	if !ok || def.Indicators[number] == nil {
		return fmt.Sprintf("**Indicator %s:** `%s`", number, value)
	}

	desc, ok := def.Indicators[number][value]
	if !ok {
		desc = "Unknown value"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Indicator %s:** `%s`\n\n%s", number, value, desc)
	appendTagURL(&b, field.Tag, "\n\n")
	return b.String()
}

func (r *Renderer) renderSubfield(field *parser.Field, sf *parser.Subfield) string {
	def, ok := r.data.GetSubfieldDefinition(field.Tag, sf.Code)
	if !ok {
		return fmt.Sprintf("**$%s** - Unknown subfield for tag %s", sf.Code, field.Tag)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**$%s - %s**\n\n", def.Code, def.Name)
	fmt.Fprintf(&b, "%s\n\n", def.Description)
	if def.Repeatable {
		b.WriteString("*Repeatable subfield*\n\n")
	}
	fmt.Fprintf(&b, "**Content:** %s\n\n", sf.Content)
	appendTagURL(&b, field.Tag, "")
	return b.String()
}

func (r *Renderer) renderFixedPosition(field *parser.Field, res *resolver.Resolution) string {
	pos := res.Position
	if pos == nil {
		return fmt.Sprintf("**%s position %d** - Character position in fixed field",
			field.Tag, res.FieldOffset)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s - %s**\n\n", field.Tag, pos.Name)
	if pos.OpenEnded() {
		fmt.Fprintf(&b, "Position: %d+\n", pos.Start)
	} else if pos.Start == pos.End {
		fmt.Fprintf(&b, "Position: %d\n", pos.Start)
	} else {
		fmt.Fprintf(&b, "Position: %d-%d\n", pos.Start, pos.End)
	}
	fmt.Fprintf(&b, "Value: `%s`\n\n", res.Value)
	fmt.Fprintf(&b, "%s\n\n", pos.Description)

	if len(pos.Values) > 0 {
		if desc, ok := pos.Values[res.Value]; ok {
			fmt.Fprintf(&b, "**Current:** `%s` = %s\n\n", res.Value, desc)
		} else {
			fmt.Fprintf(&b, "**Current:** `%s` (not recognized)\n\n", res.Value)
		}

		b.WriteString("**Other values:**\n")
		for _, value := range sortedKeys(pos.Values) {
			if value != res.Value {
				fmt.Fprintf(&b, "`%s`: %s\n", value, pos.Values[value])
			}
		}
	}

	appendTagURL(&b, field.Tag, "\n")
	return b.String()
}

// TagURL builds the Library of Congress documentation link for a tag.
// Holdings-range tags link to holdings documentation, everything else
// to bibliographic.
func TagURL(tag string) (string, bool) {
	if len(tag) != 3 {
		return "", false
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return "", false
	}

	if (n >= 852 && n <= 878) || n >= 880 {
		return fmt.Sprintf("https://www.loc.gov/marc/holdings/hd%s.html", tag), true
	}
	return fmt.Sprintf("https://www.loc.gov/marc/bibliographic/bd%s.html", tag), true
}

func appendTagURL(b *strings.Builder, tag, separator string) {
	if url, ok := TagURL(tag); ok {
		fmt.Fprintf(b, "%s[View full documentation on Library of Congress](%s)", separator, url)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
