// Package marcdata supplies MARC reference data: tag and subfield
// definitions, indicator value tables, and fixed-field character
// position layouts keyed by record type.
package marcdata

// SubfieldDefinition describes one subfield code of a tag.
type SubfieldDefinition struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Repeatable  bool   `json:"repeatable,omitempty"`
}

// TagDefinition describes a MARC tag. Indicators maps the indicator
// number ("1" or "2") to a value → description table.
type TagDefinition struct {
	Tag         string                        `json:"tag"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Repeatable  bool                          `json:"repeatable,omitempty"`
	Indicators  map[string]map[string]string  `json:"indicators,omitempty"`
	Subfields   map[string]SubfieldDefinition `json:"subfields,omitempty"`
}

// FixedFieldPosition describes one character position (or range) in a
// fixed field. End is inclusive; -1 means the position extends to the
// end of the field content.
type FixedFieldPosition struct {
	Start       int               `json:"start"`
	End         int               `json:"end"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Values      map[string]string `json:"values,omitempty"`
}

// OpenEnded reports whether the position runs to the end of content.
func (p FixedFieldPosition) OpenEnded() bool { return p.End == -1 }

// Contains reports whether a character offset within the field content
// falls inside this position.
func (p FixedFieldPosition) Contains(offset int) bool {
	if p.OpenEnded() {
		return offset >= p.Start
	}
	return offset >= p.Start && offset <= p.End
}

// PositionTable maps position names to their definitions for one tag.
type PositionTable map[string]FixedFieldPosition
