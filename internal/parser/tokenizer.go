package parser

// Tokenizer parses single lines of one surface syntax into Fields and
// answers layout questions the position resolver needs.
type Tokenizer interface {
	// ParseLine returns nil for lines that match no recognized MARC
	// shape. The caller decides whether that is an error.
	ParseLine(line string, lineNumber int) *Field

	// IsMARCLine reports whether the line looks like it is meant to be
	// a MARC field line in this syntax (it may still fail to parse).
	IsMARCLine(line string) bool

	// TagEnd is the last character offset of the tag display region:
	// 4 for MRK's "=XXX" plus gap, 2 for line mode's bare "XXX".
	TagEnd() int

	// IndicatorPositions locates the two single-character indicator
	// slots within a data-field line.
	IndicatorPositions(line string) (ind1, ind2 int, ok bool)

	// ContentStart is the offset where the field payload begins, after
	// the tag and any spacer. -1 when the tag cannot be located.
	ContentStart(line string, field *Field) int
}

// ForFormat selects the tokenizer implementation for a surface syntax.
func ForFormat(f Format) Tokenizer {
	if f == FormatLine {
		return &LineTokenizer{}
	}
	return &MRKTokenizer{}
}
