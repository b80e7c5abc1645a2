package parser

import "strings"

// Format identifies which of the two surface syntaxes a document uses.
type Format int

const (
	FormatMRK Format = iota
	FormatLine
)

func (f Format) String() string {
	if f == FormatLine {
		return "line"
	}
	return "mrk"
}

// DetectFormat classifies a document by its first non-blank line: a
// leading '=' means MRK, anything else means line mode. Documents with
// no non-blank lines default to MRK.
func DetectFormat(text string) Format {
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasPrefix(stripped, "=") {
			return FormatMRK
		}
		return FormatLine
	}
	return FormatMRK
}
