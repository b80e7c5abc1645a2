package parser

import (
	"regexp"
	"strings"
)

// subfieldPattern matches one $code+content unit. Codes are a single
// lowercase letter or digit; content runs to the next '$' or the end
// of the payload.
var subfieldPattern = regexp.MustCompile(`\$([a-z0-9])([^$]*)`)

// ParseSubfields scans an isolated subfield payload. Both surface
// syntaxes share this algorithm; only payload isolation differs.
// Offsets are relative to the payload substring and content is
// right-trimmed of whitespace.
func ParseSubfields(payload string) []Subfield {
	var subfields []Subfield
	for _, m := range subfieldPattern.FindAllStringSubmatchIndex(payload, -1) {
		code := payload[m[2]:m[3]]
		content := strings.TrimRight(payload[m[4]:m[5]], " \t")
		subfields = append(subfields, Subfield{
			Code:        code,
			Content:     content,
			StartOffset: m[0],
			EndOffset:   m[1],
		})
	}
	return subfields
}
