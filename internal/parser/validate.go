package parser

import (
	"fmt"
	"regexp"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "marc-lsp"

var (
	indicatorShape    = regexp.MustCompile(`^[a-zA-Z0-9 ]$`)
	subfieldCodeShape = regexp.MustCompile(`^[a-z0-9]$`)
)

// Validate tokenizes every line of a document and reports structural
// problems. Unparseable MARC-shaped lines are errors; indicator and
// subfield-code shape violations are warnings. Unknown tags are not a
// validation concern.
func Validate(text string) []protocol.Diagnostic {
	format := DetectFormat(text)
	tok := ForFormat(format)

	var diagnostics []protocol.Diagnostic
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" || !tok.IsMARCLine(line) {
			continue
		}

		field := tok.ParseLine(line, i+1)
		if field == nil {
			diagnostics = append(diagnostics, lineDiagnostic(
				i, line, protocol.DiagnosticSeverityError,
				"Invalid MARC line format",
			))
			continue
		}

		for _, msg := range CheckField(field) {
			diagnostics = append(diagnostics, lineDiagnostic(
				i, line, protocol.DiagnosticSeverityWarning, msg,
			))
		}
	}
	return diagnostics
}

// CheckField validates indicator and subfield-code shape on a parsed
// field and returns one message per violation.
func CheckField(field *Field) []string {
	if field.Kind != KindData {
		return nil
	}

	var errors []string
	if field.Indicator1 != "" && !indicatorShape.MatchString(field.Indicator1) {
		errors = append(errors, fmt.Sprintf(
			"Invalid first indicator %q for field %s", field.Indicator1, field.Tag))
	}
	if field.Indicator2 != "" && !indicatorShape.MatchString(field.Indicator2) {
		errors = append(errors, fmt.Sprintf(
			"Invalid second indicator %q for field %s", field.Indicator2, field.Tag))
	}
	for _, sf := range field.Subfields {
		if !subfieldCodeShape.MatchString(sf.Code) {
			errors = append(errors, fmt.Sprintf(
				"Invalid subfield code %q in field %s", sf.Code, field.Tag))
		}
	}
	return errors
}

func lineDiagnostic(lineIdx int, line string, severity protocol.DiagnosticSeverity, message string) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(lineIdx), Character: 0},
			End:   protocol.Position{Line: uint32(lineIdx), Character: uint32(len(line))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
