package parser

import (
	"regexp"
	"strings"
)

// Line-mode shapes:
//
//	00000pam  2200000 a 4500      leader, bare 24 characters
//	001 123456789                 control field
//	245 10 $a Title $b subtitle   data field, payload begins with a space
var (
	lineLeaderPattern  = regexp.MustCompile(`^\d{5}.{19}$`)
	lineControlPattern = regexp.MustCompile(`^(00[1-9])\s(.+)$`)
	lineDataPattern    = regexp.MustCompile(`^(\d{3})\s(.)(.)(\s.*)$`)

	lineIndicatorPattern = regexp.MustCompile(`^(\d{3})\s(.)(.)\s`)
	lineMARCPattern      = regexp.MustCompile(`^\d`)
)

// LineTokenizer parses the line-mode surface syntax.
type LineTokenizer struct{}

func (t *LineTokenizer) ParseLine(line string, lineNumber int) *Field {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return nil
	}

	if lineLeaderPattern.MatchString(stripped) {
		return &Field{
			Tag:        LeaderTag,
			Kind:       KindLeader,
			Content:    stripped,
			LineNumber: lineNumber,
			EndOffset:  len(line),
		}
	}

	if m := lineControlPattern.FindStringSubmatch(line); m != nil {
		return &Field{
			Tag:        m[1],
			Kind:       KindControl,
			Content:    m[2],
			LineNumber: lineNumber,
			EndOffset:  len(line),
		}
	}

	if m := lineDataPattern.FindStringSubmatch(line); m != nil {
		return &Field{
			Tag:        m[1],
			Kind:       KindData,
			Indicator1: normalizeIndicator(m[2]),
			Indicator2: normalizeIndicator(m[3]),
			Subfields:  ParseSubfields(m[4]),
			LineNumber: lineNumber,
			EndOffset:  len(line),
		}
	}

	return nil
}

func (t *LineTokenizer) IsMARCLine(line string) bool {
	return lineMARCPattern.MatchString(strings.TrimSpace(line))
}

func (t *LineTokenizer) TagEnd() int { return 2 }

func (t *LineTokenizer) IndicatorPositions(line string) (int, int, bool) {
	m := lineIndicatorPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return 0, 0, false
	}
	return m[4], m[6], true
}

func (t *LineTokenizer) ContentStart(line string, field *Field) int {
	return contentStart(line, field.Tag)
}
