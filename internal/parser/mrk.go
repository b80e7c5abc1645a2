package parser

import (
	"regexp"
	"strings"
)

// MRK shapes:
//
//	=LDR  00000pam  2200000 a 4500
//	=001  123456789
//	=245  10$aTitle$bsubtitle/$cby Author.
var (
	mrkLeaderPattern  = regexp.MustCompile(`^=LDR\s+(.+)$`)
	mrkControlPattern = regexp.MustCompile(`^=([0-9]{3})\s+(.+)$`)
	mrkDataPattern    = regexp.MustCompile(`^=([0-9]{3})\s+([^$])([^$])(.*)$`)

	// Indicator slots sit directly before the first subfield marker.
	mrkIndicatorPattern = regexp.MustCompile(`=([0-9]{3})\s+([^$])([^$])\$`)
)

// MRKTokenizer parses the MRK surface syntax.
type MRKTokenizer struct{}

func (t *MRKTokenizer) ParseLine(line string, lineNumber int) *Field {
	if !strings.HasPrefix(line, "=") {
		return nil
	}

	if m := mrkLeaderPattern.FindStringSubmatch(line); m != nil {
		return &Field{
			Tag:        LeaderTag,
			Kind:       KindLeader,
			Content:    m[1],
			LineNumber: lineNumber,
			EndOffset:  len(line),
		}
	}

	if m := mrkControlPattern.FindStringSubmatch(line); m != nil && m[1] < "010" {
		return &Field{
			Tag:        m[1],
			Kind:       KindControl,
			Content:    m[2],
			LineNumber: lineNumber,
			EndOffset:  len(line),
		}
	}

	if m := mrkDataPattern.FindStringSubmatch(line); m != nil {
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

func (t *MRKTokenizer) IsMARCLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "=")
}

func (t *MRKTokenizer) TagEnd() int { return 4 }

func (t *MRKTokenizer) IndicatorPositions(line string) (int, int, bool) {
	m := mrkIndicatorPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return 0, 0, false
	}
	return m[4], m[6], true
}

func (t *MRKTokenizer) ContentStart(line string, field *Field) int {
	return contentStart(line, "="+field.Tag)
}

// normalizeIndicator maps blank source indicators to MARC's single
// space character.
func normalizeIndicator(ind string) string {
	if strings.TrimSpace(ind) == "" {
		return " "
	}
	return ind
}

// contentStart locates the payload offset after the tag token and any
// spaces that follow it.
func contentStart(line, tagToken string) int {
	idx := strings.Index(line, tagToken)
	if idx == -1 {
		return -1
	}
	start := idx + len(tagToken)
	for start < len(line) && line[start] == ' ' {
		start++
	}
	return start
}
