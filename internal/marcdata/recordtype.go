package marcdata

import "strings"

// RecordType selects which fixed-field layout tables apply. The same
// tag number (notably 008) packs different byte layouts per type.
type RecordType string

const (
	Bibliographic  RecordType = "bibliographic"
	Holdings       RecordType = "holdings"
	Authority      RecordType = "authority"
	Classification RecordType = "classification"
	Community      RecordType = "community"
)

// leaderByteSixTable maps leader byte 6 to a record type. Upstream
// documentation tables disagree on at least one code: "s" (serial
// item) appears under both bibliographic material and holdings. The
// table is evaluated in declaration order, first match wins, so "s"
// resolves to bibliographic here. Treated as a data-quality caveat,
// not corrected.
var leaderByteSixTable = []struct {
	codes string
	rt    RecordType
}{
	{"acdefgijkmoprst", Bibliographic},
	{"suvxy", Holdings},
	{"z", Authority},
	{"w", Classification},
	{"q", Community},
}

// RecordTypeFromLeader derives the record type from byte 6 of a leader
// payload. Short or unrecognized leaders default to bibliographic.
func RecordTypeFromLeader(leader string) RecordType {
	if len(leader) <= 6 {
		return Bibliographic
	}
	c := leader[6]
	for _, entry := range leaderByteSixTable {
		if strings.IndexByte(entry.codes, c) >= 0 {
			return entry.rt
		}
	}
	return Bibliographic
}
