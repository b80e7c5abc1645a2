// Package parser tokenizes the two textual MARC encodings (MRK and
// line mode) into a shared field model.
package parser

// FieldKind distinguishes the three line shapes of a MARC record.
type FieldKind int

const (
	KindLeader FieldKind = iota
	KindControl
	KindData
)

func (k FieldKind) String() string {
	switch k {
	case KindLeader:
		return "leader"
	case KindControl:
		return "control"
	case KindData:
		return "data"
	}
	return "unknown"
}

// LeaderTag is the sentinel tag for leader lines.
const LeaderTag = "LDR"

// Subfield is one $code+content unit within a data field. Offsets are
// relative to the subfield payload substring, not the full line.
type Subfield struct {
	Code        string
	Content     string
	StartOffset int
	EndOffset   int
}

// Field is one parsed MARC line. Content is set for leader and control
// fields, Subfields for data fields; never both.
type Field struct {
	Tag         string
	Kind        FieldKind
	Indicator1  string
	Indicator2  string
	Content     string
	Subfields   []Subfield
	LineNumber  int
	StartOffset int
	EndOffset   int
}

// Record groups a leader with the fields that follow it.
type Record struct {
	Leader *Field
	Fields []*Field
}
