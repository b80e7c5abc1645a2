package parser

import "strings"

// ParseDocument tokenizes every line and groups fields into records.
// A leader starts a new record once the current one holds anything; a
// document without leaders yields one implicit record. Lines that do
// not parse are skipped here (the validator reports them).
func ParseDocument(text string, tok Tokenizer) []*Record {
	var records []*Record
	current := &Record{}

	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		field := tok.ParseLine(line, i+1)
		if field == nil {
			continue
		}
		if field.Kind == KindLeader {
			if current.Leader != nil || len(current.Fields) > 0 {
				records = append(records, current)
				current = &Record{}
			}
			current.Leader = field
		} else {
			current.Fields = append(current.Fields, field)
		}
	}

	if current.Leader != nil || len(current.Fields) > 0 {
		records = append(records, current)
	}
	return records
}

// RecordForLine returns the record containing the given 1-based line
// number, or nil when no record spans it.
func RecordForLine(records []*Record, lineNumber int) *Record {
	var found *Record
	for _, rec := range records {
		first := rec.firstLine()
		if first == 0 || first > lineNumber {
			break
		}
		found = rec
	}
	return found
}

func (r *Record) firstLine() int {
	if r.Leader != nil {
		return r.Leader.LineNumber
	}
	if len(r.Fields) > 0 {
		return r.Fields[0].LineNumber
	}
	return 0
}
