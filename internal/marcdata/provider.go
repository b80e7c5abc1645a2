package marcdata

import (
	"sort"
)

// Provider is the read-only lookup contract the parsing core depends
// on. Implementations are populated once at startup and never mutated,
// so concurrent lookups need no locking.
type Provider interface {
	GetTagDefinition(tag string) (*TagDefinition, bool)
	GetSubfieldDefinition(tag, code string) (*SubfieldDefinition, bool)
	IsFixedField(tag string, rt RecordType) bool
	GetPositionInfo(tag string, charOffset int, rt RecordType) (*FixedFieldPosition, bool)
	GetAllTags() []string
	GetSubfieldsForTag(tag string) []string
}

// StaticData is the in-memory Provider used in production, built from
// JSON definition files or the sqlite store.
type StaticData struct {
	bibliographic map[string]TagDefinition
	holdings      map[string]TagDefinition
	fixedFields   map[RecordType]map[string]PositionTable
}

// New builds a provider from already-parsed tables. Nil maps are
// treated as empty.
func New(
	bibliographic, holdings map[string]TagDefinition,
	fixedFields map[RecordType]map[string]PositionTable,
) *StaticData {
	if bibliographic == nil {
		bibliographic = map[string]TagDefinition{}
	}
	if holdings == nil {
		holdings = map[string]TagDefinition{}
	}
	if fixedFields == nil {
		fixedFields = map[RecordType]map[string]PositionTable{}
	}
	return &StaticData{
		bibliographic: bibliographic,
		holdings:      holdings,
		fixedFields:   fixedFields,
	}
}

// Empty is the degraded provider used when reference data fails to
// load: every lookup is absent, nothing crashes.
func Empty() *StaticData {
	return New(nil, nil, nil)
}

// GetTagDefinition checks bibliographic tags first, then holdings.
func (d *StaticData) GetTagDefinition(tag string) (*TagDefinition, bool) {
	if def, ok := d.bibliographic[tag]; ok {
		return &def, true
	}
	if def, ok := d.holdings[tag]; ok {
		return &def, true
	}
	return nil, false
}

func (d *StaticData) GetSubfieldDefinition(tag, code string) (*SubfieldDefinition, bool) {
	def, ok := d.GetTagDefinition(tag)
	if !ok {
		return nil, false
	}
	sub, ok := def.Subfields[code]
	if !ok {
		return nil, false
	}
	return &sub, true
}

func (d *StaticData) IsFixedField(tag string, rt RecordType) bool {
	return len(d.positionTable(tag, rt)) > 0
}

// GetPositionInfo finds the position definition covering a character
// offset within the field content. Candidate positions are scanned in
// map order; ranges for a well-formed tag never overlap, so order does
// not matter.
func (d *StaticData) GetPositionInfo(tag string, charOffset int, rt RecordType) (*FixedFieldPosition, bool) {
	for _, pos := range d.positionTable(tag, rt) {
		if pos.Contains(charOffset) {
			p := pos
			return &p, true
		}
	}
	return nil, false
}

func (d *StaticData) GetAllTags() []string {
	seen := map[string]struct{}{}
	var tags []string
	for tag := range d.bibliographic {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	for tag := range d.holdings {
		if _, ok := seen[tag]; !ok {
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

func (d *StaticData) GetSubfieldsForTag(tag string) []string {
	def, ok := d.GetTagDefinition(tag)
	if !ok {
		return nil
	}
	codes := make([]string, 0, len(def.Subfields))
	for code := range def.Subfields {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// positionTable resolves the two-level record-type → tag lookup,
// falling back to the bibliographic layout when the record type has no
// table for the tag.
func (d *StaticData) positionTable(tag string, rt RecordType) PositionTable {
	if tables, ok := d.fixedFields[rt]; ok {
		if table, ok := tables[tag]; ok {
			return table
		}
	}
	if rt != Bibliographic {
		if tables, ok := d.fixedFields[Bibliographic]; ok {
			return tables[tag]
		}
	}
	return nil
}

// BibliographicTags exposes the bibliographic table for exporting.
func (d *StaticData) BibliographicTags() map[string]TagDefinition {
	return d.bibliographic
}

// HoldingsTags exposes the holdings table for exporting.
func (d *StaticData) HoldingsTags() map[string]TagDefinition {
	return d.holdings
}

// FixedFieldTables exposes the fixed-field layouts for exporting.
func (d *StaticData) FixedFieldTables() map[RecordType]map[string]PositionTable {
	return d.fixedFields
}

// Counts reports how many definitions are loaded, for logging and the
// data info command.
func (d *StaticData) Counts() (bibliographic, holdings, fixedFieldTables int) {
	for _, tables := range d.fixedFields {
		fixedFieldTables += len(tables)
	}
	return len(d.bibliographic), len(d.holdings), fixedFieldTables
}
