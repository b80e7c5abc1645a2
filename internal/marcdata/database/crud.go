package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/RvanB/marc-lsp/internal/marcdata"
)

// UpsertTagDefinition writes one tag definition for a record type.
func UpsertTagDefinition(tx *sql.Tx, rt marcdata.RecordType, def marcdata.TagDefinition) error {
	payload, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to marshal tag %s: %w", def.Tag, err)
	}

	_, err = tx.Exec(`
        INSERT INTO tag_definitions (record_type, tag, definition)
        VALUES (?, ?, ?)
        ON CONFLICT(record_type, tag) DO UPDATE SET
            definition = excluded.definition
    `, string(rt), def.Tag, string(payload))
	if err != nil {
		return fmt.Errorf("failed to upsert tag %s: %w", def.Tag, err)
	}
	return nil
}

// UpsertPositionTable writes the fixed-field layout of one tag for a
// record type.
func UpsertPositionTable(tx *sql.Tx, rt marcdata.RecordType, tag string, table marcdata.PositionTable) error {
	payload, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal positions for %s: %w", tag, err)
	}

	_, err = tx.Exec(`
        INSERT INTO fixed_fields (record_type, tag, positions)
        VALUES (?, ?, ?)
        ON CONFLICT(record_type, tag) DO UPDATE SET
            positions = excluded.positions
    `, string(rt), tag, string(payload))
	if err != nil {
		return fmt.Errorf("failed to upsert positions for %s: %w", tag, err)
	}
	return nil
}

// GetTagDefinition reads one tag definition.
func (d *DB) GetTagDefinition(rt marcdata.RecordType, tag string) (*marcdata.TagDefinition, error) {
	var payload string
	err := d.db.QueryRow(
		"SELECT definition FROM tag_definitions WHERE record_type = ? AND tag = ?",
		string(rt), tag,
	).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tag: %w", err)
	}

	var def marcdata.TagDefinition
	if err := json.Unmarshal([]byte(payload), &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag %s: %w", tag, err)
	}
	return &def, nil
}

// TagDefinitions reads all tag definitions for a record type.
func (d *DB) TagDefinitions(rt marcdata.RecordType) (map[string]marcdata.TagDefinition, error) {
	rows, err := d.db.Query(
		"SELECT tag, definition FROM tag_definitions WHERE record_type = ?",
		string(rt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	defs := map[string]marcdata.TagDefinition{}
	for rows.Next() {
		var tag, payload string
		if err := rows.Scan(&tag, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		var def marcdata.TagDefinition
		if err := json.Unmarshal([]byte(payload), &def); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tag %s: %w", tag, err)
		}
		defs[tag] = def
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return defs, nil
}

// FixedFieldTables reads every fixed-field layout, keyed by record
// type and tag.
func (d *DB) FixedFieldTables() (map[marcdata.RecordType]map[string]marcdata.PositionTable, error) {
	rows, err := d.db.Query("SELECT record_type, tag, positions FROM fixed_fields")
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed fields: %w", err)
	}
	defer rows.Close()

	tables := map[marcdata.RecordType]map[string]marcdata.PositionTable{}
	for rows.Next() {
		var rt, tag, payload string
		if err := rows.Scan(&rt, &tag, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan fixed field row: %w", err)
		}
		var table marcdata.PositionTable
		if err := json.Unmarshal([]byte(payload), &table); err != nil {
			return nil, fmt.Errorf("failed to unmarshal positions for %s: %w", tag, err)
		}
		recordType := marcdata.RecordType(rt)
		if tables[recordType] == nil {
			tables[recordType] = map[string]marcdata.PositionTable{}
		}
		tables[recordType][tag] = table
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed field rows: %w", err)
	}
	return tables, nil
}

// Counts reports row counts for the data info command.
func (d *DB) Counts() (tags, fixedFields int, err error) {
	if err = d.db.QueryRow("SELECT COUNT(*) FROM tag_definitions").Scan(&tags); err != nil {
		return 0, 0, fmt.Errorf("failed to count tags: %w", err)
	}
	if err = d.db.QueryRow("SELECT COUNT(*) FROM fixed_fields").Scan(&fixedFields); err != nil {
		return 0, 0, fmt.Errorf("failed to count fixed fields: %w", err)
	}
	return tags, fixedFields, nil
}
