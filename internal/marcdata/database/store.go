package database

import (
	"database/sql"
	"fmt"

	"github.com/RvanB/marc-lsp/internal/marcdata"
)

// Import writes an already-loaded dataset into the database in one
// transaction, replacing definitions that share a key.
func Import(db *DB, data *marcdata.StaticData) error {
	return db.WithTx(func(tx *sql.Tx) error {
		for _, def := range data.BibliographicTags() {
			if err := UpsertTagDefinition(tx, marcdata.Bibliographic, def); err != nil {
				return err
			}
		}
		for _, def := range data.HoldingsTags() {
			if err := UpsertTagDefinition(tx, marcdata.Holdings, def); err != nil {
				return err
			}
		}
		for rt, tables := range data.FixedFieldTables() {
			for tag, table := range tables {
				if err := UpsertPositionTable(tx, rt, tag, table); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadProvider reads the full dataset out of the database into an
// in-memory provider.
func LoadProvider(db *DB) (*marcdata.StaticData, error) {
	bib, err := db.TagDefinitions(marcdata.Bibliographic)
	if err != nil {
		return nil, fmt.Errorf("failed to load bibliographic tags: %w", err)
	}
	hold, err := db.TagDefinitions(marcdata.Holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings tags: %w", err)
	}
	fixed, err := db.FixedFieldTables()
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed fields: %w", err)
	}
	return marcdata.New(bib, hold, fixed), nil
}
