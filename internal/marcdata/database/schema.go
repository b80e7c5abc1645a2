package database

import (
	"database/sql"
	"fmt"
)

const schemaVersion = 1

func initSchema(db *sql.DB) error {
	// Check schema version
	var version int
	err := db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := createTables(tx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}

	return tx.Commit()
}

func createTables(tx *sql.Tx) error {
	// Definitions are stored as JSON payloads keyed by record type and
	// tag; the provider deserializes them wholesale at startup.
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS tag_definitions (
            record_type TEXT NOT NULL,
            tag         TEXT NOT NULL,
            definition  TEXT NOT NULL,
            PRIMARY KEY (record_type, tag)
        );

        CREATE TABLE IF NOT EXISTS fixed_fields (
            record_type TEXT NOT NULL,
            tag         TEXT NOT NULL,
            positions   TEXT NOT NULL,
            PRIMARY KEY (record_type, tag)
        );
    `)
	return err
}
