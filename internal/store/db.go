// Package store persists contacts in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tartampluch/go-partytype/internal/config"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS contacts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	type       TEXT NOT NULL CHECK (type IN ('organization', 'person')),
	name       TEXT NOT NULL,
	first_name TEXT,
	last_name  TEXT,
	name_order TEXT CHECK (name_order IN ('last_comma_first', 'first_last', 'last_first')),
	gender     TEXT CHECK (gender IN ('male', 'female')),
	active     INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contacts_type ON contacts (type);
CREATE INDEX IF NOT EXISTS idx_contacts_gender ON contacts (gender);
`

// SchemaSQL returns the authoritative schema.
func SchemaSQL() string {
	return schemaSQL
}

// Open opens (or creates) the database at path and applies the schema.
// Use config.SQLiteMemory for a throwaway database.
func Open(path string) (*sql.DB, error) {
	if path != config.SQLiteMemory {
		if err := os.MkdirAll(filepath.Dir(path), config.DirPermUserRWX); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
		}
	}

	db, err := sql.Open(config.SQLiteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDBOpen, err)
	}
	if path == config.SQLiteMemory {
		// Every new connection to :memory: is a fresh, empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrDBPragma, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrDBSchema, err)
	}

	slog.Debug(config.MsgDBOpened,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, path,
	)
	return db, nil
}

// DefaultPath returns the database location in the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.AppID, config.DBFileName), nil
}
