package symtab

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/phonlab/ipa/internal/ipa"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS symbols (
	symbol      TEXT PRIMARY KEY,
	description TEXT,
	display     TEXT,
	name        TEXT,
	unicode     TEXT,
	type        TEXT,
	role        TEXT,
	voice       TEXT,
	place       TEXT,
	manner      TEXT,
	sonority    INTEGER,
	backness    TEXT,
	height      TEXT,
	rounding    TEXT
)`

// LoadSQLite reads a symbol table from the symbols table of a SQLite
// database.
func LoadSQLite(path string) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening symbol database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT symbol, description, display, name, unicode, type, role,
		       voice, place, manner, sonority, backness, height, rounding
		FROM symbols
	`)
	if err != nil {
		return nil, fmt.Errorf("querying symbols: %w", err)
	}
	defer rows.Close()

	t := New()
	for rows.Next() {
		var rec ipa.SymbolRecord
		if err := rows.Scan(
			&rec.Symbol, &rec.Description, &rec.Display, &rec.Name,
			&rec.Unicode, &rec.Type, &rec.Role,
			&rec.Consonant.Voice, &rec.Consonant.Place, &rec.Consonant.Manner,
			&rec.Consonant.Sonority,
			&rec.Vowel.Backness, &rec.Vowel.Height, &rec.Vowel.Rounding,
		); err != nil {
			return nil, fmt.Errorf("scanning symbol row: %w", err)
		}
		if rec.Display == "" {
			rec.Display = rec.Symbol
		}
		if err := t.Add(&rec); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading symbols: %w", err)
	}
	return t, nil
}

// SaveSQLite writes the table to a SQLite database, replacing any
// existing symbols table contents.
func SaveSQLite(path string, t *Table) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening symbol database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating symbols table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM symbols`); err != nil {
		return fmt.Errorf("clearing symbols table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO symbols (symbol, description, display, name, unicode,
		                     type, role, voice, place, manner, sonority,
		                     backness, height, rounding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range t.Records() {
		if _, err := stmt.Exec(
			rec.Symbol, rec.Description, rec.Display, rec.Name,
			rec.Unicode, string(rec.Type), string(rec.Role),
			rec.Consonant.Voice, rec.Consonant.Place, rec.Consonant.Manner,
			rec.Consonant.Sonority,
			rec.Vowel.Backness, rec.Vowel.Height, rec.Vowel.Rounding,
		); err != nil {
			return fmt.Errorf("inserting symbol %q: %w", rec.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing symbols: %w", err)
	}
	return nil
}
