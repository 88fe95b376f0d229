// Package symtab loads and serves the IPA symbol reference table.
//
// A Table is keyed by single-rune grapheme and is immutable once loaded;
// it may be shared by any number of concurrent readers.
package symtab

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/phonlab/ipa/internal/ipa"
)

// Table maps graphemes to their symbol records.
type Table struct {
	records map[rune]*ipa.SymbolRecord
}

// New creates an empty table.
func New() *Table {
	return &Table{records: make(map[rune]*ipa.SymbolRecord)}
}

// Add inserts a record. The record's symbol must be exactly one rune.
// A later Add for the same grapheme replaces the earlier record, which
// is how user overlays shadow the embedded defaults.
func (t *Table) Add(rec *ipa.SymbolRecord) error {
	r, size := utf8.DecodeRuneInString(rec.Symbol)
	if r == utf8.RuneError || size != len(rec.Symbol) {
		return fmt.Errorf("symbol %q must be a single character", rec.Symbol)
	}
	t.records[r] = rec
	return nil
}

// Lookup resolves a grapheme to its record.
func (t *Table) Lookup(r rune) (*ipa.SymbolRecord, bool) {
	rec, ok := t.records[r]
	return rec, ok
}

// Size returns the number of records in the table.
func (t *Table) Size() int {
	return len(t.records)
}

// Records returns all records ordered by codepoint, for export and
// display.
func (t *Table) Records() []*ipa.SymbolRecord {
	runes := make([]rune, 0, len(t.records))
	for r := range t.records {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	out := make([]*ipa.SymbolRecord, len(runes))
	for i, r := range runes {
		out[i] = t.records[r]
	}
	return out
}

// Merge copies every record of other into t, replacing collisions.
func (t *Table) Merge(other *Table) {
	for r, rec := range other.records {
		t.records[r] = rec
	}
}
