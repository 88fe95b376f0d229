package symtab

import (
	"bytes"
	_ "embed"
	"sync"
)

// The embedded reference table, derived from the Phon IPA symbol map.
//
//go:embed symbols.csv
var defaultCSV []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded symbol table, parsed once per process.
// The returned table is shared; callers must not mutate it.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = ReadCSV(bytes.NewReader(defaultCSV))
	})
	return defaultTable, defaultErr
}

// DefaultCSV returns the raw embedded table, for the init command to
// write a user-editable copy.
func DefaultCSV() []byte {
	return defaultCSV
}
