package symtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phonlab/ipa/internal/ipa"
)

// Expected CSV columns. Order does not matter; the header row is
// authoritative.
const (
	colSymbol      = "Symbol"
	colDescription = "Description"
	colDisplay     = "Symbol-Display"
	colName        = "Name"
	colUnicode     = "Unicode"
	colType        = "Type"
	colRole        = "Role"
	colVoice       = "Voice"
	colPlace       = "Place"
	colManner      = "Manner"
	colSonority    = "Sonority"
	colBackness    = "Backness"
	colHeight      = "Height"
	colRounding    = "Rounding"
)

// LoadCSV reads a symbol table from a CSV file.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening symbol table: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading symbol table %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a symbol table from CSV data.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[colSymbol]; !ok {
		return nil, fmt.Errorf("missing %q column", colSymbol)
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	t := New()
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		rec := &ipa.SymbolRecord{
			Symbol:      field(row, colSymbol),
			Description: field(row, colDescription),
			Display:     field(row, colDisplay),
			Name:        field(row, colName),
			Unicode:     field(row, colUnicode),
			Type:        ipa.PhoneType(field(row, colType)),
			Role:        ipa.Role(field(row, colRole)),
			Consonant: ipa.ConsonantFeatures{
				Voice:  field(row, colVoice),
				Place:  field(row, colPlace),
				Manner: field(row, colManner),
			},
			Vowel: ipa.VowelFeatures{
				Backness: field(row, colBackness),
				Height:   field(row, colHeight),
				Rounding: field(row, colRounding),
			},
		}
		if s := field(row, colSonority); s != "" {
			son, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("line %d: sonority %q: %w", line, s, err)
			}
			rec.Consonant.Sonority = son
		}
		if rec.Display == "" {
			rec.Display = rec.Symbol
		}
		if err := t.Add(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return t, nil
}
