// Package tokenizer segments IPA transcription strings into phonetic
// elements, segments, boundaries, and stress markers.
package tokenizer

import (
	"fmt"
	"iter"
	"os"
	"strings"
	"unicode"

	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/symtab"
)

// roleSwitcher is the combining short stroke overlay (U+0335) marking a
// role-switched diacritic. Role switching is not implemented; input
// containing it is rejected outright.
const roleSwitcher = '̵'

// Enclosing transcription delimiters are replaced by whitespace before
// scanning.
var delimiters = strings.NewReplacer("[", " ", "]", " ", "\\", " ", "/", " ")

// scanState tracks whether the in-progress segment has seen its base.
type scanState int

const (
	awaitingBase scanState = iota
	inSegment
)

// Tokenizer classifies characters against a symbol table and accumulates
// them into transcript entries. The table is read-only; a Tokenizer may
// be shared across goroutines.
type Tokenizer struct {
	table *symtab.Table

	// Warn receives classification fallback messages. Defaults to
	// stderr.
	Warn func(msg string)
}

// New creates a tokenizer over the given symbol table.
func New(table *symtab.Table) *Tokenizer {
	return &Tokenizer{
		table: table,
		Warn: func(msg string) {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", msg)
		},
	}
}

// Classify resolves a single character to a phonetic element.
//
// Whitespace becomes the synthetic word boundary without a table lookup.
// A character absent from the table returns an *ipa.UnknownSymbolError.
// A record whose role/type combination matches no variant is logged as a
// warning and returned unclassified.
func (t *Tokenizer) Classify(r rune) (*ipa.PhoElement, error) {
	if unicode.IsSpace(r) {
		return ipa.WordBoundary(), nil
	}

	rec, ok := t.table.Lookup(r)
	if !ok {
		return nil, &ipa.UnknownSymbolError{Char: r}
	}

	el := &ipa.PhoElement{
		Char:    r,
		Symbol:  rec.Symbol,
		Display: rec.Display,
		Type:    rec.Type,
		Role:    rec.Role,
		Record:  rec,
	}

	switch {
	case rec.Role == ipa.RoleBase &&
		(rec.Type == ipa.TypeConsonant || rec.Type == ipa.TypeImplosive || rec.Type == ipa.TypeClick):
		el.Kind = ipa.KindConsonant
	case rec.Role == ipa.RoleBase && rec.Type == ipa.TypeVowel:
		el.Kind = ipa.KindVowel
	case rec.Role == ipa.RoleDiacriticLeft || rec.Role == ipa.RoleDiacriticRight:
		el.Kind = ipa.KindDiacritic
	case rec.Role == ipa.RoleCompoundRight:
		el.Kind = ipa.KindLigature
	case rec.Role == ipa.RoleBoundary:
		el.Kind = ipa.KindBoundary
	case rec.Role == ipa.RoleStress:
		el.Kind = ipa.KindStress
	default:
		if t.Warn != nil {
			t.Warn(fmt.Sprintf("symbol %q (role %s, type %s) could not be classified",
				rec.Symbol, rec.Role, rec.Type))
		}
		el.Kind = ipa.KindUnclassified
	}
	return el, nil
}

// segmentEnder reports whether an element with this role closes an open
// segment. A left diacritic belongs to the next segment's base, so it
// ends the current one; a right diacritic or ligature continues it.
func segmentEnder(role ipa.Role) bool {
	switch role {
	case ipa.RoleBase, ipa.RoleDiacriticLeft, ipa.RoleBoundary, ipa.RoleStress:
		return true
	}
	return false
}

// Tokenize scans the input left to right and groups its characters into
// transcript entries: segment component lists, singleton boundaries, and
// singleton stress markers.
//
// An unknown character aborts the whole call with no partial transcript.
// Entries without a base element (stray leading diacritics) are emitted
// as-is; they fail only when a caller builds a Segment from them.
func (t *Tokenizer) Tokenize(input string) (ipa.Transcript, error) {
	input = delimiters.Replace(input)
	if strings.ContainsRune(input, roleSwitcher) {
		return nil, &ipa.UnsupportedFeatureError{Feature: "diacritic role switcher (U+0335)"}
	}
	input = strings.TrimSpace(input)

	var (
		transcript   ipa.Transcript
		buf          []*ipa.PhoElement
		state        = awaitingBase
		lastWasSpace bool
	)

	for _, r := range input {
		if unicode.IsSpace(r) {
			// Runs of whitespace coalesce into one boundary.
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
			transcript = append(transcript, buf)
			buf = nil
			state = awaitingBase
			transcript = append(transcript, []*ipa.PhoElement{ipa.WordBoundary()})
			continue
		}
		lastWasSpace = false

		el, err := t.Classify(r)
		if err != nil {
			return nil, err
		}

		switch el.Role {
		case ipa.RoleBoundary, ipa.RoleStress:
			if state == inSegment {
				transcript = append(transcript, buf)
				buf = nil
				state = awaitingBase
			}
			// Before any base the marker passes straight through; an
			// open buffer of leading diacritics stays put for the next
			// base.
			transcript = append(transcript, []*ipa.PhoElement{el})

		default:
			if state == awaitingBase {
				buf = append(buf, el)
				if el.IsBase() {
					state = inSegment
				}
				continue
			}
			if segmentEnder(el.Role) {
				transcript = append(transcript, buf)
				buf = []*ipa.PhoElement{el}
				if el.IsBase() {
					state = inSegment
				} else {
					state = awaitingBase
				}
				continue
			}
			// Right diacritic or ligature continuation.
			buf = append(buf, el)
		}
	}

	// The final buffer is always flushed, so the empty input yields a
	// single empty entry.
	transcript = append(transcript, buf)
	return transcript, nil
}

// Segments tokenizes the input and returns the lazy sequence of its
// well-formed segments.
func (t *Tokenizer) Segments(input string) (iter.Seq[*ipa.Segment], error) {
	tr, err := t.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return tr.Segments(), nil
}
