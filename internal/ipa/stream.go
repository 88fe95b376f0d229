package ipa

import (
	"iter"
	"strings"
)

// Segments returns a lazy sequence of the well-formed segments in the
// transcript. Entries that fail segment validation (boundaries, stress
// markers, stray leading diacritics) are skipped rather than reported;
// this is a best-effort view for consumers that only want phonological
// segments. Everywhere else validation errors propagate.
func (t Transcript) Segments() iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		for _, entry := range t {
			seg, err := NewSegment(entry)
			if err != nil {
				continue
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// FirstSegment returns the first well-formed segment of the transcript,
// or nil when it contains none.
func (t Transcript) FirstSegment() *Segment {
	for seg := range t.Segments() {
		return seg
	}
	return nil
}

// Bases returns the base element of each well-formed segment in order.
// Compound phones contribute their first base.
func (t Transcript) Bases() []*PhoElement {
	var out []*PhoElement
	for seg := range t.Segments() {
		out = append(out, seg.Base()[0])
	}
	return out
}

// BasesString returns the transcript reduced to base phones only, with
// diacritics and suprasegmentals stripped.
func (t Transcript) BasesString() string {
	var sb strings.Builder
	for _, b := range t.Bases() {
		sb.WriteString(b.Symbol)
	}
	return sb.String()
}
