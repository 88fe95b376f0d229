package ipa

import "testing"

func stress(sym string) *PhoElement {
	return &PhoElement{
		Char: []rune(sym)[0], Symbol: sym, Display: sym,
		Type: TypeSuprasegmental, Role: RoleStress, Kind: KindStress,
	}
}

func sampleTranscript() Transcript {
	return Transcript{
		{diacritic("ʰ", RoleDiacriticRight)}, // stray diacritic, no base
		{consonant("p"), diacritic("ʰ", RoleDiacriticRight)},
		{stress("ˈ")},
		{vowel("æ")},
		{WordBoundary()},
		{consonant("t")},
		{}, // empty entry from a trailing flush
	}
}

func TestSegmentsSkipsInvalidEntries(t *testing.T) {
	var got []string
	for seg := range sampleTranscript().Segments() {
		got = append(got, seg.String())
	}
	want := []string{"pʰ", "æ", "t"}
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSegmentsEarlyStop(t *testing.T) {
	count := 0
	for range sampleTranscript().Segments() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iterated %d segments after break, want 1", count)
	}
}

func TestFirstSegment(t *testing.T) {
	if seg := sampleTranscript().FirstSegment(); seg == nil || seg.String() != "pʰ" {
		t.Errorf("FirstSegment() = %v, want pʰ", seg)
	}

	empty := Transcript{{stress("ˈ")}, {WordBoundary()}}
	if seg := empty.FirstSegment(); seg != nil {
		t.Errorf("FirstSegment() of segmentless transcript = %v, want nil", seg)
	}
}

func TestBasesString(t *testing.T) {
	if got := sampleTranscript().BasesString(); got != "pæt" {
		t.Errorf("BasesString() = %q, want %q", got, "pæt")
	}

	bases := sampleTranscript().Bases()
	if len(bases) != 3 || bases[0].Symbol != "p" {
		t.Errorf("Bases() = %v, want [p æ t]", bases)
	}
}

func TestTranscriptString(t *testing.T) {
	if got := sampleTranscript().String(); got != "ʰpʰˈæ t" {
		t.Errorf("String() = %q, want %q", got, "ʰpʰˈæ t")
	}
}
