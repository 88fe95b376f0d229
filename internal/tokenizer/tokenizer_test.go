package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/symtab"
)

func defaultTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	table, err := symtab.Default()
	if err != nil {
		t.Fatalf("loading default table: %v", err)
	}
	tok := New(table)
	tok.Warn = func(string) {}
	return tok
}

// entrySymbols flattens a transcript into the joined symbols of each
// entry, which keeps expected values readable.
func entrySymbols(tr ipa.Transcript) []string {
	out := make([]string, len(tr))
	for i, entry := range tr {
		var sb strings.Builder
		for _, el := range entry {
			sb.WriteString(el.Symbol)
		}
		out[i] = sb.String()
	}
	return out
}

func TestClassifyVariants(t *testing.T) {
	tok := defaultTokenizer(t)

	tests := []struct {
		char rune
		kind ipa.Kind
		role ipa.Role
	}{
		{'p', ipa.KindConsonant, ipa.RoleBase},
		{'ɓ', ipa.KindConsonant, ipa.RoleBase}, // implosive
		{'ǃ', ipa.KindConsonant, ipa.RoleBase}, // click
		{'o', ipa.KindVowel, ipa.RoleBase},
		{'ʰ', ipa.KindDiacritic, ipa.RoleDiacriticRight},
		{'ᵐ', ipa.KindDiacritic, ipa.RoleDiacriticLeft},
		{'͡', ipa.KindLigature, ipa.RoleCompoundRight},
		{'.', ipa.KindBoundary, ipa.RoleBoundary},
		{'ˈ', ipa.KindStress, ipa.RoleStress},
	}
	for _, tt := range tests {
		el, err := tok.Classify(tt.char)
		if err != nil {
			t.Fatalf("Classify(%q): %v", string(tt.char), err)
		}
		if el.Kind != tt.kind {
			t.Errorf("Classify(%q).Kind = %v, want %v", string(tt.char), el.Kind, tt.kind)
		}
		if el.Role != tt.role {
			t.Errorf("Classify(%q).Role = %v, want %v", string(tt.char), el.Role, tt.role)
		}
	}
}

func TestClassifyWhitespace(t *testing.T) {
	tok := defaultTokenizer(t)

	for _, r := range []rune{' ', '\t', '\n'} {
		el, err := tok.Classify(r)
		if err != nil {
			t.Fatalf("Classify(%q): %v", string(r), err)
		}
		if el.Kind != ipa.KindBoundary || el.Role != ipa.RoleBoundary {
			t.Errorf("Classify(%q) = kind %v role %v, want word boundary", string(r), el.Kind, el.Role)
		}
		if el.Record != nil {
			t.Errorf("Classify(%q) consulted the symbol table", string(r))
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	tok := defaultTokenizer(t)

	_, err := tok.Classify('€')
	var unknown *ipa.UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("Classify('€') error = %v, want *ipa.UnknownSymbolError", err)
	}
	if unknown.Char != '€' {
		t.Errorf("unknown.Char = %q, want '€'", unknown.Char)
	}
}

func TestClassifyFallback(t *testing.T) {
	table := symtab.New()
	if err := table.Add(&ipa.SymbolRecord{
		Symbol: "˥", Display: "˥", Type: "Tone", Role: "tone",
	}); err != nil {
		t.Fatal(err)
	}

	var warned string
	tok := New(table)
	tok.Warn = func(msg string) { warned = msg }

	el, err := tok.Classify('˥')
	if err != nil {
		t.Fatalf("Classify('˥'): %v", err)
	}
	if el.Kind != ipa.KindUnclassified {
		t.Errorf("Kind = %v, want KindUnclassified", el.Kind)
	}
	if warned == "" {
		t.Error("expected a classification warning")
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok := defaultTokenizer(t)

	tr, err := tok.Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize(\"\"): %v", err)
	}
	if len(tr) != 1 || len(tr[0]) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want a single empty entry", entrySymbols(tr))
	}
}

func TestTokenizeWords(t *testing.T) {
	tok := defaultTokenizer(t)

	tr, err := tok.Tokenize("pʰæt kʰaʧ suto")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []string{"pʰ", "æ", "t", " ", "kʰ", "a", "ʧ", " ", "s", "u", "t", "o"}
	got := entrySymbols(tr)
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	tok := defaultTokenizer(t)

	tests := []struct {
		input string
		want  string
	}{
		{"pʰæt", "pʰæt"},
		{"[pʰæt]", "pʰæt"},
		{"/suto/", "suto"},
		{"  pʰæt\tkʰaʧ \n", "pʰæt kʰaʧ"},
	}
	for _, tt := range tests {
		tr, err := tok.Tokenize(tt.input)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.input, err)
		}
		if got := tr.String(); got != tt.want {
			t.Errorf("Tokenize(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeWhitespaceCoalescing(t *testing.T) {
	tok := defaultTokenizer(t)

	one, err := tok.Tokenize("a b")
	if err != nil {
		t.Fatal(err)
	}
	two, err := tok.Tokenize("a  b")
	if err != nil {
		t.Fatal(err)
	}

	if len(one) != len(two) {
		t.Fatalf("entry counts differ: %v vs %v", entrySymbols(one), entrySymbols(two))
	}
	for i := range one {
		if len(one[i]) != len(two[i]) {
			t.Fatalf("entry %d differs: %v vs %v", i, entrySymbols(one), entrySymbols(two))
		}
		for j := range one[i] {
			if !one[i][j].Equal(two[i][j]) {
				t.Errorf("entry %d element %d differ", i, j)
			}
		}
	}

	boundaries := 0
	for _, entry := range two {
		if len(entry) == 1 && entry[0].Char == ' ' {
			boundaries++
		}
	}
	if boundaries != 1 {
		t.Errorf("boundary entries = %d, want 1", boundaries)
	}
}

func TestTokenizeLeftDiacriticEndsSegment(t *testing.T) {
	tok := defaultTokenizer(t)

	// ᵐ attaches leftward, so it closes the open segment for t and
	// starts the one for o.
	tr, err := tok.Tokenize("tᵐo")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"t", "ᵐo"}
	got := entrySymbols(tr)
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("entries = %v, want %v", got, want)
	}
}

func TestTokenizeLigatureContinuation(t *testing.T) {
	tok := defaultTokenizer(t)

	// The ligature joiner extends the open segment; the following base
	// starts a new one.
	tr, err := tok.Tokenize("t͡ʃo")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"t͡", "ʃ", "o"}
	got := entrySymbols(tr)
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeStressAndBoundaries(t *testing.T) {
	tok := defaultTokenizer(t)

	tr, err := tok.Tokenize("ˌ‖|ᶬhi.toˡˈ|ᵐtə̃")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ˌ", "‖", "|", "ᶬh", "i", ".", "t", "oˡ", "ˈ", "|", "ᵐt", "ə̃"}
	got := entrySymbols(tr)
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenizeUnknownAborts(t *testing.T) {
	tok := defaultTokenizer(t)

	tr, err := tok.Tokenize("a€")
	if tr != nil {
		t.Errorf("expected no partial transcript, got %v", entrySymbols(tr))
	}
	var unknown *ipa.UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *ipa.UnknownSymbolError", err)
	}
	if !strings.Contains(err.Error(), "€") {
		t.Errorf("error %q does not name the offending character", err)
	}
}

func TestTokenizeRoleSwitcherRejected(t *testing.T) {
	tok := defaultTokenizer(t)

	_, err := tok.Tokenize("ʰ̵to")
	var unsupported *ipa.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want *ipa.UnsupportedFeatureError", err)
	}
}

func TestSegments(t *testing.T) {
	tok := defaultTokenizer(t)

	seq, err := tok.Segments("ⁿaˈʧ̥u")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for seg := range seq {
		got = append(got, seg.String())
	}
	want := []string{"ⁿa", "ʧ̥", "u"}
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}
