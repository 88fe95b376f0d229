// Package ipa provides the core data model for IPA transcriptions:
// symbol records, classified phonetic elements, segments, and transcripts.
package ipa

// Role describes how a symbol attaches to or delimits a segment.
type Role string

const (
	RoleBase           Role = "base"
	RoleDiacriticLeft  Role = "diacritic_left"
	RoleDiacriticRight Role = "diacritic_right"
	RoleCompoundRight  Role = "compound_right"
	RoleBoundary       Role = "boundary"
	RoleStress         Role = "stress"
	RoleSwitcher       Role = "role_switcher"
)

// PhoneType is the broad phonetic category of a symbol.
type PhoneType string

const (
	TypeConsonant      PhoneType = "Consonant"
	TypeVowel          PhoneType = "Vowel"
	TypeImplosive      PhoneType = "Implosive"
	TypeClick          PhoneType = "Click"
	TypeSuprasegmental PhoneType = "Suprasegmental"
	TypeDiacritic      PhoneType = "Diacritic"
	TypeLigature       PhoneType = "Ligature"
)

// ConsonantFeatures holds the articulatory features of a consonant record.
type ConsonantFeatures struct {
	Voice    string `yaml:"voice" json:"voice"`
	Place    string `yaml:"place" json:"place"`
	Manner   string `yaml:"manner" json:"manner"`
	Sonority int    `yaml:"sonority" json:"sonority"`
}

// VowelFeatures holds the articulatory features of a vowel record.
type VowelFeatures struct {
	Backness string `yaml:"backness" json:"backness"`
	Height   string `yaml:"height" json:"height"`
	Rounding string `yaml:"rounding" json:"rounding"`
}

// SymbolRecord is one row of the symbol reference table, keyed by a
// single-character grapheme.
type SymbolRecord struct {
	Symbol      string    `yaml:"symbol" json:"symbol"`
	Description string    `yaml:"description" json:"description"`
	Display     string    `yaml:"display" json:"display"`
	Name        string    `yaml:"name" json:"name"`
	Unicode     string    `yaml:"unicode" json:"unicode"` // e.g. "U+0070"
	Type        PhoneType `yaml:"type" json:"type"`
	Role        Role      `yaml:"role" json:"role"`

	Consonant ConsonantFeatures `yaml:"consonant,omitempty" json:"consonant,omitempty"`
	Vowel     VowelFeatures     `yaml:"vowel,omitempty" json:"vowel,omitempty"`
}

// Kind is the classification variant of a PhoElement.
type Kind int

const (
	KindUnclassified Kind = iota
	KindConsonant
	KindVowel
	KindDiacritic
	KindLigature
	KindBoundary
	KindStress
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindConsonant:
		return "consonant"
	case KindVowel:
		return "vowel"
	case KindDiacritic:
		return "diacritic"
	case KindLigature:
		return "ligature"
	case KindBoundary:
		return "boundary"
	case KindStress:
		return "stress"
	default:
		return "unclassified"
	}
}

// PhoElement is one classified phonetic element: a single source character
// together with its resolved symbol table data and classification variant.
type PhoElement struct {
	Char    rune      `json:"char"`
	Symbol  string    `json:"symbol"`
	Display string    `json:"display"`
	Type    PhoneType `json:"type"`
	Role    Role      `json:"role"`
	Kind    Kind      `json:"kind"`

	// Record is the resolved symbol table row, nil for the synthetic
	// word boundary produced for whitespace.
	Record *SymbolRecord `json:"-"`
}

// WordBoundary returns the synthetic element representing a whitespace
// word boundary. It never consults the symbol table.
func WordBoundary() *PhoElement {
	return &PhoElement{
		Char:    ' ',
		Symbol:  " ",
		Display: " ",
		Type:    TypeSuprasegmental,
		Role:    RoleBoundary,
		Kind:    KindBoundary,
	}
}

// IsBase reports whether the element is the base glyph of a segment.
func (e *PhoElement) IsBase() bool {
	return e.Role == RoleBase
}

// Equal compares two elements by character, resolved symbol, type, and
// role. Position and parent metadata are deliberately excluded.
func (e *PhoElement) Equal(other *PhoElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Char == other.Char &&
		e.Symbol == other.Symbol &&
		e.Type == other.Type &&
		e.Role == other.Role
}

// String returns the display form of the element.
func (e *PhoElement) String() string {
	return e.Display
}

// Transcript is the ordered output of tokenizing one input string. Each
// entry is either the component list of a segment, a singleton boundary,
// or a singleton stress marker. It is built once per tokenize call and
// not mutated afterwards.
type Transcript [][]*PhoElement

// String joins the resolved symbols of every entry in order, which
// reproduces the stripped and trimmed input.
func (t Transcript) String() string {
	var out []byte
	for _, entry := range t {
		for _, el := range entry {
			out = append(out, el.Symbol...)
		}
	}
	return string(out)
}
