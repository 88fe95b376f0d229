package ipa

import "strings"

// LigatureJoiner connects the bases of a compound phone in string form
// (U+0361 combining double inverted breve).
const LigatureJoiner = "͡"

// Segment is one phonological segment: a base glyph plus its attached
// diacritic and ligature material, in source order.
type Segment struct {
	components []*PhoElement
	str        string
}

// NewSegment builds a segment from a component list, typically one entry
// of a Transcript. It fails with a *ValidationError when no component
// has the base role.
func NewSegment(components []*PhoElement) (*Segment, error) {
	hasBase := false
	for _, c := range components {
		if c.IsBase() {
			hasBase = true
			break
		}
	}
	if !hasBase {
		return nil, &ValidationError{Reason: "segment must have at least one base component"}
	}

	var sb strings.Builder
	for _, c := range components {
		sb.WriteString(c.Symbol)
	}
	return &Segment{components: components, str: sb.String()}, nil
}

// Components returns the segment's elements in source order.
func (s *Segment) Components() []*PhoElement {
	return s.components
}

// Len returns the number of components.
func (s *Segment) Len() int {
	return len(s.components)
}

// String returns the concatenated resolved symbols of all components.
// It also serves as the segment's hash key.
func (s *Segment) String() string {
	return s.str
}

// Base returns the base element(s) of the segment. More than one base
// occurs only in compound phones.
func (s *Segment) Base() []*PhoElement {
	return s.byRole(RoleBase)
}

// LeftDiacritics returns the components attaching to the left of the base.
func (s *Segment) LeftDiacritics() []*PhoElement {
	return s.byRole(RoleDiacriticLeft)
}

// RightDiacritics returns the components attaching to the right of the base.
func (s *Segment) RightDiacritics() []*PhoElement {
	return s.byRole(RoleDiacriticRight)
}

func (s *Segment) byRole(role Role) []*PhoElement {
	var out []*PhoElement
	for _, c := range s.components {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

// BaseString returns the base of the segment in string form. Compound
// bases are joined with the ligature joiner.
func (s *Segment) BaseString() string {
	base := s.Base()
	if len(base) == 1 {
		return base[0].Symbol
	}
	parts := make([]string, len(base))
	for i, b := range base {
		parts[i] = b.Symbol
	}
	return strings.Join(parts, LigatureJoiner)
}

// BaseElement returns the single base element of the segment. Compound
// bases have no single element representation and fail loudly rather
// than guessing.
func (s *Segment) BaseElement() (*PhoElement, error) {
	base := s.Base()
	if len(base) > 1 {
		return nil, &UnsupportedFeatureError{
			Feature: "single-element base of compound phone " + s.str,
		}
	}
	return base[0], nil
}

// Equal compares two segments by their component sequences.
func (s *Segment) Equal(other *Segment) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.components) != len(other.components) {
		return false
	}
	for i, c := range s.components {
		if !c.Equal(other.components[i]) {
			return false
		}
	}
	return true
}
