package ipa

import "fmt"

// UnknownSymbolError indicates a character that does not resolve in the
// symbol table. It aborts the enclosing tokenize call.
type UnknownSymbolError struct {
	Char rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q not found in symbol table", string(e.Char))
}

// UnsupportedFeatureError indicates input that uses a feature the
// tokenizer explicitly does not implement, such as the diacritic role
// switcher.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// ValidationError indicates a component list that cannot form a valid
// segment, such as a list with no base element. It is raised at segment
// construction time, never during tokenization.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid segment: %s", e.Reason)
}
