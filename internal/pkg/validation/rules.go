package validation

import (
	"strings"
	"unicode/utf8"
)

// Validation rule limits, matching the column sizes in the migrations
var (
	// ReviewContentMaxLength bounds free-text review content
	ReviewContentMaxLength = 5000

	// PrerequisiteMaxLength bounds prerequisite descriptions
	PrerequisiteMaxLength = 1000

	// ReactionTypeMaxLength matches reactions.type VARCHAR(64)
	ReactionTypeMaxLength = 64

	// EmojiMaxLength matches reactions.emoji VARCHAR(32)
	EmojiMaxLength = 32
)

// String validation
type StringValidation struct {
	Value  string
	MaxLen int
}

// NewStringValidation creates a new string validation for a possibly absent value.
// Surrounding whitespace is ignored.
func NewStringValidation(value *string) *StringValidation {
	v := &StringValidation{}
	if value != nil {
		v.Value = strings.TrimSpace(*value)
	}
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate reports whether the value is present and within MaxLen.
// Lengths are counted in runes so emoji count as one.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}
	return v.MaxLen <= 0 || utf8.RuneCountInString(v.Value) <= v.MaxLen
}
