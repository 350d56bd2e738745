package policies

import (
	"regexp"

	"vspcatalog/internal/shared"
	"vspcatalog/internal/types"
)

var (
	invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	// Chord under a cross-section curve duplicates the section's own chord.
	hiddenParameters = regexp.MustCompile(`:XSecCurve.*:Chord`)
)

// NamingPolicy enforces the naming invariants of extracted variables.
type NamingPolicy struct {
	AllowDuplicates bool
}

func NewNamingPolicy(addID bool) NamingPolicy {
	return NamingPolicy{AllowDuplicates: addID}
}

// ValidateCharacters checks the flat, id-free display name, which is the
// form the workflow tool sees when ids are hidden.
func (p NamingPolicy) ValidateCharacters(v types.Variable) error {
	name := v.DisplayName(types.NamingOptions{FlatNames: true})
	if match := invalidNameChars.FindString(name); match != "" {
		return shared.InvalidNameCharacter(name, match)
	}
	return nil
}

// ShouldHide reports whether v is a known redundant duplicate parameter.
func (p NamingPolicy) ShouldHide(v types.Variable) bool {
	return hiddenParameters.MatchString(v.FullName())
}
