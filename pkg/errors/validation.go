package errors

import (
	"strings"
	"unicode"
)

// maxIdentifierLength bounds names that end up as TCAD identifiers.
const maxIdentifierLength = 64

// ValidateIdentifier validates a layer or contact name.
//
// Names are emitted verbatim as identifiers in the TCAD script, so the rules
// reject anything that would break a define form:
//   - No empty names
//   - Maximum length of 64 characters
//   - No whitespace or control characters
//   - No quotes, parentheses or semicolons
func ValidateIdentifier(name string) error {
	if name == "" {
		return New(ErrCodeValidation, "name cannot be empty")
	}

	if len(name) > maxIdentifierLength {
		return New(ErrCodeValidation, "name too long (max %d characters): %q", maxIdentifierLength, name)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeValidation, "name contains whitespace or control characters: %q", name)
		}
	}

	if strings.ContainsAny(name, `"'();`) {
		return New(ErrCodeValidation, "name contains reserved characters: %q", name)
	}

	return nil
}

// ValidateMaterial validates a material name such as "GaN" or "Ti/Al/Ni/Au".
// Materials are quoted in the TCAD script, so only quotes and control
// characters are rejected.
func ValidateMaterial(material string) error {
	if material == "" {
		return New(ErrCodeValidation, "material cannot be empty")
	}

	for _, r := range material {
		if unicode.IsControl(r) {
			return New(ErrCodeValidation, "material contains control characters: %q", material)
		}
	}

	if strings.Contains(material, `"`) {
		return New(ErrCodeValidation, "material contains quotes: %q", material)
	}

	return nil
}
