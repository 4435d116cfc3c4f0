// Package validation holds helpers for parsing and reporting enum-like values.
package validation

import (
	"fmt"
	"strings"

	internalstrings "github.com/amonks/tasklist/internal/strings"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// FormatInvalidValueError wraps base with the rejected input and the accepted values.
func FormatInvalidValueError[T ~string](base error, value T, valid []T) error {
	return fmt.Errorf("%w: %q (valid: %s)", base, string(value), FormatValidValues(valid))
}

// Choose matches input against valid, ignoring case and surrounding space.
// Empty input selects fallback.
func Choose[T ~string](input string, valid []T, fallback T) (T, bool) {
	normalized := internalstrings.NormalizeLowerTrimSpace(input)
	if normalized == "" {
		return fallback, true
	}
	for _, value := range valid {
		if string(value) == normalized {
			return value, true
		}
	}
	return "", false
}
