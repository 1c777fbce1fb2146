package utils

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// OnlyLettersNumbersOrUnderscore folds diacritics to their base letters and
// drops every character that is not an ASCII letter, digit or underscore.
//
// Examples:
//   - "Full Name" -> "FullName"
//   - "Città d'origine" -> "Cittadorigine"
//   - "score_2" -> "score_2"
func OnlyLettersNumbersOrUnderscore(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, stripMarks, norm.NFC), s)
	if err != nil {
		folded = s
	}

	var sb strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// SchemaName builds a prefixed schema name from a display name, e.g.
// ("core", "Full Name") -> "core_fullname".
func SchemaName(prefix, displayName string) string {
	return prefix + "_" + strings.ToLower(OnlyLettersNumbersOrUnderscore(displayName))
}

// CheckPrefix reports an error when name does not start with prefix
// followed by an underscore. what names the value in the message.
//
// Example:
//
//	CheckPrefix("crm_score", "core", "schema name")
//	// the schema name must start with the publisher prefix: expected "core", got "crm"
func CheckPrefix(name, prefix, what string) error {
	if strings.HasPrefix(name, prefix+"_") {
		return nil
	}

	got, _, _ := strings.Cut(name, "_")
	return errors.Errorf("the %s must start with the publisher prefix: expected %q, got %q", what, prefix, got)
}
