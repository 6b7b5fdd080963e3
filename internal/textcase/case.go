// Package textcase provides the simple, locale-independent case handling
// used for table keys and token capitalisation.
//
// Only standard Unicode case mapping is applied. There is no Turkic or other
// language-specific tailoring: lookup keys are compared after
// [strings.ToLower], and capitalisation checks the first rune only.
//
// All functions are safe for concurrent use.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fold returns the lookup form of s: lowercased, then composed to NFC.
func Fold(s string) string {
	return ComposeNFC(strings.ToLower(s))
}

// IsLower reports whether s is already in lowercase form.
func IsLower(s string) bool {
	return strings.ToLower(s) == s
}

// IsUpperFirst reports whether the first rune of s is an uppercase letter.
// Returns false for empty strings, invalid UTF-8 at the start, and uncased
// runes such as digits, punctuation or ʿ.
func IsUpperFirst(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(r)
}

// UpperFirst returns s with its first rune uppercased and the rest verbatim.
// Uncased first runes are left unchanged.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + utf8.UTFMax)
	b.WriteRune(up)
	b.WriteString(s[size:])
	return b.String()
}
