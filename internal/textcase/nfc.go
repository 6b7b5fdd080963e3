package textcase

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ComposeNFC returns s in Unicode NFC form.
// ASCII-only input is returned as-is without running the normaliser.
func ComposeNFC(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return norm.NFC.String(s)
		}
	}
	return s
}

// IsNFC reports whether s is already in NFC form.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
