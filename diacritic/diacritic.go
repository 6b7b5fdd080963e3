// Package diacritic detects and counts the diacritical marks of academic
// Arabic transliteration.
//
// Ten marks are recognised, grouped into four categories:
//
//   - LongVowels: ā ī ū (and Ā Ī Ū)
//   - Emphatics: ṣ ḍ ṭ ẓ (and Ṣ Ḍ Ṭ Ẓ)
//   - Gutturals: ḥ Ḥ and ʿ (ʿayn)
//   - Hamza: ʾ
//
// ʿ and ʾ are modifier letters with no case variant. Every occurrence is
// counted; categories never overlap, so HasDiacritics(s) is true exactly when
// DiacriticStats(s).Total() > 0.
//
// Input is composed to NFC before scanning, so a base letter followed by a
// combining macron or dot below counts the same as the precomposed letter.
//
// All functions are total and safe for concurrent use by multiple goroutines.
package diacritic

import (
	"encoding/json"
	"fmt"

	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/textcase"
)

// Category classifies a diacritical mark.
type Category int

const (
	LongVowels Category = iota // ā ī ū
	Emphatics                  // ṣ ḍ ṭ ẓ
	Gutturals                  // ḥ ʿ
	Hamza                      // ʾ
)

// NumCategories is the number of defined categories.
const NumCategories = 4

// categoryNames maps Category values to their string names.
var categoryNames = [NumCategories]string{
	LongVowels: "longVowels",
	Emphatics:  "emphatics",
	Gutturals:  "gutturals",
	Hamza:      "hamza",
}

// categoryFromName maps string names back to Category values.
var categoryFromName = map[string]Category{
	"longVowels": LongVowels,
	"emphatics":  Emphatics,
	"gutturals":  Gutturals,
	"hamza":      Hamza,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{LongVowels, Emphatics, Gutturals, Hamza}
}

// String returns the name of the category.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON encodes the category as a JSON string (e.g. "longVowels").
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "hamza") into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cat, ok := categoryFromName[s]
	if !ok {
		return fmt.Errorf("diacritic: unknown category: %q", s)
	}
	*c = cat
	return nil
}

// marks maps every recognised rune to its category.
var marks = map[rune]Category{
	'ā': LongVowels, 'Ā': LongVowels,
	'ī': LongVowels, 'Ī': LongVowels,
	'ū': LongVowels, 'Ū': LongVowels,

	'ṣ': Emphatics, 'Ṣ': Emphatics,
	'ḍ': Emphatics, 'Ḍ': Emphatics,
	'ṭ': Emphatics, 'Ṭ': Emphatics,
	'ẓ': Emphatics, 'Ẓ': Emphatics,

	'ḥ': Gutturals, 'Ḥ': Gutturals,
	'ʿ': Gutturals, // U+02BF modifier letter left half ring (ʿayn)

	'ʾ': Hamza, // U+02BE modifier letter right half ring
}

// CategoryOf returns the category of r, if r is a recognised mark.
func CategoryOf(r rune) (Category, bool) {
	c, ok := marks[r]
	return c, ok
}

// Stats holds per-category occurrence counts. All four fields are always
// present in the JSON encoding, zero-filled when absent from the text.
type Stats struct {
	LongVowels int `json:"longVowels"`
	Emphatics  int `json:"emphatics"`
	Gutturals  int `json:"gutturals"`
	Hamza      int `json:"hamza"`
}

// Count returns the count for category c, or 0 for an unknown category.
func (s Stats) Count(c Category) int {
	switch c {
	case LongVowels:
		return s.LongVowels
	case Emphatics:
		return s.Emphatics
	case Gutturals:
		return s.Gutturals
	case Hamza:
		return s.Hamza
	default:
		return 0
	}
}

// Total returns the sum over all categories.
func (s Stats) Total() int {
	return s.LongVowels + s.Emphatics + s.Gutturals + s.Hamza
}

// Map returns the counts keyed by category name. All four keys are present.
func (s Stats) Map() map[string]int {
	m := make(map[string]int, NumCategories)
	for _, c := range Categories() {
		m[c.String()] = s.Count(c)
	}
	return m
}

func (s *Stats) add(c Category) {
	switch c {
	case LongVowels:
		s.LongVowels++
	case Emphatics:
		s.Emphatics++
	case Gutturals:
		s.Gutturals++
	case Hamza:
		s.Hamza++
	}
}

// HasDiacritics reports whether text contains at least one recognised mark.
func HasDiacritics(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range textcase.ComposeNFC(text) {
		if _, ok := marks[r]; ok {
			return true
		}
	}
	return false
}

// DiacriticStats counts every recognised mark in text by category.
// Returns zero counts for empty or mark-free input.
func DiacriticStats(text string) Stats {
	var s Stats
	if text == "" {
		return s
	}
	for _, r := range textcase.ComposeNFC(text) {
		if c, ok := marks[r]; ok {
			s.add(c)
		}
	}
	return s
}
