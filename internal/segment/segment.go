// Package segment splits text on whitespace runs while keeping the runs.
//
// Split returns alternating word and space segments. The invariant
// s[seg.Start:seg.End] == seg.Text holds for every segment, and concatenating
// all segment texts reconstructs the original string byte for byte, including
// repeated spaces, tabs and newlines.
//
// Whitespace is classified with [unicode.IsSpace]. Invalid UTF-8 bytes are
// treated as non-space and stay inside word segments.
//
// All functions are safe for concurrent use by multiple goroutines.
package segment

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a segment.
type Kind int

const (
	Word  Kind = iota // maximal run of non-whitespace runes
	Space             // maximal run of whitespace runes
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Space:
		return "Space"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment is a contiguous slice of the input.
type Segment struct {
	Text  string // The segment text
	Start int    // Byte offset in the original string (inclusive)
	End   int    // Byte offset in the original string (exclusive)
	Kind  Kind   // Word or Space
}

// String returns a debug representation, e.g. Word("Allahu")[0:6].
func (s Segment) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", s.Kind, s.Text, s.Start, s.End)
}

// Split splits s into word and space segments in input order.
// Returns nil for the empty string.
func Split(s string) []Segment {
	if s == "" {
		return nil
	}

	segs := make([]Segment, 0, len(s)/4+1)
	i := 0
	for i < len(s) {
		start := i
		space := isSpaceAt(s, i)
		for i < len(s) {
			r, size := utf8.DecodeRuneInString(s[i:])
			if isSpace(r, size) != space {
				break
			}
			i += size
		}
		kind := Word
		if space {
			kind = Space
		}
		segs = append(segs, Segment{Text: s[start:i], Start: start, End: i, Kind: kind})
	}
	return segs
}

// Words returns the texts of the Word segments only.
func Words(s string) []string {
	segs := Split(s)
	if len(segs) == 0 {
		return nil
	}
	words := make([]string, 0, len(segs)/2+1)
	for _, seg := range segs {
		if seg.Kind == Word {
			words = append(words, seg.Text)
		}
	}
	return words
}

func isSpaceAt(s string, i int) bool {
	r, size := utf8.DecodeRuneInString(s[i:])
	return isSpace(r, size)
}

// isSpace treats a RuneError produced by a single invalid byte as non-space.
func isSpace(r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsSpace(r)
}
