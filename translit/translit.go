// Package translit converts simplified Romanized Arabic into academic
// transliteration, e.g. "Bismillahir Rahmanir Raheem" into
// "Bismillāhir-Raḥmānir-Raḥīm".
//
// Conversion is table-driven. No diacritics are generated at runtime; every
// output mark comes from a curated replacement. Two tables are consulted:
//
//   - The phrase table is checked first against the whole input, lowercased
//     but not trimmed. A hit returns the stored phrase verbatim.
//   - Otherwise the input is split on whitespace runs and each token is
//     looked up in the word table. Whitespace is copied through exactly.
//
// Identity fallback: a token with no table entry is returned byte for byte,
// including any attached punctuation. "Akbar." does not match the key
// "akbar" and passes through unchanged. Misses are never reported as errors.
//
// When a token starts with an uppercase letter, the first rune of its
// replacement is uppercased; the rest of the replacement is used as stored.
// Otherwise the replacement is used exactly as stored, so a lowercase token
// whose table value is capitalised ("quran" -> "Qurʾān") keeps the stored
// capital.
//
// Tables are immutable after construction. An Engine holds no mutable state,
// and all functions and methods are safe for concurrent use by multiple
// goroutines.
package translit

import (
	"strings"

	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/segment"
	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/textcase"
)

// Engine converts text using a phrase table and a word table.
type Engine struct {
	phrases *Table
	words   *Table
}

// New returns an engine over the given tables. A nil table acts as empty.
func New(phrases, words *Table) *Engine {
	return &Engine{phrases: phrases, words: words}
}

// Phrases returns the phrase table.
func (e *Engine) Phrases() *Table { return e.phrases }

// Words returns the word table.
func (e *Engine) Words() *Table { return e.words }

// Convert transliterates s. A phrase match on the whole input wins and is
// returned as stored; otherwise the result of MapWords is returned.
// Input with no matches anywhere is returned unchanged.
func (e *Engine) Convert(s string) string {
	if out, ok := e.MatchPhrase(s); ok {
		return out
	}
	return e.MapWords(s)
}

// MatchPhrase looks up the entire input, lowercased, in the phrase table.
// Leading and trailing whitespace is part of the key.
func (e *Engine) MatchPhrase(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return e.phrases.Lookup(textcase.Fold(s))
}

// MapWords replaces every whitespace-delimited token that has a word table
// entry and copies everything else through unchanged.
func (e *Engine) MapWords(s string) string {
	segs := segment.Split(s)
	if len(segs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2) // each diacritic adds at least one byte

	for _, seg := range segs {
		if seg.Kind == segment.Space {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(e.mapWord(seg.Text))
	}
	return b.String()
}

// MapWord converts a single token. Tokens with no entry are returned as-is.
func (e *Engine) MapWord(token string) string {
	if token == "" {
		return token
	}
	return e.mapWord(token)
}

func (e *Engine) mapWord(token string) string {
	repl, ok := e.words.Lookup(textcase.Fold(token))
	if !ok {
		return token
	}
	if textcase.IsUpperFirst(token) {
		return textcase.UpperFirst(repl)
	}
	return repl
}
