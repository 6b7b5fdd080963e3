package translit

import "github.com/thisisniagahub/Quran-Pulse-sub001/data"

// defaultEngine is built once at init from the embedded tables.
var defaultEngine *Engine

func init() {
	phrases, err := ParseTable(PhraseTable, data.Phrases)
	if err != nil {
		panic(err)
	}
	words, err := ParseTable(WordTable, data.Words)
	if err != nil {
		panic(err)
	}
	defaultEngine = New(phrases, words)
}

// Default returns the engine built from the embedded curated tables.
func Default() *Engine { return defaultEngine }

// Convert transliterates s with the default engine.
func Convert(s string) string { return defaultEngine.Convert(s) }

// MatchPhrase looks up s in the default phrase table.
func MatchPhrase(s string) (string, bool) { return defaultEngine.MatchPhrase(s) }

// MapWords converts s token by token with the default word table.
func MapWords(s string) string { return defaultEngine.MapWords(s) }
