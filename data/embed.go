// Package data embeds the curated transliteration tables.
//
// Both files are YAML mappings from a lowercase simplified Roman key to its
// academically diacritised replacement. Keys must be unique and lowercase;
// word keys must not contain whitespace.
package data

import _ "embed"

//go:embed phrases.yaml
var Phrases []byte

//go:embed words.yaml
var Words []byte
