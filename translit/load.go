package translit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a table document is not a YAML mapping of
// scalar keys to scalar values.
var ErrNotMapping = errors.New("table document is not a mapping of strings")

// ParseTable parses a YAML mapping of key to replacement and builds a table.
// An empty document yields an empty table. Duplicate keys are rejected with
// ErrDuplicateKey and report the line of the later occurrence.
func ParseTable(kind Kind, data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("translit: parse %s table: %w", kind, err)
	}
	if len(doc.Content) == 0 {
		return NewTable(kind, nil)
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return NewTable(kind, nil)
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("translit: parse %s table: line %d: %w", kind, root.Line, ErrNotMapping)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("translit: parse %s table: line %d: %w", kind, k.Line, ErrNotMapping)
		}
		entries = append(entries, Entry{Key: k.Value, Value: v.Value, Line: k.Line})
	}
	return NewTable(kind, entries)
}

// ReadTableFile reads and parses a YAML table file.
func ReadTableFile(kind Kind, path string) (*Table, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("translit: read %s table: %w", kind, err)
	}
	t, err := ParseTable(kind, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
