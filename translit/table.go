package translit

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/textcase"
)

// Kind identifies which lookup a table serves.
type Kind int

const (
	PhraseTable Kind = iota // whole-input phrases; keys may contain spaces
	WordTable               // single tokens; keys must not contain whitespace
)

// String returns the name of the table kind.
func (k Kind) String() string {
	switch k {
	case PhraseTable:
		return "phrase"
	case WordTable:
		return "word"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Validation failures reported by NewTable. Each is wrapped in an *EntryError.
var (
	ErrEmptyKey     = errors.New("empty key")
	ErrKeyNotLower  = errors.New("key is not lowercase")
	ErrKeyNotNFC    = errors.New("key is not NFC")
	ErrKeyHasSpace  = errors.New("word key contains whitespace")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrEmptyValue   = errors.New("empty value")
)

// Entry is a single key/replacement pair.
type Entry struct {
	Key   string // lowercase simplified Roman form
	Value string // diacritised replacement, used verbatim
	Line  int    // source line, 0 when not loaded from a file
}

// EntryError reports an invalid table entry.
type EntryError struct {
	Kind Kind
	Key  string
	Line int
	Err  error
}

func (e *EntryError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s table: line %d: key %q: %v", e.Kind, e.Line, e.Key, e.Err)
	}
	return fmt.Sprintf("%s table: key %q: %v", e.Kind, e.Key, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Table is an immutable mapping from lowercase key to replacement.
// The zero value and a nil *Table are both valid empty tables.
// A Table is safe for concurrent use by multiple goroutines.
type Table struct {
	kind    Kind
	entries map[string]string
	keys    []string // sorted
}

// NewTable validates entries and builds a table of the given kind.
//
// Every entry must have a non-empty, lowercase, NFC key that is unique within
// the table, and a non-empty value. Word table keys must not contain
// whitespace. All violations are reported together; each one is an
// *EntryError wrapping one of the Err* sentinels.
func NewTable(kind Kind, entries []Entry) (*Table, error) {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(a.Key, b.Key)
	})

	var errs []error
	t := &Table{
		kind:    kind,
		entries: make(map[string]string, len(sorted)),
		keys:    make([]string, 0, len(sorted)),
	}
	for _, e := range sorted {
		if err := validateEntry(kind, e); err != nil {
			errs = append(errs, &EntryError{Kind: kind, Key: e.Key, Line: e.Line, Err: err})
			continue
		}
		if _, dup := t.entries[e.Key]; dup {
			errs = append(errs, &EntryError{Kind: kind, Key: e.Key, Line: e.Line, Err: ErrDuplicateKey})
			continue
		}
		t.entries[e.Key] = e.Value
		t.keys = append(t.keys, e.Key)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("translit: invalid %s table: %w", kind, errors.Join(errs...))
	}
	return t, nil
}

// MustTable is like NewTable but panics on invalid entries.
// Intended for tables defined in code.
func MustTable(kind Kind, entries []Entry) *Table {
	t, err := NewTable(kind, entries)
	if err != nil {
		panic(err)
	}
	return t
}

func validateEntry(kind Kind, e Entry) error {
	switch {
	case e.Key == "":
		return ErrEmptyKey
	case !textcase.IsLower(e.Key):
		return ErrKeyNotLower
	case !textcase.IsNFC(e.Key):
		return ErrKeyNotNFC
	case kind == WordTable && strings.ContainsFunc(e.Key, unicode.IsSpace):
		return ErrKeyHasSpace
	case e.Value == "":
		return ErrEmptyValue
	}
	return nil
}

// Kind returns the table kind. A nil table reports WordTable.
func (t *Table) Kind() Kind {
	if t == nil {
		return WordTable
	}
	return t.kind
}

// Lookup returns the replacement stored for key. The key is matched exactly;
// callers fold case before calling.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns a sorted copy of all keys.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Entries returns all entries sorted by key.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry{Key: k, Value: t.entries[k]}
	}
	return out
}
