// Package countrycode maps World Bank style country and aggregate codes to
// English display names.
//
// The table is embedded and immutable. Lookups are case sensitive against
// the stored uppercase codes; user input should go through Normalize first.
// A single Resolver built from the embedded table is shared process-wide via
// Default and is safe for concurrent use without locking.
package countrycode

import (
	"iter"
	"strings"

	"github.com/rotisserie/eris"
)

// Kind distinguishes sovereign countries and territories from grouping codes.
type Kind string

const (
	Country   Kind = "country"
	Aggregate Kind = "aggregate"
)

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Country:
		return Country, nil
	case Aggregate:
		return Aggregate, nil
	}
	return "", eris.Errorf("countrycode: unknown kind %q (want %q or %q)", s, Country, Aggregate)
}

// Entry is a single code/name row.
type Entry struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// Resolver answers code lookups against a fixed set of entries.
type Resolver struct {
	entries []Entry
	index   map[string]int
}

// New builds a Resolver from entries, preserving their order. It rejects
// empty codes, empty names and duplicate codes.
func New(entries []Entry) (*Resolver, error) {
	r := &Resolver{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)

	for i, e := range r.entries {
		if e.Code == "" {
			return nil, eris.Errorf("countrycode: entry %d has empty code", i)
		}
		if e.Name == "" {
			return nil, eris.Errorf("countrycode: code %q has empty name", e.Code)
		}
		if prev, ok := r.index[e.Code]; ok {
			return nil, eris.Errorf("countrycode: duplicate code %q (entries %d and %d)", e.Code, prev, i)
		}
		r.index[e.Code] = i
	}

	return r, nil
}

var defaultResolver = mustNew(table)

func mustNew(entries []Entry) *Resolver {
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the process-wide Resolver over the embedded table.
func Default() *Resolver {
	return defaultResolver
}

// Normalize trims whitespace and uppercases a code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve returns the display name for code. Unknown codes yield an
// *UnknownCodeError, which matches ErrUnknownCode.
func (r *Resolver) Resolve(code string) (string, error) {
	i, ok := r.index[code]
	if !ok {
		return "", &UnknownCodeError{Code: code}
	}
	return r.entries[i].Name, nil
}

// Has reports whether code is in the table.
func (r *Resolver) Has(code string) bool {
	_, ok := r.index[code]
	return ok
}

// Lookup returns the full entry for code.
func (r *Resolver) Lookup(code string) (Entry, bool) {
	i, ok := r.index[code]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// DisplayName returns the name for code, or code itself when it is unknown.
// Intended for rendering paths that must not fail on a stray code.
func (r *Resolver) DisplayName(code string) string {
	if name, err := r.Resolve(code); err == nil {
		return name
	}
	return code
}

// Entries yields every (code, name) pair in table order. The sequence can be
// ranged over any number of times.
func (r *Resolver) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range r.entries {
			if !yield(e.Code, e.Name) {
				return
			}
		}
	}
}

// All returns a copy of every entry in table order.
func (r *Resolver) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Filter returns the entries of the given kind in table order.
func (r *Resolver) Filter(kind Kind) []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (r *Resolver) Len() int {
	return len(r.entries)
}
