package ftpkit

import (
	"path"
)

// Selector filters classified entries during listing operations. Selectors
// compose with And, Or and Not.
type Selector interface {
	// Match returns true if the entry should be included in results.
	Match(entry *Entry) bool
}

// GetEntries lists path and returns the entries the selector matches,
// preserving server order. A nil selector matches everything.
func (c *Connection) GetEntries(dir string, selector Selector) ([]Entry, error) {
	if selector == nil {
		selector = All()
	}
	listing, err := c.List(dir)
	if err != nil {
		return nil, err
	}

	var results []Entry
	for i := range listing.Entries {
		if selector.Match(&listing.Entries[i]) {
			results = append(results, listing.Entries[i])
		}
	}
	return results, nil
}

// AllSelector matches every entry.
type AllSelector struct{}

func (s AllSelector) Match(entry *Entry) bool { return true }

// All returns a selector that matches all entries.
func All() Selector {
	return AllSelector{}
}

// GlobSelector matches entry names against a glob pattern.
type GlobSelector struct {
	Pattern string
}

func (s GlobSelector) Match(entry *Entry) bool {
	ok, err := path.Match(s.Pattern, entry.Name)
	return err == nil && ok
}

// Glob returns a selector matching entry names against pattern, using
// path.Match syntax.
func Glob(pattern string) Selector {
	return GlobSelector{Pattern: pattern}
}

// KindSelector matches entries of a single kind.
type KindSelector struct {
	Kind EntryKind
}

func (s KindSelector) Match(entry *Entry) bool { return entry.Kind == s.Kind }

// OfKind returns a selector matching only entries of the given kind.
func OfKind(kind EntryKind) Selector {
	return KindSelector{Kind: kind}
}

// FuncSelector adapts a plain function into a Selector.
type FuncSelector func(entry *Entry) bool

func (f FuncSelector) Match(entry *Entry) bool { return f(entry) }

// And returns a selector that matches when all given selectors match.
func And(selectors ...Selector) Selector {
	return FuncSelector(func(entry *Entry) bool {
		for _, s := range selectors {
			if !s.Match(entry) {
				return false
			}
		}
		return true
	})
}

// Or returns a selector that matches when any given selector matches.
func Or(selectors ...Selector) Selector {
	return FuncSelector(func(entry *Entry) bool {
		for _, s := range selectors {
			if s.Match(entry) {
				return true
			}
		}
		return false
	})
}

// Not returns a selector that inverts the given selector.
func Not(selector Selector) Selector {
	return FuncSelector(func(entry *Entry) bool {
		return !selector.Match(entry)
	})
}
