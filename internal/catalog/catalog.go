// Package catalog holds the read-only nutrition table used to compute food
// entries and autosuggest food names.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mvpathlete/athlete/internal/model"
)

const DefaultSuggestLimit = 8

// ErrLoad marks a nutrition source that could not be read or parsed.
var ErrLoad = errors.New("nutrition catalog unavailable")

type Entry struct {
	Name string
	Fact model.NutritionFact
}

// Catalog maps lower-cased food names to per-100 facts and remembers the
// order in which names appeared in the source document.
type Catalog struct {
	keys  []string
	facts map[string]model.NutritionFact
}

// New builds a catalog from entries. Names are lower-cased; a repeated name
// keeps its first position and takes the last value.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		keys:  make([]string, 0, len(entries)),
		facts: make(map[string]model.NutritionFact, len(entries)),
	}
	for _, e := range entries {
		key := normalizeKey(e.Name)
		if key == "" {
			continue
		}
		if _, seen := c.facts[key]; !seen {
			c.keys = append(c.keys, key)
		}
		c.facts[key] = e.Fact
	}
	return c
}

func Empty() *Catalog {
	return New(nil)
}

// Decode reads a flat JSON object of name -> facts, preserving key order.
func Decode(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read catalog document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("catalog document must be a JSON object")
	}
	entries := make([]Entry, 0, 64)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read catalog key: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected catalog token %v", tok)
		}
		var fact model.NutritionFact
		if err := dec.Decode(&fact); err != nil {
			return nil, fmt.Errorf("decode catalog entry %q: %w", name, err)
		}
		entries = append(entries, Entry{Name: name, Fact: fact})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read catalog document end: %w", err)
	}
	return New(entries), nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns catalog names in source order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Lookup is an exact, case-insensitive match on the food name.
func (c *Catalog) Lookup(name string) (model.NutritionFact, bool) {
	if c == nil {
		return model.NutritionFact{}, false
	}
	fact, ok := c.facts[normalizeKey(name)]
	return fact, ok
}

// Suggest returns names containing query (case-insensitive) in catalog
// order, at most limit of them. limit <= 0 means DefaultSuggestLimit.
func (c *Catalog) Suggest(query string, limit int) []string {
	out := make([]string, 0)
	if c == nil || strings.TrimSpace(query) == "" || len(c.keys) == 0 {
		return out
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	q := strings.ToLower(query)
	for _, key := range c.keys {
		if strings.Contains(key, q) {
			out = append(out, key)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func normalizeKey(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
