// Package ledger implements a newest-first list of records persisted as one
// JSON document under a single key of a store.KV.
//
// Every mutation replaces the whole list and writes it back before
// returning. A failed write never rolls back the in-memory list: the caller
// receives the new list together with an error wrapping ErrStorage.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mvpathlete/athlete/internal/store"
)

// ErrStorage marks a failed durable read or write.
var ErrStorage = errors.New("ledger storage failure")

type Ledger[T any] struct {
	kv    store.KV
	key   string
	log   zerolog.Logger
	items []T
	// unreadable is set when the stored value could not be read. Writes are
	// refused so the intact stored list is never overwritten.
	unreadable bool
}

// Open binds a ledger to key and loads its current contents.
func Open[T any](kv store.KV, key string, log zerolog.Logger) *Ledger[T] {
	l := &Ledger[T]{
		kv:  kv,
		key: key,
		log: log.With().Str("ledger", key).Logger(),
	}
	l.items = l.LoadInitial()
	return l
}

func (l *Ledger[T]) Key() string { return l.key }

// LoadInitial reads the stored list. A missing or corrupt value yields an
// empty list. A failed read also yields an empty list and marks the ledger
// so writes are refused.
func (l *Ledger[T]) LoadInitial() []T {
	raw, found, err := l.kv.Get(l.key)
	if err != nil {
		l.unreadable = true
		l.log.Warn().Err(err).Msg("read ledger failed; changes will not be saved")
		return []T{}
	}
	l.unreadable = false
	if !found || strings.TrimSpace(raw) == "" {
		return []T{}
	}
	items, err := Decode[T](raw)
	if err != nil {
		l.log.Warn().Err(err).Msg("stored ledger is corrupt; starting empty")
		return []T{}
	}
	return items
}

// Items returns a copy of the current list, newest first.
func (l *Ledger[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger[T]) Len() int { return len(l.items) }

// Append prepends rec and persists the result.
func (l *Ledger[T]) Append(rec T) ([]T, error) {
	next := make([]T, 0, len(l.items)+1)
	next = append(next, rec)
	next = append(next, l.items...)
	l.items = next
	return l.Items(), l.Persist()
}

// ReplaceAll sets the list to items and persists it.
func (l *Ledger[T]) ReplaceAll(items []T) error {
	next := make([]T, len(items))
	copy(next, items)
	l.items = next
	return l.Persist()
}

// Clear empties the list and removes the key from the store.
func (l *Ledger[T]) Clear() error {
	l.items = []T{}
	if l.unreadable {
		return l.errUnreadable()
	}
	if err := l.kv.Delete(l.key); err != nil {
		return fmt.Errorf("%w: clear %s: %w", ErrStorage, l.key, err)
	}
	return nil
}

// Persist writes the full current list, overwriting the previous value.
func (l *Ledger[T]) Persist() error {
	if l.unreadable {
		return l.errUnreadable()
	}
	raw, err := Encode(l.items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, l.key, err)
	}
	if err := l.kv.Put(l.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorage, l.key, err)
	}
	return nil
}

func (l *Ledger[T]) errUnreadable() error {
	return fmt.Errorf("%w: %s could not be read; refusing to overwrite it", ErrStorage, l.key)
}

func Encode[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Decode[T any](raw string) ([]T, error) {
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
