package service

import (
	"errors"
	"fmt"

	"github.com/mvpathlete/athlete/internal/catalog"
	"github.com/mvpathlete/athlete/internal/ledger"
)

var (
	// ErrNotFound is returned when a food name has no catalog entry.
	ErrNotFound = errors.New("food not in catalog")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid input")
	// ErrStorage marks a durable read/write failure. The in-memory ledger
	// state stays authoritative when it occurs.
	ErrStorage = ledger.ErrStorage
	// ErrCatalogLoad marks an unreachable or malformed nutrition source.
	ErrCatalogLoad = catalog.ErrLoad
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
