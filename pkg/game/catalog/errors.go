package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches lookups of an unknown puzzle key.
	ErrNotFound = errors.New("puzzle not found")
	// ErrMalformedPuzzle matches puzzles whose target order is not a
	// permutation of their items.
	ErrMalformedPuzzle = errors.New("malformed puzzle definition")
)

// NotFoundError is returned by Catalog.Get for unknown keys.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("puzzle %q not found", e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MalformedPuzzleError is returned by New when a puzzle cannot be registered.
type MalformedPuzzleError struct {
	Key    string
	Reason string
}

func (e *MalformedPuzzleError) Error() string {
	return fmt.Sprintf("malformed puzzle %q: %s", e.Key, e.Reason)
}

func (e *MalformedPuzzleError) Is(target error) bool {
	return target == ErrMalformedPuzzle
}
