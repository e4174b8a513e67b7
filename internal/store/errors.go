package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a looked up row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrFailure marks an error raised by the underlying database.
	ErrFailure = errors.New("store failure")
	// ErrUnknownTable is returned by Count for a table outside the schema.
	ErrUnknownTable = errors.New("unknown table")
)

// Wrap tags err with ErrFailure, keeping err in the chain.
// ErrNotFound, ErrUnknownTable and nil pass through untouched.
func Wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnknownTable) || errors.Is(err, ErrFailure) {
		return err
	}

	return fmt.Errorf("%s: %w: %w", op, ErrFailure, err)
}
