package relation

import "errors"

var (
	// ErrNotInitialized is returned when the vocabulary is read before a successful Rebuild.
	ErrNotInitialized = errors.New("relation vocabulary is not initialized, call Rebuild first")
	// ErrKindNotFound is returned when a relation kind has no row in the table 'relation_type'.
	ErrKindNotFound = errors.New("relation kind not found in vocabulary")
	// ErrReconciliation is returned when the table 'relation_type' does not match
	// the enumeration after it was recreated.
	ErrReconciliation = errors.New("relation_type reconciliation failed")
)
