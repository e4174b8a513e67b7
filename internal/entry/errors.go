package entry

import "errors"

var (
	// ErrEmptyTitle is returned when a page is written without a title.
	ErrEmptyTitle = errors.New("page title must be non-empty")
	// ErrNegativeCount is returned when a page is written with a negative word or link count.
	ErrNegativeCount = errors.New("word count and wiki link count must be non-negative")
	// ErrInvalidPageID is returned when a language-POS group is attached to a non-positive page id.
	ErrInvalidPageID = errors.New("page id must be positive")
	// ErrNegativeReserve is returned for a reserve with a negative row count.
	ErrNegativeReserve = errors.New("reserve must be non-negative")
)
