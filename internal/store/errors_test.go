package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")

	err := Wrap("list pages", cause)
	assert.ErrorIs(t, err, ErrFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "list pages: store failure: connection refused", err.Error())

	assert.NoError(t, Wrap("op", nil))
	assert.Same(t, ErrNotFound, Wrap("op", ErrNotFound))
	assert.Same(t, ErrUnknownTable, Wrap("op", ErrUnknownTable))

	// wrapping twice keeps a single tag
	assert.Equal(t, err, Wrap("outer", err))
}

func TestPrefixPattern(t *testing.T) {
	assert.Equal(t, "S%", prefixPattern("S"))
	assert.Equal(t, `100\%%`, prefixPattern("100%"))
	assert.Equal(t, `a\_b%`, prefixPattern("a_b"))
	assert.Equal(t, `a\\b%`, prefixPattern(`a\b`))
	assert.Equal(t, "%", prefixPattern(""))
}
