package relation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllKinds(t *testing.T) {
	all := AllKinds()

	assert.Len(t, all, 9)
	assert.Equal(t, Size(), len(all))
	assert.Equal(t, Antonymy, all[0])
	assert.Equal(t, Troponymy, all[len(all)-1])
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool { return all[i] < all[j] }))
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("synonymy")
	assert.True(t, ok)
	assert.Equal(t, Synonymy, kind)

	_, ok = ParseKind("Synonymy")
	assert.False(t, ok)

	_, ok = ParseKind("")
	assert.False(t, ok)

	assert.False(t, Kind("derived_term").Valid())
}
