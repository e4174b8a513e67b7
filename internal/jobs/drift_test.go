package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/emrgen/wikt/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int64
	err   error
	table string
}

func (f *fakeCounter) Count(_ context.Context, table string) (int64, error) {
	f.table = table
	return f.count, f.err
}

func TestVocabularyDriftCheck_Check(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		drift bool
	}{
		{name: "in sync", count: 9, drift: false},
		{name: "missing kinds", count: 8, drift: true},
		{name: "empty table", count: 0, drift: true},
		{name: "extra rows", count: 12, drift: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &fakeCounter{count: tt.count}
			check := NewVocabularyDriftCheck(counter, "@every 1m")

			count, drift, err := check.Check(context.TODO())
			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.drift, drift)
			assert.Equal(t, "relation_type", counter.table)
		})
	}
}

func TestVocabularyDriftCheck_Failure(t *testing.T) {
	down := errors.New("database is down")
	check := NewVocabularyDriftCheck(&fakeCounter{err: down}, "@every 1m")

	_, _, err := check.Check(context.TODO())
	assert.ErrorIs(t, err, store.ErrFailure)
	assert.ErrorIs(t, err, down)

	assert.Equal(t, "vocabulary-drift-check", check.Name())
	assert.Equal(t, "@every 1m", check.Schedule())

	// Run only logs the failure
	check.Run()
}
