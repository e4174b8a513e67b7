package entry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReserve_Budget(t *testing.T) {
	r := DefaultReserve()

	tests := []struct {
		name  string
		query PrefixQuery
		want  int
	}{
		{name: "no cap", query: PrefixQuery{Limit: -1, RequireDefinition: true}, want: -1},
		{name: "zero", query: PrefixQuery{Limit: 0, RequireDefinition: true}, want: 0},
		{name: "no checks", query: PrefixQuery{Limit: 5}, want: 5},
		{name: "skip redirects is pushed down", query: PrefixQuery{Limit: 5, SkipRedirects: true}, want: 5},
		{name: "definition", query: PrefixQuery{Limit: 5, RequireDefinition: true}, want: 47},
		{name: "semantic relation", query: PrefixQuery{Limit: 5, RequireSemanticRelation: true}, want: 517},
		{name: "source language", query: PrefixQuery{Limit: 5, SourceLanguages: []string{"en"}}, want: 560},
		{name: "translation", query: PrefixQuery{Limit: 5, TranslationLanguages: []string{"ru"}}, want: 55560},
		{
			name: "all checks",
			query: PrefixQuery{
				Limit:                   10,
				RequireDefinition:       true,
				RequireSemanticRelation: true,
				SourceLanguages:         []string{"en"},
				TranslationLanguages:    []string{"ru"},
			},
			want: 10 + 42 + 512 + 555 + 55555,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Budget(tt.query))
		})
	}

	negative := Reserve{Definition: -5, Translation: -100}
	assert.Equal(t, 5, negative.Budget(PrefixQuery{Limit: 5, RequireDefinition: true}))
	assert.Equal(t, 5, negative.Budget(PrefixQuery{Limit: 5, TranslationLanguages: []string{"ru"}}))

	huge := Reserve{Definition: math.MaxInt, Translation: math.MaxInt}
	assert.Equal(t, math.MaxInt, huge.Budget(PrefixQuery{Limit: 5, RequireDefinition: true, TranslationLanguages: []string{"ru"}}))
	assert.Equal(t, math.MaxInt, r.Budget(PrefixQuery{Limit: math.MaxInt - 1, RequireDefinition: true}))

	custom := Reserve{Definition: 1, SemanticRelation: 2}
	assert.Equal(t, 13, custom.Budget(PrefixQuery{Limit: 10, RequireDefinition: true, RequireSemanticRelation: true}))
}

func TestReserve_Validate(t *testing.T) {
	assert.NoError(t, DefaultReserve().Validate())
	assert.NoError(t, Reserve{}.Validate())

	err := Reserve{Definition: 1, SourceLanguage: -1}.Validate()
	assert.ErrorIs(t, err, ErrNegativeReserve)
	assert.Contains(t, err.Error(), "source_language")
}
