package entry

import (
	"fmt"
	"math"
)

// Reserve holds the extra rows requested from the store per active post-filter.
// Filters evaluated after assembly drop candidates, so a query capped at the
// caller's limit could come back short; the reserve makes that unlikely but
// does not rule it out.
type Reserve struct {
	Definition       int `mapstructure:"definition"`
	SemanticRelation int `mapstructure:"semantic_relation"`
	SourceLanguage   int `mapstructure:"source_language"`
	Translation      int `mapstructure:"translation"`
}

// DefaultReserve returns the reserve used when none is configured.
func DefaultReserve() Reserve {
	return Reserve{
		Definition:       42,
		SemanticRelation: 512,
		SourceLanguage:   555,
		Translation:      55555,
	}
}

// Budget returns the row limit to ask the store for. A negative query limit
// means no cap and yields -1, a zero limit yields 0. Negative reserves count
// as zero and the sum saturates at math.MaxInt.
func (r Reserve) Budget(q PrefixQuery) int {
	if q.Limit < 0 {
		return -1
	}
	if q.Limit == 0 {
		return 0
	}

	budget := q.Limit
	if q.RequireDefinition {
		budget = addReserve(budget, r.Definition)
	}
	if q.RequireSemanticRelation {
		budget = addReserve(budget, r.SemanticRelation)
	}
	if len(q.SourceLanguages) > 0 {
		budget = addReserve(budget, r.SourceLanguage)
	}
	if len(q.TranslationLanguages) > 0 {
		budget = addReserve(budget, r.Translation)
	}
	return budget
}

func addReserve(budget, reserve int) int {
	reserve = max(0, reserve)
	if budget > math.MaxInt-reserve {
		return math.MaxInt
	}
	return budget + reserve
}

// Validate reports a negative reserve.
func (r Reserve) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"definition", r.Definition},
		{"semantic_relation", r.SemanticRelation},
		{"source_language", r.SourceLanguage},
		{"translation", r.Translation},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s = %d", ErrNegativeReserve, f.name, f.value)
		}
	}
	return nil
}
