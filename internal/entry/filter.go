package entry

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// HasDefinition reports whether some meaning of the page has a non-empty definition.
func HasDefinition(p *Page) bool {
	if p == nil {
		return false
	}

	for _, lp := range p.LangPOS {
		for _, m := range lp.Meanings {
			if m.Definition != "" {
				return true
			}
		}
	}
	return false
}

// HasSemanticRelation reports whether some meaning of the page has a synonym, antonym, etc.
func HasSemanticRelation(p *Page) bool {
	if p == nil {
		return false
	}

	for _, lp := range p.LangPOS {
		for _, m := range lp.Meanings {
			if len(m.Relations) > 0 {
				return true
			}
		}
	}
	return false
}

// HasLanguage reports whether some language-POS group of the page is in one of langs.
func HasLanguage(p *Page, langs mapset.Set[string]) bool {
	if p == nil || langs == nil {
		return false
	}

	for _, lp := range p.LangPOS {
		if langs.Contains(lp.Lang) {
			return true
		}
	}
	return false
}

// HasTranslation reports whether some meaning of the page is translated into one of langs.
func HasTranslation(p *Page, langs mapset.Set[string]) bool {
	if p == nil || langs == nil {
		return false
	}

	for _, lp := range p.LangPOS {
		for _, m := range lp.Meanings {
			for _, t := range m.Translations {
				if langs.Contains(t.Lang) {
					return true
				}
			}
		}
	}
	return false
}

// Criteria are the checks applied to an assembled page, all active ones must pass.
type Criteria struct {
	SkipRedirects           bool
	RequireDefinition       bool
	RequireSemanticRelation bool
	SourceLanguages         mapset.Set[string]
	TranslationLanguages    mapset.Set[string]
}

// NewCriteria builds criteria from a prefix query. Empty language lists
// leave the matching check inactive.
func NewCriteria(q PrefixQuery) Criteria {
	c := Criteria{
		SkipRedirects:           q.SkipRedirects,
		RequireDefinition:       q.RequireDefinition,
		RequireSemanticRelation: q.RequireSemanticRelation,
	}
	if len(q.SourceLanguages) > 0 {
		c.SourceLanguages = mapset.NewSet(q.SourceLanguages...)
	}
	if len(q.TranslationLanguages) > 0 {
		c.TranslationLanguages = mapset.NewSet(q.TranslationLanguages...)
	}
	return c
}

// Match reports whether the page passes every active check.
func (c Criteria) Match(p *Page) bool {
	if p == nil {
		return false
	}
	if c.SkipRedirects && p.IsRedirect() {
		return false
	}
	if c.RequireDefinition && !HasDefinition(p) {
		return false
	}
	if c.RequireSemanticRelation && !HasSemanticRelation(p) {
		return false
	}
	if c.SourceLanguages != nil && !HasLanguage(p, c.SourceLanguages) {
		return false
	}
	if c.TranslationLanguages != nil && !HasTranslation(p, c.TranslationLanguages) {
		return false
	}
	return true
}
