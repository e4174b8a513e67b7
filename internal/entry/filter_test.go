package entry

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/wikt/internal/relation"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var langs = []string{"en", "ru", "de", "fr"}

func drawPage(t *rapid.T) *Page {
	var target *string
	if rapid.Bool().Draw(t, "redirect") {
		s := rapid.StringMatching(`[A-Za-z]{1,8}`).Draw(t, "target")
		target = &s
	}
	page := NewPage(1, "word", 1, 1, true, target)

	n := rapid.IntRange(0, 3).Draw(t, "langPOS")
	for i := 0; i < n; i++ {
		lp := &LangPOS{Lang: rapid.SampledFrom(langs).Draw(t, "lang"), POS: "noun"}
		m := rapid.IntRange(0, 3).Draw(t, "meanings")
		for j := 0; j < m; j++ {
			meaning := &Meaning{Definition: rapid.SampledFrom([]string{"", "a definition"}).Draw(t, "definition")}
			if rapid.Bool().Draw(t, "relation") {
				meaning.Relations = append(meaning.Relations, Relation{Kind: relation.Synonymy, Target: "other"})
			}
			if rapid.Bool().Draw(t, "translation") {
				meaning.Translations = append(meaning.Translations, Translation{
					Lang: rapid.SampledFrom(langs).Draw(t, "translationLang"),
					Text: "text",
				})
			}
			lp.Meanings = append(lp.Meanings, meaning)
		}
		page.LangPOS = append(page.LangPOS, lp)
	}
	return page
}

func drawLangs(t *rapid.T, label string) []string {
	return rapid.SliceOfDistinct(rapid.SampledFrom(langs), func(s string) string { return s }).Draw(t, label)
}

func TestProperty_CriteriaMatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		page := drawPage(t)
		q := PrefixQuery{
			Limit:                   1,
			SkipRedirects:           rapid.Bool().Draw(t, "skipRedirects"),
			RequireDefinition:       rapid.Bool().Draw(t, "requireDefinition"),
			RequireSemanticRelation: rapid.Bool().Draw(t, "requireRelation"),
			SourceLanguages:         drawLangs(t, "sourceLanguages"),
			TranslationLanguages:    drawLangs(t, "translationLanguages"),
		}

		var definition, related, inSource, inTarget bool
		for _, lp := range page.LangPOS {
			for _, l := range q.SourceLanguages {
				inSource = inSource || lp.Lang == l
			}
			for _, m := range lp.Meanings {
				definition = definition || m.Definition != ""
				related = related || len(m.Relations) > 0
				for _, tr := range m.Translations {
					for _, l := range q.TranslationLanguages {
						inTarget = inTarget || tr.Lang == l
					}
				}
			}
		}

		want := !(q.SkipRedirects && page.IsRedirect()) &&
			(!q.RequireDefinition || definition) &&
			(!q.RequireSemanticRelation || related) &&
			(len(q.SourceLanguages) == 0 || inSource) &&
			(len(q.TranslationLanguages) == 0 || inTarget)

		got := NewCriteria(q).Match(page)
		if got != want {
			t.Fatalf("Match() = %v, want %v", got, want)
		}
	})
}

func TestCriteria_Inactive(t *testing.T) {
	c := NewCriteria(PrefixQuery{Limit: 10})

	assert.Nil(t, c.SourceLanguages)
	assert.Nil(t, c.TranslationLanguages)
	assert.True(t, c.Match(NewPage(1, "bare", 0, 0, false, nil)))
	assert.False(t, c.Match(nil))
}

func TestPredicates(t *testing.T) {
	empty := NewPage(2, "empty", 0, 0, true, nil)
	all := mapset.NewSet(langs...)
	assert.False(t, HasDefinition(empty))
	assert.False(t, HasSemanticRelation(empty))
	assert.False(t, HasLanguage(empty, all))
	assert.False(t, HasTranslation(empty, all))
	assert.False(t, HasDefinition(nil))

	page := NewPage(1, "apple", 1, 1, true, nil)
	page.LangPOS = []*LangPOS{{
		Lang: "en",
		POS:  "noun",
		Meanings: []*Meaning{{
			Definition:   "",
			Translations: []Translation{{Lang: "ru", Text: "яблоко"}},
		}},
	}}

	assert.False(t, HasDefinition(page))
	assert.False(t, HasSemanticRelation(page))
	assert.True(t, HasLanguage(page, mapset.NewSet("en", "de")))
	assert.False(t, HasLanguage(page, mapset.NewSet("ru")))
	assert.True(t, HasTranslation(page, mapset.NewSet("ru")))
	assert.False(t, HasTranslation(page, mapset.NewSet("en")))
	assert.False(t, HasLanguage(page, nil))

	page.LangPOS[0].Meanings[0].Definition = "a fruit"
	page.LangPOS[0].Meanings[0].Relations = []Relation{{Kind: relation.Hypernymy, Target: "fruit"}}
	assert.True(t, HasDefinition(page))
	assert.True(t, HasSemanticRelation(page))
}
