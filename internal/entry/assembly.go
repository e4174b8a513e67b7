package entry

import (
	"context"

	"github.com/emrgen/wikt/internal/model"
	"github.com/emrgen/wikt/internal/relation"
	"github.com/emrgen/wikt/internal/store"
	"github.com/sirupsen/logrus"
)

// KindResolver resolves persisted relation type ids, implemented by *relation.Vocabulary.
type KindResolver interface {
	KindOf(id int64) (relation.Kind, bool)
}

// Assembler builds a page with its complete subtree:
// page -> language-POS -> meaning -> relations and translations.
type Assembler struct {
	store store.EntryStore
	kinds KindResolver
}

func NewAssembler(store store.EntryStore, kinds KindResolver) *Assembler {
	return &Assembler{
		store: store,
		kinds: kinds,
	}
}

// Assemble converts a page row and loads its language-POS groups eagerly.
// Each level is fetched with one query for all parents of the level above.
func (a *Assembler) Assemble(ctx context.Context, row *model.Page) (*Page, error) {
	page := pageFromRow(row)

	langPOSRows, err := a.store.ListLangPOS(ctx, page.ID)
	if err != nil {
		return nil, store.Wrap("list lang_pos", err)
	}
	if len(langPOSRows) == 0 {
		return page, nil
	}

	langPOSByID := make(map[int64]*LangPOS, len(langPOSRows))
	langPOSIDs := make([]int64, 0, len(langPOSRows))
	for _, lp := range langPOSRows {
		langPOS := &LangPOS{
			ID:       lp.ID,
			Lang:     lp.Lang,
			POS:      lp.POS,
			Lemma:    lp.Lemma,
			Meanings: make([]*Meaning, 0),
		}
		page.LangPOS = append(page.LangPOS, langPOS)
		langPOSByID[lp.ID] = langPOS
		langPOSIDs = append(langPOSIDs, lp.ID)
	}

	meaningRows, err := a.store.ListMeanings(ctx, langPOSIDs)
	if err != nil {
		return nil, store.Wrap("list meanings", err)
	}
	if len(meaningRows) == 0 {
		return page, nil
	}

	meaningByID := make(map[int64]*Meaning, len(meaningRows))
	meaningIDs := make([]int64, 0, len(meaningRows))
	for _, m := range meaningRows {
		parent, ok := langPOSByID[m.LangPOSID]
		if !ok {
			continue
		}
		meaning := &Meaning{
			ID:           m.ID,
			Definition:   m.WikiText,
			Relations:    make([]Relation, 0),
			Translations: make([]Translation, 0),
		}
		parent.Meanings = append(parent.Meanings, meaning)
		meaningByID[m.ID] = meaning
		meaningIDs = append(meaningIDs, m.ID)
	}

	relationRows, err := a.store.ListRelations(ctx, meaningIDs)
	if err != nil {
		return nil, store.Wrap("list relations", err)
	}
	for _, r := range relationRows {
		meaning, ok := meaningByID[r.MeaningID]
		if !ok {
			continue
		}
		kind, ok := a.kinds.KindOf(r.RelationTypeID)
		if !ok {
			logrus.Warnf("page %q: relation %d has unknown relation type %d, skipped", page.Title, r.ID, r.RelationTypeID)
			continue
		}
		meaning.Relations = append(meaning.Relations, Relation{Kind: kind, Target: r.WikiText})
	}

	translationRows, err := a.store.ListTranslations(ctx, meaningIDs)
	if err != nil {
		return nil, store.Wrap("list translations", err)
	}
	for _, t := range translationRows {
		if meaning, ok := meaningByID[t.MeaningID]; ok {
			meaning.Translations = append(meaning.Translations, Translation{Lang: t.Lang, Text: t.WikiText})
		}
	}

	return page, nil
}
