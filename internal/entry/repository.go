package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrgen/wikt/internal/model"
	"github.com/emrgen/wikt/internal/relation"
	"github.com/emrgen/wikt/internal/store"
	"github.com/sirupsen/logrus"
)

// Vocabulary resolves relation kinds in both directions, implemented by *relation.Vocabulary.
type Vocabulary interface {
	KindResolver
	IDOf(kind relation.Kind) (int64, error)
}

// PrefixQuery selects pages by title prefix. The language and content
// requirements are checked on the assembled page.
type PrefixQuery struct {
	Prefix string
	// Limit caps the result, a negative value means no cap.
	Limit                   int
	SkipRedirects           bool
	SourceLanguages         []string
	TranslationLanguages    []string
	RequireDefinition       bool
	RequireSemanticRelation bool
}

// Option configures a Repository.
type Option func(r *Repository)

// WithReserve sets the extra rows fetched per active post-filter.
func WithReserve(reserve Reserve) Option {
	return func(r *Repository) {
		r.reserve = reserve
	}
}

// WithCache puts a page cache in front of the title and id lookups.
func WithCache(cache PageCache) Option {
	return func(r *Repository) {
		if cache != nil {
			r.cache = cache
		}
	}
}

// Repository reads and writes dictionary entries.
type Repository struct {
	store      store.Store
	vocabulary Vocabulary
	assembler  *Assembler
	reserve    Reserve
	cache      PageCache
}

// NewRepository creates a repository. The vocabulary must be rebuilt before
// pages with relations are read or written.
func NewRepository(store store.Store, vocabulary Vocabulary, opts ...Option) *Repository {
	r := &Repository{
		store:      store,
		vocabulary: vocabulary,
		assembler:  NewAssembler(store, vocabulary),
		reserve:    DefaultReserve(),
		cache:      NopCache{},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// GetByTitle returns the page with exactly this title. An empty title is
// not found without asking the store.
func (r *Repository) GetByTitle(ctx context.Context, title string) (*Page, bool, error) {
	if title == "" {
		return nil, false, nil
	}

	if page, ok, err := r.cache.GetByTitle(ctx, title); err != nil {
		logrus.Warnf("page cache: get %q: %v", title, err)
	} else if ok {
		return page, true, nil
	}

	row, err := r.store.GetPageByTitle(ctx, title)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("get page by title", err)
	}

	return r.load(ctx, row)
}

// GetByID returns the page with this id. A non-positive id is not found
// without asking the store.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Page, bool, error) {
	if id <= 0 {
		return nil, false, nil
	}

	if page, ok, err := r.cache.GetByID(ctx, id); err != nil {
		logrus.Warnf("page cache: get %d: %v", id, err)
	} else if ok {
		return page, true, nil
	}

	row, err := r.store.GetPage(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, store.Wrap("get page", err)
	}

	return r.load(ctx, row)
}

func (r *Repository) load(ctx context.Context, row *model.Page) (*Page, bool, error) {
	page, err := r.assembler.Assemble(ctx, row)
	if err != nil {
		return nil, false, err
	}

	if err := r.cache.Set(ctx, page); err != nil {
		logrus.Warnf("page cache: set %q: %v", page.Title, err)
	}

	return page, true, nil
}

// GetByPrefix returns the pages whose title starts with the prefix and that
// pass the query's checks, in the store's row order.
//
// The store is asked for Limit rows plus a reserve per active check, and
// assembly stops once Limit pages passed. A long run of rows failing the
// checks can still leave the result short of Limit although more matches
// exist further on.
func (r *Repository) GetByPrefix(ctx context.Context, q PrefixQuery) ([]*Page, error) {
	pages := make([]*Page, 0)
	if q.Limit == 0 {
		return pages, nil
	}

	criteria := NewCriteria(q)
	rows, err := r.store.ListPages(ctx, store.PageFilter{
		Prefix:        q.Prefix,
		SkipRedirects: q.SkipRedirects,
		Limit:         r.reserve.Budget(q),
	})
	if err != nil {
		return nil, store.Wrap("list pages", err)
	}

	for _, row := range rows {
		if q.Limit > 0 && len(pages) >= q.Limit {
			break
		}

		page, err := r.assembler.Assemble(ctx, row)
		if err != nil {
			return nil, err
		}
		if criteria.Match(page) {
			pages = append(pages, page)
		}
	}

	logrus.Debugf("prefix %q: %d of %d rows matched", q.Prefix, len(pages), len(rows))
	return pages, nil
}

// NewPageInput holds the fields of a page to insert.
type NewPageInput struct {
	Title         string
	WordCount     int
	WikiLinkCount int
	InWiktionary  bool
	// RedirectTarget makes the page a hard redirect, nil or empty means none.
	RedirectTarget *string
}

func (in NewPageInput) validate() error {
	if in.Title == "" {
		return ErrEmptyTitle
	}
	if in.WordCount < 0 || in.WikiLinkCount < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Insert adds a page without language-POS data and returns it with its generated id.
func (r *Repository) Insert(ctx context.Context, in NewPageInput) (*Page, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	page := NewPage(0, in.Title, in.WordCount, in.WikiLinkCount, in.InWiktionary, in.RedirectTarget)
	row := &model.Page{
		PageTitle:      page.Title,
		WordCount:      page.WordCount,
		WikiLinkCount:  page.WikiLinkCount,
		IsInWiktionary: page.InWiktionary,
		IsRedirect:     page.IsRedirect(),
		RedirectTarget: page.RedirectTarget,
	}
	if err := r.store.CreatePage(ctx, row); err != nil {
		return nil, store.Wrap("create page", err)
	}

	page.ID = row.ID
	logrus.Debugf("inserted page %s", page)
	return page, nil
}

// GetOrInsert returns the page with the input's title, inserting it when
// absent. An existing page takes over the input's in-wiktionary flag.
func (r *Repository) GetOrInsert(ctx context.Context, in NewPageInput) (*Page, error) {
	page, ok, err := r.GetByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.Insert(ctx, in)
	}

	if page.InWiktionary != in.InWiktionary {
		if _, err := r.SetInWiktionary(ctx, in.Title, in.InWiktionary); err != nil {
			return nil, err
		}
		page.InWiktionary = in.InWiktionary
	}
	return page, nil
}

// SetInWiktionary updates the in-wiktionary flag of a page, it reports
// whether a page with the title exists.
func (r *Repository) SetInWiktionary(ctx context.Context, title string, inWiktionary bool) (bool, error) {
	if title == "" {
		return false, nil
	}

	row, err := r.store.GetPageByTitle(ctx, title)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, store.Wrap("get page by title", err)
	}

	if _, err := r.store.UpdatePageInWiktionary(ctx, title, inWiktionary); err != nil {
		return false, store.Wrap("update page", err)
	}

	r.evict(ctx, row.ID, title)
	return true, nil
}

// DeleteByTitle deletes a page with all its language-POS data, it reports
// whether a page was deleted.
func (r *Repository) DeleteByTitle(ctx context.Context, title string) (bool, error) {
	if title == "" {
		return false, nil
	}

	row, err := r.store.GetPageByTitle(ctx, title)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, store.Wrap("get page by title", err)
	}

	affected, err := r.store.DeletePageByTitle(ctx, title)
	if err != nil {
		return false, store.Wrap("delete page", err)
	}

	r.evict(ctx, row.ID, title)
	return affected > 0, nil
}

// LangPOSInput is a language-POS group to attach to a page.
type LangPOSInput struct {
	Lang     string
	POS      string
	Lemma    *string
	Meanings []Meaning
}

// AddLangPOS attaches a language-POS group with its meanings, relations and
// translations to a page in one transaction. Relation kinds are resolved
// through the vocabulary, so it must be rebuilt before.
func (r *Repository) AddLangPOS(ctx context.Context, pageID int64, in LangPOSInput) (*LangPOS, error) {
	if pageID <= 0 {
		return nil, ErrInvalidPageID
	}

	row, err := r.store.GetPage(ctx, pageID)
	if err != nil {
		return nil, store.Wrap("get page", err)
	}

	langPOS := &LangPOS{Lang: in.Lang, POS: in.POS, Lemma: in.Lemma, Meanings: make([]*Meaning, 0, len(in.Meanings))}
	err = r.store.Transaction(ctx, func(tx store.Store) error {
		lp := &model.LangPOS{PageID: pageID, Lang: in.Lang, POS: in.POS, Lemma: in.Lemma}
		if err := tx.CreateLangPOS(ctx, lp); err != nil {
			return store.Wrap("create lang_pos", err)
		}
		langPOS.ID = lp.ID

		for i, m := range in.Meanings {
			meaning := &model.Meaning{LangPOSID: lp.ID, MeaningN: i, WikiText: m.Definition}
			if err := tx.CreateMeaning(ctx, meaning); err != nil {
				return store.Wrap("create meaning", err)
			}

			for _, rel := range m.Relations {
				typeID, err := r.vocabulary.IDOf(rel.Kind)
				if err != nil {
					return fmt.Errorf("relation %s of %q: %w", rel.Kind, rel.Target, err)
				}
				if err := tx.CreateRelation(ctx, &model.Relation{MeaningID: meaning.ID, RelationTypeID: typeID, WikiText: rel.Target}); err != nil {
					return store.Wrap("create relation", err)
				}
			}

			for _, t := range m.Translations {
				if err := tx.CreateTranslation(ctx, &model.Translation{MeaningID: meaning.ID, Lang: t.Lang, WikiText: t.Text}); err != nil {
					return store.Wrap("create translation", err)
				}
			}

			langPOS.Meanings = append(langPOS.Meanings, &Meaning{
				ID:           meaning.ID,
				Definition:   m.Definition,
				Relations:    append(make([]Relation, 0, len(m.Relations)), m.Relations...),
				Translations: append(make([]Translation, 0, len(m.Translations)), m.Translations...),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.evict(ctx, pageID, row.PageTitle)
	return langPOS, nil
}

func (r *Repository) evict(ctx context.Context, id int64, title string) {
	if err := r.cache.Delete(ctx, id, title); err != nil {
		logrus.Warnf("page cache: delete %q: %v", title, err)
	}
}
