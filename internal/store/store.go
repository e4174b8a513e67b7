package store

import (
	"context"

	"github.com/emrgen/wikt/internal/model"
)

// Store is the relational store the entry repository and the relation
// vocabulary read from and write to.
type Store interface {
	PageStore
	EntryStore
	RelationTypeStore
	// Count returns the number of rows of a known table.
	Count(ctx context.Context, table string) (int64, error)
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

// PageFilter selects rows of the table 'page'.
type PageFilter struct {
	// Prefix restricts page titles to the ones starting with it, empty matches all.
	Prefix string
	// SkipRedirects drops hard redirects in the query itself.
	SkipRedirects bool
	// Limit caps the number of rows, a negative value means no cap.
	Limit int
}

type PageStore interface {
	// CreatePage inserts a page, the generated id is set on the row.
	CreatePage(ctx context.Context, page *model.Page) error
	// GetPageByTitle retrieves a page by its exact title.
	GetPageByTitle(ctx context.Context, title string) (*model.Page, error)
	// GetPage retrieves a page by ID.
	GetPage(ctx context.Context, id int64) (*model.Page, error)
	// ListPages retrieves pages matching the filter in the store's natural order.
	ListPages(ctx context.Context, filter PageFilter) ([]*model.Page, error)
	// UpdatePageInWiktionary sets the 'is_in_wiktionary' flag of a page.
	UpdatePageInWiktionary(ctx context.Context, title string, inWiktionary bool) (int64, error)
	// DeletePageByTitle deletes a page and its language-POS subtree.
	DeletePageByTitle(ctx context.Context, title string) (int64, error)
}

type EntryStore interface {
	// CreateLangPOS inserts a language-POS group of a page.
	CreateLangPOS(ctx context.Context, langPOS *model.LangPOS) error
	// CreateMeaning inserts a meaning of a language-POS group.
	CreateMeaning(ctx context.Context, meaning *model.Meaning) error
	// CreateRelation inserts a semantic relation of a meaning.
	CreateRelation(ctx context.Context, relation *model.Relation) error
	// CreateTranslation inserts a translation of a meaning.
	CreateTranslation(ctx context.Context, translation *model.Translation) error
	// ListLangPOS retrieves the language-POS groups of a page.
	ListLangPOS(ctx context.Context, pageID int64) ([]*model.LangPOS, error)
	// ListMeanings retrieves the meanings of the given language-POS groups.
	ListMeanings(ctx context.Context, langPOSIDs []int64) ([]*model.Meaning, error)
	// ListRelations retrieves the semantic relations of the given meanings.
	ListRelations(ctx context.Context, meaningIDs []int64) ([]*model.Relation, error)
	// ListTranslations retrieves the translations of the given meanings.
	ListTranslations(ctx context.Context, meaningIDs []int64) ([]*model.Translation, error)
}

type RelationTypeStore interface {
	// ListRelationTypes retrieves all rows of the table 'relation_type'.
	ListRelationTypes(ctx context.Context) ([]*model.RelationType, error)
	// CreateRelationType inserts a relation type, the generated id is set on the row.
	CreateRelationType(ctx context.Context, relationType *model.RelationType) error
	// DeleteRelationTypes deletes all relation types and resets the id sequence.
	DeleteRelationTypes(ctx context.Context) (int64, error)
	// DeleteRelationTypeByName deletes one relation type.
	DeleteRelationTypeByName(ctx context.Context, name string) (int64, error)
	// Count returns the number of rows of a known table.
	Count(ctx context.Context, table string) (int64, error)
	// Transaction runs f against a store bound to one transaction.
	Transaction(ctx context.Context, f func(tx Store) error) error
}
