package store

import (
	"context"
	"errors"
	"strings"

	"github.com/emrgen/wikt/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

// tables are the names accepted by Count.
var tables = map[string]struct{}{
	model.Page{}.TableName():         {},
	model.LangPOS{}.TableName():      {},
	model.Meaning{}.TableName():      {},
	model.Relation{}.TableName():     {},
	model.Translation{}.TableName():  {},
	model.RelationType{}.TableName(): {},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// prefixPattern turns a title prefix into a LIKE pattern matching it literally.
func prefixPattern(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *GormStore) CreatePage(ctx context.Context, page *model.Page) error {
	return g.db.WithContext(ctx).Create(page).Error
}

func (g *GormStore) GetPageByTitle(ctx context.Context, title string) (*model.Page, error) {
	var page model.Page
	err := g.db.WithContext(ctx).Where("page_title = ?", title).First(&page).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

func (g *GormStore) GetPage(ctx context.Context, id int64) (*model.Page, error) {
	var page model.Page
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&page).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &page, nil
}

// ListPages applies the filter in the query. The rows come back in the
// store's natural order, no ORDER BY is added.
func (g *GormStore) ListPages(ctx context.Context, filter PageFilter) ([]*model.Page, error) {
	query := g.db.WithContext(ctx).Model(&model.Page{})
	if filter.Prefix != "" {
		query = query.Where(`page_title LIKE ? ESCAPE '\'`, prefixPattern(filter.Prefix))
	}
	if filter.SkipRedirects {
		// same rule as model.Page.Target: a flag without a target is no redirect
		query = query.Where("NOT (is_redirect = ? AND redirect_target IS NOT NULL AND redirect_target <> '')", true)
	}
	if filter.Limit >= 0 {
		query = query.Limit(filter.Limit)
	}

	pages := make([]*model.Page, 0)
	err := query.Find(&pages).Error
	return pages, err
}

func (g *GormStore) UpdatePageInWiktionary(ctx context.Context, title string, inWiktionary bool) (int64, error) {
	res := g.db.WithContext(ctx).Model(&model.Page{}).
		Where("page_title = ?", title).
		Update("is_in_wiktionary", inWiktionary)
	return res.RowsAffected, res.Error
}

// DeletePageByTitle removes the page together with its language-POS groups,
// meanings, relations and translations.
func (g *GormStore) DeletePageByTitle(ctx context.Context, title string) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var page model.Page
		if err := tx.Where("page_title = ?", title).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var langPOSIDs, meaningIDs []int64
		if err := tx.Model(&model.LangPOS{}).Where("page_id = ?", page.ID).Pluck("id", &langPOSIDs).Error; err != nil {
			return err
		}
		if len(langPOSIDs) > 0 {
			if err := tx.Model(&model.Meaning{}).Where("lang_pos_id IN ?", langPOSIDs).Pluck("id", &meaningIDs).Error; err != nil {
				return err
			}
		}
		if len(meaningIDs) > 0 {
			if err := tx.Where("meaning_id IN ?", meaningIDs).Delete(&model.Relation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("meaning_id IN ?", meaningIDs).Delete(&model.Translation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", meaningIDs).Delete(&model.Meaning{}).Error; err != nil {
				return err
			}
		}
		if len(langPOSIDs) > 0 {
			if err := tx.Where("id IN ?", langPOSIDs).Delete(&model.LangPOS{}).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", page.ID).Delete(&model.Page{})
		affected = res.RowsAffected
		return res.Error
	})

	return affected, err
}

func (g *GormStore) CreateLangPOS(ctx context.Context, langPOS *model.LangPOS) error {
	return g.db.WithContext(ctx).Create(langPOS).Error
}

func (g *GormStore) CreateMeaning(ctx context.Context, meaning *model.Meaning) error {
	return g.db.WithContext(ctx).Create(meaning).Error
}

func (g *GormStore) CreateRelation(ctx context.Context, relation *model.Relation) error {
	return g.db.WithContext(ctx).Create(relation).Error
}

func (g *GormStore) CreateTranslation(ctx context.Context, translation *model.Translation) error {
	return g.db.WithContext(ctx).Create(translation).Error
}

func (g *GormStore) ListLangPOS(ctx context.Context, pageID int64) ([]*model.LangPOS, error) {
	langPOS := make([]*model.LangPOS, 0)
	err := g.db.WithContext(ctx).Where("page_id = ?", pageID).Order("id").Find(&langPOS).Error
	return langPOS, err
}

func (g *GormStore) ListMeanings(ctx context.Context, langPOSIDs []int64) ([]*model.Meaning, error) {
	meanings := make([]*model.Meaning, 0)
	if len(langPOSIDs) == 0 {
		return meanings, nil
	}
	err := g.db.WithContext(ctx).Where("lang_pos_id IN ?", langPOSIDs).Order("meaning_n, id").Find(&meanings).Error
	return meanings, err
}

func (g *GormStore) ListRelations(ctx context.Context, meaningIDs []int64) ([]*model.Relation, error) {
	relations := make([]*model.Relation, 0)
	if len(meaningIDs) == 0 {
		return relations, nil
	}
	err := g.db.WithContext(ctx).Where("meaning_id IN ?", meaningIDs).Order("id").Find(&relations).Error
	return relations, err
}

func (g *GormStore) ListTranslations(ctx context.Context, meaningIDs []int64) ([]*model.Translation, error) {
	translations := make([]*model.Translation, 0)
	if len(meaningIDs) == 0 {
		return translations, nil
	}
	err := g.db.WithContext(ctx).Where("meaning_id IN ?", meaningIDs).Order("id").Find(&translations).Error
	return translations, err
}

func (g *GormStore) ListRelationTypes(ctx context.Context) ([]*model.RelationType, error) {
	relationTypes := make([]*model.RelationType, 0)
	err := g.db.WithContext(ctx).Order("id").Find(&relationTypes).Error
	return relationTypes, err
}

func (g *GormStore) CreateRelationType(ctx context.Context, relationType *model.RelationType) error {
	return g.db.WithContext(ctx).Create(relationType).Error
}

// DeleteRelationTypes empties the table 'relation_type' and restarts its id
// sequence, so that re-inserted rows get ids from 1 again.
func (g *GormStore) DeleteRelationTypes(ctx context.Context) (int64, error) {
	db := g.db.WithContext(ctx)
	table := model.RelationType{}.TableName()

	switch db.Dialector.Name() {
	case "postgres":
		var count int64
		if err := db.Model(&model.RelationType{}).Count(&count).Error; err != nil {
			return 0, err
		}
		if err := db.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY").Error; err != nil {
			return 0, err
		}
		return count, nil
	case "sqlite":
		res := db.Where("1 = 1").Delete(&model.RelationType{})
		if res.Error != nil {
			return 0, res.Error
		}
		// sqlite_sequence only exists once an AUTOINCREMENT table was written to
		if err := db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error; err != nil {
			logrus.Debugf("reset sequence of %s: %v", table, err)
		}
		return res.RowsAffected, nil
	default:
		res := db.Where("1 = 1").Delete(&model.RelationType{})
		return res.RowsAffected, res.Error
	}
}

func (g *GormStore) DeleteRelationTypeByName(ctx context.Context, name string) (int64, error) {
	res := g.db.WithContext(ctx).Where("name = ?", name).Delete(&model.RelationType{})
	return res.RowsAffected, res.Error
}

func (g *GormStore) Count(ctx context.Context, table string) (int64, error) {
	if _, ok := tables[table]; !ok {
		return 0, ErrUnknownTable
	}

	var count int64
	err := g.db.WithContext(ctx).Table(table).Count(&count).Error
	return count, err
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
