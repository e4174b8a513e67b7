package tester

import (
	"path/filepath"
	"testing"

	"github.com/emrgen/wikt/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated sqlite database in a temporary directory of t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wikt.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := model.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// Page inserts a page row and returns it with its generated id.
func Page(t testing.TB, db *gorm.DB, title string, redirect *string) *model.Page {
	t.Helper()

	page := &model.Page{
		PageTitle:      title,
		WordCount:      len(title),
		WikiLinkCount:  1,
		IsInWiktionary: true,
		IsRedirect:     redirect != nil,
		RedirectTarget: redirect,
	}
	if err := db.Create(page).Error; err != nil {
		t.Fatalf("create page %q: %v", title, err)
	}
	return page
}

// Sense describes one meaning seeded under a language-POS group.
type Sense struct {
	Definition   string
	Relations    map[int64]string // relation type id -> related word
	Translations map[string]string
}

// LangPOS inserts a language-POS group with its meanings under a page.
func LangPOS(t testing.TB, db *gorm.DB, pageID int64, lang, pos string, senses ...Sense) *model.LangPOS {
	t.Helper()

	langPOS := &model.LangPOS{PageID: pageID, Lang: lang, POS: pos}
	if err := db.Create(langPOS).Error; err != nil {
		t.Fatalf("create lang_pos: %v", err)
	}

	for i, sense := range senses {
		meaning := &model.Meaning{LangPOSID: langPOS.ID, MeaningN: i, WikiText: sense.Definition}
		if err := db.Create(meaning).Error; err != nil {
			t.Fatalf("create meaning: %v", err)
		}
		for typeID, word := range sense.Relations {
			rel := &model.Relation{MeaningID: meaning.ID, RelationTypeID: typeID, WikiText: word}
			if err := db.Create(rel).Error; err != nil {
				t.Fatalf("create relation: %v", err)
			}
		}
		for lang, text := range sense.Translations {
			tr := &model.Translation{MeaningID: meaning.ID, Lang: lang, WikiText: text}
			if err := db.Create(tr).Error; err != nil {
				t.Fatalf("create translation: %v", err)
			}
		}
	}

	return langPOS
}

// RelationTypes inserts one row per name and returns the ids by name.
func RelationTypes(t testing.TB, db *gorm.DB, names ...string) map[string]int64 {
	t.Helper()

	ids := make(map[string]int64, len(names))
	for _, name := range names {
		row := &model.RelationType{Name: name}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("create relation_type %q: %v", name, err)
		}
		ids[name] = row.ID
	}
	return ids
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
