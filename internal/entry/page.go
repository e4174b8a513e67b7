package entry

import (
	"fmt"

	"github.com/emrgen/wikt/internal/model"
	"github.com/emrgen/wikt/internal/relation"
)

// Page is a dictionary entry with its language-POS groups.
type Page struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	WordCount      int        `json:"word_count"`
	WikiLinkCount  int        `json:"wiki_link_count"`
	InWiktionary   bool       `json:"in_wiktionary"`
	RedirectTarget *string    `json:"redirect_target,omitempty"` // hard redirect (#REDIRECT)
	LangPOS        []*LangPOS `json:"lang_pos"`
}

// LangPOS groups the meanings of one language and part of speech.
type LangPOS struct {
	ID       int64      `json:"id"`
	Lang     string     `json:"lang"`
	POS      string     `json:"pos"`
	Lemma    *string    `json:"lemma,omitempty"` // soft redirect
	Meanings []*Meaning `json:"meanings"`
}

type Meaning struct {
	ID           int64         `json:"id"`
	Definition   string        `json:"definition"`
	Relations    []Relation    `json:"relations"`
	Translations []Translation `json:"translations"`
}

type Relation struct {
	Kind   relation.Kind `json:"kind"`
	Target string        `json:"target"`
}

type Translation struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// NewPage creates a page without language-POS data. An empty redirect
// target means the page is not a redirect.
func NewPage(id int64, title string, wordCount, wikiLinkCount int, inWiktionary bool, redirectTarget *string) *Page {
	if redirectTarget != nil && *redirectTarget == "" {
		redirectTarget = nil
	}

	return &Page{
		ID:             id,
		Title:          title,
		WordCount:      wordCount,
		WikiLinkCount:  wikiLinkCount,
		InWiktionary:   inWiktionary,
		RedirectTarget: redirectTarget,
		LangPOS:        make([]*LangPOS, 0),
	}
}

func pageFromRow(row *model.Page) *Page {
	return NewPage(row.ID, row.PageTitle, row.WordCount, row.WikiLinkCount, row.IsInWiktionary, row.Target())
}

// IsRedirect reports whether the page is a hard redirect.
func (p *Page) IsRedirect() bool {
	return p.RedirectTarget != nil
}

// Redirect returns the redirect target and whether the page is a redirect.
func (p *Page) Redirect() (string, bool) {
	if p.RedirectTarget == nil {
		return "", false
	}
	return *p.RedirectTarget, true
}

func (p *Page) String() string {
	return fmt.Sprintf("id=%d; page_title=%s", p.ID, p.Title)
}

// PageTitles returns the titles of the pages in order.
func PageTitles(pages []*Page) []string {
	titles := make([]string, 0, len(pages))
	for _, p := range pages {
		titles = append(titles, p.Title)
	}
	return titles
}
