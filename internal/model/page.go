package model

// Page is a row of the table 'page': one wiki page title.
// IsRedirect and RedirectTarget describe a hard redirect (#REDIRECT);
// a soft redirect lives in LangPOS.Lemma.
type Page struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	PageTitle      string  `gorm:"uniqueIndex;not null"`
	WordCount      int     `gorm:"not null;default:0"`
	WikiLinkCount  int     `gorm:"not null;default:0"`
	IsInWiktionary bool    `gorm:"not null;default:false"`
	IsRedirect     bool    `gorm:"not null;default:false;index"`
	RedirectTarget *string `gorm:"size:255"`
}

func (Page) TableName() string {
	return "page"
}

// Target returns the redirect target when the row is a consistent redirect.
// A row flagged as redirect without a target, or a target without the flag,
// is read as an ordinary entry.
func (p *Page) Target() *string {
	if !p.IsRedirect || p.RedirectTarget == nil || *p.RedirectTarget == "" {
		return nil
	}

	target := *p.RedirectTarget
	return &target
}
