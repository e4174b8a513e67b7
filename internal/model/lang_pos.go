package model

// LangPOS is a (language, part of speech) group of a page.
type LangPOS struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	PageID     int64   `gorm:"not null;index:idx_lang_pos_page_id"`
	Lang       string  `gorm:"not null;size:16"`
	POS        string  `gorm:"column:pos;not null;size:64"`
	EtymologyN int     `gorm:"not null;default:0"`
	Lemma      *string `gorm:"size:255"` // soft redirect
}

func (LangPOS) TableName() string {
	return "lang_pos"
}

// Meaning is one definition of a LangPOS group.
type Meaning struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	LangPOSID int64  `gorm:"column:lang_pos_id;not null;index:idx_meaning_lang_pos_id"`
	MeaningN  int    `gorm:"not null;default:0"`
	WikiText  string `gorm:"type:text"`
}

func (Meaning) TableName() string {
	return "meaning"
}
