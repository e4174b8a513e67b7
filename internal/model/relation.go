package model

// Relation links a meaning to a related word, e.g. a synonym.
// RelationTypeID points into the table 'relation_type'.
type Relation struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	MeaningID      int64  `gorm:"not null;index:idx_relation_meaning_id"`
	RelationTypeID int64  `gorm:"not null"`
	WikiText       string `gorm:"not null"`
}

func (Relation) TableName() string {
	return "relation"
}

// Translation of a meaning into another language.
type Translation struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	MeaningID int64  `gorm:"not null;index:idx_translation_meaning_id"`
	Lang      string `gorm:"not null;size:16"`
	WikiText  string `gorm:"not null"`
}

func (Translation) TableName() string {
	return "translation"
}

// RelationType is a row of the table 'relation_type': the persisted id of a
// semantic relation name.
type RelationType struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"uniqueIndex;not null;size:64"`
}

func (RelationType) TableName() string {
	return "relation_type"
}
