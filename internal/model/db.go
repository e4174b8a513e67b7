package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Page{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&LangPOS{}, &Meaning{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Relation{}, &Translation{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&RelationType{}); err != nil {
		return err
	}

	return nil
}
