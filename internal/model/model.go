package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Folder":
		return db.AutoMigrate(Folder{})

	case "File":
		return db.AutoMigrate(File{})
	}
	return nil
}
