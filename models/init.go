package models

import (
	"gallery/db"
)

func Init() {
	db.Instance.AutoMigrate(&Artwork{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Commenter{})
	db.Instance.AutoMigrate(&Like{})
}
