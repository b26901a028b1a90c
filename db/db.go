package db

import (
	"gallery/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var err error
	var db *gorm.DB
	options := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), options)
	} else {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), options)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
