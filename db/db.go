package db

import (
	"strings"

	"server/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

// sqliteDSN makes sure foreign keys are switched on; the cascade and
// SET NULL constraints on the models are dead letters without it.
func sqliteDSN(file string) string {
	if strings.Contains(file, "_foreign_keys") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}

func Init() {
	var (
		db  *gorm.DB
		err error
	)
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), &gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
		})
	} else if config.SQLITE_FILE != "" {
		db, err = gorm.Open(sqlite.Open(sqliteDSN(config.SQLITE_FILE)), &gorm.Config{})
	} else {
		panic("neither MYSQL_DSN nor SQLITE_FILE is configured")
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
