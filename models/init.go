package models

import (
	"server/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Group{})
	db.Instance.AutoMigrate(&Post{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Follow{})
	db.Instance.AutoMigrate(&ViewerIP{})
}
