package models

import (
	"time"

	"server/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order"`
	UpdatedAt int64
	UserID    uint64 `gorm:"index:post_author"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	ImagePath string     `gorm:"type:varchar(300)"`
	Views     []ViewerIP `gorm:"many2many:post_views;constraint:OnDelete:CASCADE;"`
}

// Published is the immutable creation time, for display.
func (p Post) Published() time.Time { return time.Unix(p.CreatedAt, 0) }

// PostByID loads a post together with its author and group.
func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&p, id).Error
	return
}

// PostOfAuthor loads a post checking it belongs to the given username.
// A mismatched (username, id) pair behaves like a missing record.
func PostOfAuthor(username string, id uint64) (p Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").
		Joins("join users on users.id = posts.user_id").
		Where("posts.id = ? and users.username = ?", id, username).
		First(&p).Error
	return
}

func PostCountOf(userID uint64) int64 {
	var cnt int64
	db.Instance.Model(&Post{}).Where("user_id = ?", userID).Count(&cnt)
	return cnt
}
