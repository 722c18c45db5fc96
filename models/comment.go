package models

import (
	"time"

	"server/db"
)

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	PostID    uint64
	Post      Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func (c Comment) Published() time.Time { return time.Unix(c.CreatedAt, 0) }

// CommentsOf returns a post's comments, oldest first.
func CommentsOf(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}

// CommentByID loads a comment together with its post and the post's author,
// needed for the delete permission check.
func CommentByID(id uint64) (c Comment, err error) {
	err = db.Instance.Preload("Post").Preload("Post.User").First(&c, id).Error
	return
}
