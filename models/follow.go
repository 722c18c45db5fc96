package models

import (
	"errors"

	"gorm.io/gorm/clause"

	"server/db"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// Follow is a directed edge: UserID follows AuthorID.
// The composite unique key keeps the edge single no matter how
// many times it is requested.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:idx_follow_pair,unique;not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:idx_follow_pair,unique;not null"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor idempotently ensures the (user, author) edge exists.
// Following yourself is refused with ErrSelfFollow.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	f := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.Clauses(clause.OnConflict{DoNothing: true}).Create(&f).Error
}

// UnfollowAuthor removes the (user, author) edge. Removing an edge that
// does not exist is not an error.
func UnfollowAuthor(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? and author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var cnt int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&cnt)
	return cnt > 0
}
