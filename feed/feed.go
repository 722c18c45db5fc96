package feed

import (
	"gorm.io/gorm"

	"server/config"
	"server/db"
	"server/models"
)

// Every feed is the same shape: a filter over posts, newest first,
// one fixed-size page at a time.

func postQuery() *gorm.DB {
	// Qualified ordering: the followed feed joins another table that
	// also carries created_at and id columns
	return db.Instance.Model(&models.Post{}).
		Preload("User").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

func fetchPage(query *gorm.DB, page string) ([]models.Post, Pagination, error) {
	query = query.Session(&gorm.Session{})
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, Pagination{}, err
	}
	pg := Paginate(count, config.PAGINATOR_YA, page)
	var posts []models.Post
	err := query.Offset(pg.Offset()).Limit(pg.PerPage).Find(&posts).Error
	return posts, pg, err
}

// Home returns the page of all posts for the front page.
func Home(page string) ([]models.Post, Pagination, error) {
	return fetchPage(postQuery(), page)
}

// Group resolves a group by slug and returns its page of posts.
func Group(slug, page string) (models.Group, []models.Post, Pagination, error) {
	group, err := models.GroupBySlug(slug)
	if err != nil {
		return models.Group{}, nil, Pagination{}, err
	}
	posts, pg, err := fetchPage(postQuery().Where("group_id = ?", group.ID), page)
	return group, posts, pg, err
}

// ProfilePage is the profile feed plus its annotations.
type ProfilePage struct {
	Author    models.User
	Posts     []models.Post
	Page      Pagination
	PostCount int64
	Following bool
}

// Profile resolves an author by username and returns their page of posts,
// annotated with the author's total post count and whether viewerID
// already follows them (always false for anonymous viewers).
func Profile(username, page string, viewerID uint64) (ProfilePage, error) {
	author, err := models.UserByUsername(username)
	if err != nil {
		return ProfilePage{}, err
	}
	posts, pg, err := fetchPage(postQuery().Where("user_id = ?", author.ID), page)
	if err != nil {
		return ProfilePage{}, err
	}
	return ProfilePage{
		Author:    author,
		Posts:     posts,
		Page:      pg,
		PostCount: pg.Count,
		Following: viewerID != 0 && models.IsFollowing(viewerID, author.ID),
	}, nil
}

// Followed returns the page of posts written by authors the user follows.
func Followed(userID uint64, page string) ([]models.Post, Pagination, error) {
	query := postQuery().
		Joins("join follows on follows.author_id = posts.user_id").
		Where("follows.user_id = ?", userID)
	return fetchPage(query, page)
}

// Groups returns one page of all groups for the group list.
func Groups(page string) ([]models.Group, Pagination, error) {
	var count int64
	if err := db.Instance.Model(&models.Group{}).Count(&count).Error; err != nil {
		return nil, Pagination{}, err
	}
	pg := Paginate(count, config.PAGINATOR_YA, page)
	var groups []models.Group
	err := db.Instance.Model(&models.Group{}).
		Order("title ASC").
		Offset(pg.Offset()).Limit(pg.PerPage).
		Find(&groups).Error
	return groups, pg, err
}
