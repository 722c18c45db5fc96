package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"server/auth"
	"server/feed"
	"server/models"
)

func Index(c *gin.Context) {
	posts, page, err := feed.Home(c.Query("page"))
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"posts": posts, "page": page})
}

func GroupPosts(c *gin.Context) {
	group, posts, page, err := feed.Group(c.Param("slug"), c.Query("page"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "group.tmpl", gin.H{"group": group, "posts": posts, "page": page})
}

func GroupList(c *gin.Context) {
	groups, page, err := feed.Groups(c.Query("page"))
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{"groups": groups, "page": page})
}

func Profile(c *gin.Context) {
	viewerID := auth.LoadSession(c).UserID()
	profile, err := feed.Profile(c.Param("username"), c.Query("page"), viewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"author":     profile.Author,
		"posts":      profile.Posts,
		"page":       profile.Page,
		"post_count": profile.PostCount,
		"following":  profile.Following,
	})
}

func FollowIndex(c *gin.Context, user *models.User) {
	posts, page, err := feed.Followed(user.ID, c.Query("page"))
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{"posts": posts, "page": page})
}
