package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"server/models"
)

// ProfileFollow starts following the author. Trying to follow yourself
// quietly does nothing; following twice keeps a single edge.
func ProfileFollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, err := models.UserByUsername(username)
	if err != nil {
		notFound(c)
		return
	}
	if err = models.FollowAuthor(user.ID, author.ID); err != nil && !errors.Is(err, models.ErrSelfFollow) {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/"+username+"/")
}

// ProfileUnfollow removes the caller's follow edge to the author.
func ProfileUnfollow(c *gin.Context, user *models.User) {
	username := c.Param("username")
	author, err := models.UserByUsername(username)
	if err != nil {
		notFound(c)
		return
	}
	if err = models.UnfollowAuthor(user.ID, author.ID); err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/"+username+"/")
}
