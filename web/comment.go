package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"server/db"
	"server/models"
)

// AddComment appends a comment to a post and returns to the post page.
// An empty comment re-renders the post page with a field message.
func AddComment(c *gin.Context, user *models.User) {
	username := c.Param("username")
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostOfAuthor(username, postID)
	if err != nil {
		notFound(c)
		return
	}
	postPath := "/" + username + "/" + c.Param("post_id") + "/"
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		comments, _ := models.CommentsOf(post.ID)
		render(c, http.StatusOK, "post.tmpl", gin.H{
			"author":        post.User,
			"post":          post,
			"post_count":    models.PostCountOf(post.UserID),
			"views":         models.TotalViews(&post),
			"comments":      comments,
			"comment_error": "Text is required",
		})
		return
	}
	comment := models.Comment{PostID: post.ID, UserID: user.ID, Text: text}
	if err = db.Instance.Create(&comment).Error; err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, postPath)
}

// CommentDelete removes a comment when the caller wrote it or owns the
// post under it. Anyone else is silently redirected.
func CommentDelete(c *gin.Context, user *models.User) {
	// The first path segment carries the comment id (shared wildcard
	// name, see the route table)
	commentID, err := strconv.ParseUint(c.Param("username"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	comment, err := models.CommentByID(commentID)
	if err != nil {
		notFound(c)
		return
	}
	if user.ID == comment.UserID || user.ID == comment.Post.UserID {
		if err = db.Instance.Delete(&models.Comment{}, comment.ID).Error; err != nil {
			serverError(c)
			return
		}
	}
	c.Redirect(http.StatusFound,
		"/"+comment.Post.User.Username+"/"+strconv.FormatUint(comment.PostID, 10)+"/")
}
