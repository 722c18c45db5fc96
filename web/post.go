package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"server/db"
	"server/models"
	"server/storage"
	"server/utils"
)

// PostView renders a single post with its comments and records a view
// for the visitor's address (each address counts once per post).
func PostView(c *gin.Context) {
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
	address := utils.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
	if err = models.RecordView(&post, address); err != nil {
		serverError(c)
		return
	}
	comments, err := models.CommentsOf(post.ID)
	if err != nil {
		serverError(c)
		return
	}
	render(c, http.StatusOK, "post.tmpl", gin.H{
		"author":     post.User,
		"post":       post,
		"post_count": models.PostCountOf(post.UserID),
		"views":      models.TotalViews(&post),
		"comments":   comments,
	})
}

// NewPost shows and processes the post creation form.
func NewPost(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		renderPostForm(c, PostForm{Errors: map[string]string{}}, "add")
		return
	}
	form := bindPostForm(c)
	if !form.Valid() {
		renderPostForm(c, form, "add")
		return
	}
	post := models.Post{
		UserID:    user.ID,
		GroupID:   form.GroupID,
		Text:      form.Text,
		ImagePath: form.ImagePath,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// EditPost lets the author change text, group and image of their post.
// Anyone else is bounced back to the post page.
func EditPost(c *gin.Context, user *models.User) {
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
	if user.Username != username {
		c.Redirect(http.StatusFound, postPath)
		return
	}
	if c.Request.Method == http.MethodGet {
		form := PostForm{Text: post.Text, GroupID: post.GroupID, Errors: map[string]string{}}
		renderPostForm(c, form, "edit")
		return
	}
	form := bindPostForm(c)
	if !form.Valid() {
		renderPostForm(c, form, "edit")
		return
	}
	post.Text = form.Text
	post.GroupID = form.GroupID
	post.Group = nil
	if form.ImagePath != "" {
		if post.ImagePath != "" {
			_ = storage.Get().Delete(post.ImagePath)
		}
		post.ImagePath = form.ImagePath
	}
	updates := map[string]interface{}{
		"text":       post.Text,
		"group_id":   post.GroupID,
		"image_path": post.ImagePath,
	}
	if err := db.Instance.Model(&post).Updates(updates).Error; err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, postPath)
}

// PostDelete removes a post if the caller owns it. A non-owner is
// silently redirected, the post stays.
func PostDelete(c *gin.Context, user *models.User) {
	// The first path segment carries the post id here; gin allows a
	// single wildcard name per segment, so it arrives as "username"
	postID, err := strconv.ParseUint(c.Param("username"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}
	post, err := models.PostByID(postID)
	if err != nil {
		notFound(c)
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, "/"+post.User.Username+"/")
		return
	}
	// Comments and view records go with the post via FK cascades
	if err = db.Instance.Delete(&models.Post{}, post.ID).Error; err != nil {
		serverError(c)
		return
	}
	if post.ImagePath != "" {
		_ = storage.Get().Delete(post.ImagePath)
	}
	c.Redirect(http.StatusFound, "/"+user.Username+"/")
}

func renderPostForm(c *gin.Context, form PostForm, rename string) {
	var groups []models.Group
	db.Instance.Order("title ASC").Find(&groups)
	selected := uint64(0)
	if form.GroupID != nil {
		selected = *form.GroupID
	}
	render(c, http.StatusOK, "new_post.tmpl", gin.H{
		"form":           form,
		"groups":         groups,
		"rename":         rename,
		"selected_group": selected,
	})
}
