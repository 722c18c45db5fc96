package web

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"server/config"
	"server/db"
	"server/models"
	"server/storage"
	"server/utils"
)

// PostForm is the validated submission for creating/editing a post:
// text required, group optional (must exist), image optional.
type PostForm struct {
	Text      string
	GroupID   *uint64
	ImagePath string
	Errors    map[string]string
}

func (f *PostForm) Valid() bool { return len(f.Errors) == 0 }

func bindPostForm(c *gin.Context) PostForm {
	form := PostForm{
		Text:   strings.TrimSpace(c.PostForm("text")),
		Errors: map[string]string{},
	}
	if form.Text == "" {
		form.Errors["text"] = "Text is required"
	}
	if g := c.PostForm("group"); g != "" {
		id, err := strconv.ParseUint(g, 10, 64)
		if err == nil {
			var group models.Group
			err = db.Instance.First(&group, id).Error
		}
		if err != nil {
			form.Errors["group"] = "Unknown group"
		} else {
			form.GroupID = &id
		}
	}
	form.ImagePath = bindPostImage(c, form.Errors)
	return form
}

// bindPostImage stores an uploaded image (if any) under the posts/
// namespace with a generated name and returns its path.
func bindPostImage(c *gin.Context, errors map[string]string) string {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return ""
	}
	file, err := fileHeader.Open()
	if err != nil {
		errors["image"] = "Could not read the uploaded file"
		return ""
	}
	defer file.Close()
	data, ext, err := utils.DownscaleImage(file, config.MAX_IMAGE_WIDTH)
	if err != nil {
		errors["image"] = "Upload a valid image"
		return ""
	}
	path := "posts/" + uuid.New().String() + ext
	if _, err = storage.Get().Save(path, bytes.NewReader(data)); err != nil {
		errors["image"] = "Could not store the image"
		return ""
	}
	return path
}

// GroupForm is the validated submission for creating a group:
// title and a unique URL-safe slug required.
type GroupForm struct {
	Title       string
	Slug        string
	Description string
	Errors      map[string]string
}

func (f *GroupForm) Valid() bool { return len(f.Errors) == 0 }

func bindGroupForm(c *gin.Context) GroupForm {
	form := GroupForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Slug:        strings.TrimSpace(c.PostForm("slug")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Errors:      map[string]string{},
	}
	if form.Title == "" {
		form.Errors["title"] = "Title is required"
	}
	if !utils.ValidSlug(form.Slug) {
		form.Errors["slug"] = "Slug may only contain lowercase letters, digits, '-' and '_'"
	} else if _, err := models.GroupBySlug(form.Slug); err == nil {
		form.Errors["slug"] = "This slug is already taken"
	}
	return form
}
