package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"server/db"
	"server/models"
)

// NewGroup shows and processes the group creation form.
func NewGroup(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		render(c, http.StatusOK, "new_group.tmpl", gin.H{
			"form": GroupForm{Errors: map[string]string{}},
		})
		return
	}
	form := bindGroupForm(c)
	if !form.Valid() {
		render(c, http.StatusOK, "new_group.tmpl", gin.H{"form": form})
		return
	}
	group := models.Group{
		Title:       form.Title,
		Slug:        form.Slug,
		Description: form.Description,
	}
	if err := db.Instance.Create(&group).Error; err != nil {
		serverError(c)
		return
	}
	c.Redirect(http.StatusFound, "/group_list/")
}
