package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"server/auth"
)

// render adds the signed-in user (for the navbar) to every page context.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if _, ok := data["user"]; !ok {
		data["user"] = auth.LoadSession(c).User()
	}
	c.HTML(status, tmpl, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
}

func serverError(c *gin.Context) {
	render(c, http.StatusInternalServerError, "500.tmpl", gin.H{})
}

func PageNotFound(c *gin.Context) {
	notFound(c)
}

func ServerError(c *gin.Context) {
	serverError(c)
}
