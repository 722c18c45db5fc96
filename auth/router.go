package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"server/models"
)

const LoginPath = "/auth/login/"

// HandlerFunc receives the already-loaded signed-in user.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the login check + User pre-loading.
// Anonymous visitors are redirected to the login page, never shown an
// error status.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
