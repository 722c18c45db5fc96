package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"server/auth"
	"server/models"
)

func safeNext(c *gin.Context) string {
	next := c.Query("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// Login shows and processes the login form.
func Login(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		render(c, http.StatusOK, "login.tmpl", gin.H{"next": c.Query("next")})
		return
	}
	username := strings.TrimSpace(c.PostForm("username"))
	user, ok := models.UserLogin(username, c.PostForm("password"))
	if !ok {
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"next":  c.Query("next"),
			"error": "Wrong username or password",
		})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, safeNext(c))
}

// Signup shows and processes the registration form.
func Signup(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		render(c, http.StatusOK, "signup.tmpl", gin.H{})
		return
	}
	username := strings.TrimSpace(c.PostForm("username"))
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	errs := map[string]string{}
	if username == "" {
		errs["username"] = "Username is required"
	} else if _, err := models.UserByUsername(username); err == nil {
		errs["username"] = "This username is already taken"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		render(c, http.StatusOK, "signup.tmpl", gin.H{"errors": errs})
		return
	}
	user, err := models.UserCreate(username, name, email, password)
	if err != nil {
		serverError(c)
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
