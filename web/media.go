package web

import (
	"strings"

	"github.com/gin-gonic/gin"

	"server/storage"
)

// Media serves uploaded post images from the configured backend.
func Media(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if !strings.HasPrefix(path, "posts/") || strings.Contains(path, "..") {
		notFound(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
