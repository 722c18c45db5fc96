package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type failedResponseWriter struct {
	gin.ResponseWriter
	context *gin.Context
}

func (w failedResponseWriter) Write(b []byte) (int, error) {
	if status := w.context.Writer.Status(); status >= 400 {
		log.Printf("%s %s failed with %d: %s",
			w.context.Request.Method, w.context.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// FailedResponseLog logs the body of every error response. It reads the
// bytes before compression, so it must be installed ahead of gzip.
func FailedResponseLog(c *gin.Context) {
	c.Writer = &failedResponseWriter{ResponseWriter: c.Writer, context: c}
	c.Next()
}
