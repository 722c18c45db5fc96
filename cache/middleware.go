package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Page caches successful GET renderings of the routes it wraps.
// The key is the path plus the page number, so every page of a feed
// is cached on its own.
func Page(store Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.Path + "?page=" + c.Query("page")
		if entry, ok := store.Get(c.Request.Context(), key); ok {
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() != http.StatusOK {
			return
		}
		_ = store.Set(c.Request.Context(), key, Entry{
			Status:      writer.Status(),
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}, ttl)
	}
}
