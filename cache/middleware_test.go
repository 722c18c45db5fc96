package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func cachedRouter(store Store, ttl time.Duration, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", Page(store, ttl), func(c *gin.Context) {
		*hits++
		c.String(http.StatusOK, fmt.Sprintf("rendering %d", *hits))
	})
	router.GET("/missing", Page(store, ttl), func(c *gin.Context) {
		c.String(http.StatusNotFound, "nope")
	})
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

// A second request inside the window gets the first rendering back,
// even though the handler would render something newer.
func TestPageServesStaleWithinWindow(t *testing.T) {
	store := NewMemoryStore()
	hits := 0
	router := cachedRouter(store, time.Minute, &hits)

	first := get(router, "/")
	second := get(router, "/")
	if first.Body.String() != "rendering 1" {
		t.Fatalf("first response = %q", first.Body.String())
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("second response = %q, want the cached %q", second.Body.String(), first.Body.String())
	}
	if hits != 1 {
		t.Errorf("handler ran %d times, want 1", hits)
	}

	if err := store.Clear(context.Background()); err != nil {
		t.Fatal(err)
	}
	third := get(router, "/")
	if third.Body.String() != "rendering 2" {
		t.Errorf("response after clear = %q, want a fresh rendering", third.Body.String())
	}
}

func TestPageKeyIncludesPageNumber(t *testing.T) {
	store := NewMemoryStore()
	hits := 0
	router := cachedRouter(store, time.Minute, &hits)

	get(router, "/?page=1")
	get(router, "/?page=2")
	if hits != 2 {
		t.Errorf("handler ran %d times for two distinct pages, want 2", hits)
	}
	get(router, "/?page=2")
	if hits != 2 {
		t.Errorf("repeated page was rendered again (%d runs)", hits)
	}
}

func TestPageSkipsFailedRenderings(t *testing.T) {
	store := NewMemoryStore()
	hits := 0
	router := cachedRouter(store, time.Minute, &hits)

	get(router, "/missing")
	if _, ok := store.Get(context.Background(), "/missing?page="); ok {
		t.Error("a non-200 response was cached")
	}
}
