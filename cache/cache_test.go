package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	entry := Entry{Status: 200, ContentType: "text/html", Body: []byte("<p>hi</p>")}

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Error("Get returned a missing entry")
	}
	if err := store.Set(ctx, "k", entry, 50*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := store.Get(ctx, "k")
	if !ok || string(got.Body) != "<p>hi</p>" {
		t.Errorf("Get = %+v, %v", got, ok)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok = store.Get(ctx, "k"); ok {
		t.Error("entry survived past its TTL")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, "k", Entry{Status: 200}, time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("entry survived Clear")
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()
	entry := Entry{Status: 200, ContentType: "text/html", Body: []byte("<p>hi</p>")}

	if err := store.Set(ctx, "k", entry, 20*time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := store.Get(ctx, "k")
	if !ok || string(got.Body) != "<p>hi</p>" || got.ContentType != "text/html" {
		t.Errorf("Get = %+v, %v", got, ok)
	}

	mr.FastForward(21 * time.Second)
	if _, ok = store.Get(ctx, "k"); ok {
		t.Error("entry survived past its TTL")
	}
}
