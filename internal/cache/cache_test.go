package cache_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/geocoder89/userhub/internal/cache"
)

func TestMemorySetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(time.Minute)

	if _, ok := c.Get(ctx, cache.UsersListKey); ok {
		t.Fatal("empty cache reported a hit")
	}

	c.Set(ctx, cache.UsersListKey, []byte(`[{"id":"1"}]`))

	got, ok := c.Get(ctx, cache.UsersListKey)

	if !ok || !bytes.Equal(got, []byte(`[{"id":"1"}]`)) {
		t.Fatalf("get = %s, %v", got, ok)
	}

	c.Delete(ctx, cache.UsersListKey)

	if _, ok := c.Get(ctx, cache.UsersListKey); ok {
		t.Fatal("deleted key reported a hit")
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory(10 * time.Millisecond)

	c.Set(ctx, "k", []byte("v"))

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expired entry reported a hit")
	}
}
