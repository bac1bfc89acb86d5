package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v; want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v, err %v; want hit", ok, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Get data = %q", data)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after Delete should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheClear(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	removed, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 2 {
		t.Errorf("Clear removed %d entries, want 2", removed)
	}
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Error("Clear should drop all entries")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache should never hit")
	}
}

func TestRenderKeyDeterministic(t *testing.T) {
	a := RenderKey("abc", "svg", 400, 400, true, true, "t", 0)
	b := RenderKey("abc", "svg", 400, 400, true, true, "t", 0)
	if a != b {
		t.Error("same inputs should produce the same key")
	}

	variants := []string{
		RenderKey("abd", "svg", 400, 400, true, true, "t", 0),
		RenderKey("abc", "png", 400, 400, true, true, "t", 0),
		RenderKey("abc", "svg", 401, 400, true, true, "t", 0),
		RenderKey("abc", "svg", 400, 400, false, true, "t", 0),
		RenderKey("abc", "svg", 400, 400, true, true, "other", 0),
		RenderKey("abc", "svg", 400, 400, true, true, "t", 2),
	}
	for i, v := range variants {
		if v == a {
			t.Errorf("variant %d should change the key", i)
		}
	}
}

func TestHash(t *testing.T) {
	h := Hash([]byte("tree"))
	if len(h) != 64 {
		t.Errorf("Hash length = %d, want 64", len(h))
	}
	if h != Hash([]byte("tree")) {
		t.Error("Hash should be deterministic")
	}
}
