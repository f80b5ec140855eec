package application

import (
	"testing"
	"time"
)

func TestContentCacheSetGet(t *testing.T) {
	cache := NewContentCache(time.Minute)

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("empty cache should miss")
	}

	cache.Set("key", "value")
	got, ok := cache.Get("key")
	if !ok || got.(string) != "value" {
		t.Fatalf("Get = (%v, %v), want (value, true)", got, ok)
	}

	cache.Invalidate("key")
	if _, ok := cache.Get("key"); ok {
		t.Fatal("invalidated key should miss")
	}
}

func TestContentCacheExpiry(t *testing.T) {
	cache := NewContentCache(10 * time.Millisecond)

	cache.Set("key", 42)
	time.Sleep(25 * time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Fatal("expired entry should miss")
	}
	// Expired entries linger until cleanup but are never served.
	if cache.Size() == 0 {
		t.Skip("cleanup already ran")
	}
}

func TestContentCacheClear(t *testing.T) {
	cache := NewContentCache(time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Clear()
	if cache.Size() != 0 {
		t.Fatalf("Size = %d after Clear, want 0", cache.Size())
	}
}
