package cache

import (
	"testing"
	"time"
)

func TestLRUCacheBasic(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 2})

	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	// "b" is now least recently used; adding "c" evicts it.
	c.Put("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Errorf("Get(b) should miss after eviction")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", v, ok)
	}
}

func TestLRUCacheUnbounded(t *testing.T) {
	// MaxSize 0 means no eviction: entries live until Clear.
	c := NewLRUCache[int, int](Config{MaxSize: 0})
	for i := 0; i < 1000; i++ {
		c.Put(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
	stats := c.Stats()
	if stats.Evictions != 0 {
		t.Errorf("Evictions = %d, want 0", stats.Evictions)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestLRUCacheUpdate(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10})
	c.Put("a", 1)
	c.Put("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRUCacheRemove(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10})
	c.Put("a", 1)
	c.Remove("a")
	if _, ok := c.Get("a"); ok {
		t.Errorf("Get(a) should miss after Remove")
	}
	// Removing a missing key is a no-op.
	c.Remove("missing")
}

func TestLRUCacheTTL(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 10, TTL: time.Nanosecond})
	c.Put("a", 1)
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Errorf("Get(a) should miss after TTL expiry")
	}
}

func TestLRUCacheOnEvict(t *testing.T) {
	var evicted []interface{}
	c := NewLRUCache[string, int](Config{
		MaxSize: 1,
		OnEvict: func(key, value interface{}) {
			evicted = append(evicted, key)
		},
	})
	c.Put("a", 1)
	c.Put("b", 2)
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("evicted = %v, want [a]", evicted)
	}
}

func TestLRUCacheStats(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 5})
	c.Put("a", 1)
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("Size = %d, want 1", stats.Size)
	}
	if stats.MaxSize != 5 {
		t.Errorf("MaxSize = %d, want 5", stats.MaxSize)
	}
}
