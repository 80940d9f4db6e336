package cache

import (
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get(100); found {
		t.Error("empty cache should miss")
	}

	primes := []int{2, 3, 5, 7}
	c.Set(100, primes)

	got, found := c.Get(100)
	if !found {
		t.Fatal("expected hit after Set")
	}
	if len(got) != len(primes) {
		t.Errorf("got %v, want %v", got, primes)
	}
}

func TestMemoryCacheKeyedByLimit(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set(10, []int{2, 3, 5, 7})
	c.Set(5, []int{2, 3, 5})

	if got, _ := c.Get(10); len(got) != 4 {
		t.Errorf("limit 10 returned %v", got)
	}
	if got, _ := c.Get(5); len(got) != 3 {
		t.Errorf("limit 5 returned %v", got)
	}
	if _, found := c.Get(7); found {
		t.Error("never-cached limit must miss, not borrow a neighbor")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set(10, []int{2, 3, 5, 7})
	c.Clear()
	if _, found := c.Get(10); found {
		t.Error("cache should miss after Clear")
	}
}

func TestKey(t *testing.T) {
	if Key(42) != "primes:v1:42" {
		t.Errorf("Key(42) = %q", Key(42))
	}
}
