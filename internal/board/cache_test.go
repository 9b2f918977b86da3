package board

import (
	"context"
	"testing"
	"time"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("candidate_filters", "http://localhost:8000")
	b := CacheKey("candidate_filters", "http://localhost:8000")
	if a != b {
		t.Errorf("same parts gave different keys: %q vs %q", a, b)
	}
	c := CacheKey("candidate_filters", "http://other:8000")
	if a == c {
		t.Error("different parts gave the same key")
	}
	if len(a) == 0 || a[:3] != "ad:" {
		t.Errorf("unexpected key format: %q", a)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	defer ResetCache()

	ctx := context.Background()
	key := CacheKey("test", "roundtrip")

	type payload struct {
		Skills []string `json:"skills"`
	}
	CacheSetJSON(ctx, key, payload{Skills: []string{"Go", "SQL"}})

	got, ok := CacheGetJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Errorf("unexpected value: %+v", got)
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	defer ResetCache()

	_, ok := CacheGetJSON[string](context.Background(), CacheKey("never", "stored"))
	if ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, time.Minute)
	defer ResetCache()

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheSetJSON(ctx, key, "value")

	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGetJSON[string](ctx, key); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheDisabled(t *testing.T) {
	ResetCache()
	ctx := context.Background()
	CacheSetJSON(ctx, "k", "v") // no-op, no panic
	if _, ok := CacheGetJSON[string](ctx, "k"); ok {
		t.Error("expected miss with cache disabled")
	}
}

func TestCacheEviction(t *testing.T) {
	InitCache("", time.Minute, 3, time.Minute)
	defer ResetCache()

	ctx := context.Background()
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		CacheSetJSON(ctx, CacheKey("evict", k), k)
		time.Sleep(time.Millisecond) // distinct expiry ordering
	}

	count := 0
	viewCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count > 3 {
		t.Errorf("L1 holds %d entries, want at most 3", count)
	}
}
