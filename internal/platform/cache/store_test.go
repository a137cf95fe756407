package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "golfers:all", []string{"g-1", "g-2"})
	value, ok := store.Get(ctx, "golfers:all")
	if !ok {
		t.Fatalf("expected cached value")
	}
	if got := value.([]string); len(got) != 2 {
		t.Fatalf("unexpected cached value: %v", got)
	}

	store.Delete(ctx, "golfers:all")
	if _, ok := store.Get(ctx, "golfers:all"); ok {
		t.Fatalf("expected value deleted")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "schedule", "v1")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "schedule"); ok {
		t.Fatalf("expected value expired")
	}
}

func TestStore_GetOrLoadDeduplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	var loads int32
	loader := func(context.Context) (any, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(10 * time.Millisecond)
		return "loaded", nil
	}

	const callers = 10
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "schedule", loader)
			if err != nil {
				t.Errorf("get or load failed: %v", err)
			}
			if value != "loaded" {
				t.Errorf("unexpected value: %v", value)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}

	// A later call hits the cache without loading again.
	if _, err := store.GetOrLoad(ctx, "schedule", loader); err != nil {
		t.Fatalf("get or load failed: %v", err)
	}
	if got := atomic.LoadInt32(&loads); got != 1 {
		t.Fatalf("expected cached read, got %d loads", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "tournament:t-1", "a")
	store.Set(ctx, "tournament:t-2", "b")
	store.Set(ctx, "golfers:all", "c")

	store.DeletePrefix(ctx, "tournament:")

	if _, ok := store.Get(ctx, "tournament:t-1"); ok {
		t.Fatalf("expected tournament keys deleted")
	}
	if _, ok := store.Get(ctx, "golfers:all"); !ok {
		t.Fatalf("expected unrelated key kept")
	}
}
