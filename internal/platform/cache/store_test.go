package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoadCachesValue(t *testing.T) {
	store := NewStore[string](time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "team-1", nil
	}

	for range 3 {
		got, err := store.GetOrLoad(t.Context(), Key("Mumbai Indians", "club"), loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if got != "team-1" {
			t.Fatalf("unexpected value %q", got)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected loader to run once, ran %d times", calls.Load())
	}
}

func TestStore_GetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	store := NewStore[int](0)
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
				t.Errorf("get or load: %v", err)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Fatalf("expected one loader call, got %d", calls.Load())
	}
}

func TestStore_ExpiredEntryIsReloaded(t *testing.T) {
	store := NewStore[string](time.Second)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(t.Context(), "k", "old")
	now = now.Add(2 * time.Second)

	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

var errLoad = errors.New("load failed")

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	store := NewStore[string](time.Minute)
	_, err := store.GetOrLoad(t.Context(), "k", func(context.Context) (string, error) {
		return "", errLoad
	})
	if !errors.Is(err, errLoad) {
		t.Fatalf("expected errLoad, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected no cached entry after failure")
	}
}

func TestStore_NilStoreCallsLoader(t *testing.T) {
	var store *Store[string]
	got, err := store.GetOrLoad(t.Context(), "k", func(context.Context) (string, error) {
		return "direct", nil
	})
	if err != nil || got != "direct" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}
}
