package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore[string](time.Minute)

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatalf("missing key must not be found")
	}

	s.Set(ctx, "k", "v")
	got, ok := s.Get(ctx, "k")
	if !ok || got != "v" {
		t.Fatalf("expected cached value, got %q (%v)", got, ok)
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewStore[int](time.Minute)

	clock := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.Set(ctx, "k", 42)
	clock = clock.Add(59 * time.Second)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("entry must survive inside the TTL window")
	}

	clock = clock.Add(2 * time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("entry must expire after the TTL")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := NewStore[int](0)

	clock := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	s.Set(ctx, "k", 1)
	clock = clock.Add(24 * time.Hour)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatalf("zero TTL must disable expiry")
	}
}

func TestStore_GetOrLoadCachesResult(t *testing.T) {
	ctx := context.Background()
	s := NewStore[string](time.Minute)

	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		got, err := s.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "loaded" {
			t.Fatalf("expected loaded value, got %q", got)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader must run once, ran %d times", n)
	}
}

func TestStore_GetOrLoadDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	s := NewStore[string](time.Minute)

	boom := errors.New("boom")
	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", boom
		}
		return "recovered", nil
	}

	if _, err := s.GetOrLoad(ctx, "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	got, err := s.GetOrLoad(ctx, "k", loader)
	if err != nil || got != "recovered" {
		t.Fatalf("second load must retry, got %q (%v)", got, err)
	}
}

func TestStore_GetOrLoadCollapsesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	s := NewStore[int](time.Minute)

	var calls atomic.Int32
	gate := make(chan struct{})
	loader := func(context.Context) (int, error) {
		calls.Add(1)
		<-gate
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, err := s.GetOrLoad(ctx, "k", loader); err != nil || got != 7 {
				t.Errorf("got %d (%v)", got, err)
			}
		}()
	}

	// Give every goroutine a chance to join the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("concurrent loads must collapse to one loader call, ran %d", n)
	}
}
