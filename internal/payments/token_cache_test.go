package payments

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenCache_RefreshesOnceWhileValid(t *testing.T) {
	calls := 0
	c := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		calls++
		return "tok-1", time.Hour, nil
	})

	for i := 0; i < 3; i++ {
		tok, err := c.Get(context.Background())
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if tok != "tok-1" {
			t.Fatalf("Get() = %q, want tok-1", tok)
		}
	}
	if calls != 1 {
		t.Errorf("refresh called %d times, want 1", calls)
	}
}

func TestTokenCache_RefreshesAfterExpiry(t *testing.T) {
	calls := 0
	c := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		calls++
		if calls == 1 {
			return "tok-1", 5 * time.Minute, nil
		}
		return "tok-2", 5 * time.Minute, nil
	})

	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	tok, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tok != "tok-1" {
		t.Fatalf("Get() = %q, want tok-1", tok)
	}

	// Inside the validity window minus the refresh margin: still cached.
	clock = clock.Add(3 * time.Minute)
	if tok, _ := c.Get(context.Background()); tok != "tok-1" {
		t.Errorf("Get() = %q, want cached tok-1", tok)
	}

	// Past the margin-adjusted expiry: refreshed.
	clock = clock.Add(2 * time.Minute)
	if tok, _ := c.Get(context.Background()); tok != "tok-2" {
		t.Errorf("Get() = %q, want refreshed tok-2", tok)
	}
	if calls != 2 {
		t.Errorf("refresh called %d times, want 2", calls)
	}
}

func TestTokenCache_PropagatesRefreshError(t *testing.T) {
	wantErr := errors.New("auth failed")
	c := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		return "", 0, wantErr
	})

	if _, err := c.Get(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Get() error = %v, want %v", err, wantErr)
	}
}

func TestTokenCache_Invalidate(t *testing.T) {
	calls := 0
	c := NewTokenCache(func(ctx context.Context) (string, time.Duration, error) {
		calls++
		return "tok", time.Hour, nil
	})

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	c.Invalidate()
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("refresh called %d times after invalidate, want 2", calls)
	}
}
