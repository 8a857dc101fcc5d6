package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(3, time.Minute)
	rl.now = func() time.Time { return current }

	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		rl.Reset()
		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("fourth attempt should be rejected")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl.Reset()
		for i := 0; i < 3; i++ {
			rl.allow("10.0.0.1")
		}
		if !rl.allow("10.0.0.2") {
			t.Fatal("a different client should not be limited")
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		rl.Reset()
		for i := 0; i < 4; i++ {
			rl.allow("10.0.0.1")
		}
		current = current.Add(61 * time.Second)
		if !rl.allow("10.0.0.1") {
			t.Fatal("expired window should allow again")
		}
	})

	t.Run("cleanup drops expired entries", func(t *testing.T) {
		rl.Reset()
		rl.allow("10.0.0.1")
		current = current.Add(2 * time.Minute)
		rl.Cleanup()
		rl.mu.Lock()
		remaining := len(rl.entries)
		rl.mu.Unlock()
		if remaining != 0 {
			t.Fatalf("expected no entries after cleanup, got %d", remaining)
		}
	})
}
