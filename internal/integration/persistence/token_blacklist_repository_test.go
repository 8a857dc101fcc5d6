// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/domain/entity"
)

func openTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("starting miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, server
}

func TestTokenBlacklistRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Add then Exists", func(t *testing.T) {
		client, _ := openTestRedis(t)
		repo := NewTokenBlacklistRepository(client)

		entry := adapter.BlacklistEntry{
			TokenIdentifier: "jti-123",
			UserID:          entity.UserID(1),
			ExpiresAt:       time.Now().Add(time.Hour),
		}
		if err := repo.Add(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.Exists(ctx, "jti-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected the identifier to be blacklisted")
		}

		exists, err = repo.Exists(ctx, "jti-456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected an unknown identifier to not be blacklisted")
		}
	})

	t.Run("entries expire with the token", func(t *testing.T) {
		client, server := openTestRedis(t)
		repo := NewTokenBlacklistRepository(client)

		entry := adapter.BlacklistEntry{
			TokenIdentifier: "jti-short",
			UserID:          entity.UserID(1),
			ExpiresAt:       time.Now().Add(time.Minute),
		}
		if err := repo.Add(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		server.FastForward(2 * time.Minute)

		exists, err := repo.Exists(ctx, "jti-short")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the entry to expire with the token")
		}
	})

	t.Run("an already expired token is not stored", func(t *testing.T) {
		client, _ := openTestRedis(t)
		repo := NewTokenBlacklistRepository(client)

		entry := adapter.BlacklistEntry{
			TokenIdentifier: "jti-stale",
			UserID:          entity.UserID(1),
			ExpiresAt:       time.Now().Add(-time.Minute),
		}
		if err := repo.Add(ctx, entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		exists, err := repo.Exists(ctx, "jti-stale")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no entry for an already expired token")
		}
	})
}
