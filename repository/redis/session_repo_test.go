package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"

	"github.com/myplanner/backend/domain"
)

func newTestRepo(t *testing.T) (*miniredis.Miniredis, *sessionRepository) {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	client := redislib.NewClient(&redislib.Options{Addr: m.Addr()})
	t.Cleanup(func() { client.Close() })

	return m, NewSessionRepository(client, time.Hour).(*sessionRepository)
}

func TestSessionSaveAndGet(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "s1",
		UserID:    "u1",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "u1" {
		t.Fatalf("unexpected user id: %s", got.UserID)
	}
}

func TestSessionGetMissing(t *testing.T) {
	_, repo := newTestRepo(t)

	if _, err := repo.Get(context.Background(), "nope"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionSaveRejectsEmptyID(t *testing.T) {
	_, repo := newTestRepo(t)

	if err := repo.Save(context.Background(), &domain.Session{}); err != domain.ErrInvalidPayload {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestSessionDelete(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	session := &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session to be gone, got %v", err)
	}
}

func TestSessionExpiresWithTTL(t *testing.T) {
	m, repo := newTestRepo(t)
	ctx := context.Background()

	session := &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Minute)}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	m.FastForward(2 * time.Minute)

	if _, err := repo.Get(ctx, "s1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session to expire, got %v", err)
	}
}

func TestSessionExtend(t *testing.T) {
	m, repo := newTestRepo(t)
	ctx := context.Background()

	session := &domain.Session{ID: "s1", UserID: "u1", ExpiresAt: time.Now().Add(time.Minute)}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Extend(ctx, "s1", int(time.Hour.Seconds())); err != nil {
		t.Fatalf("extend: %v", err)
	}

	m.FastForward(2 * time.Minute)

	if _, err := repo.Get(ctx, "s1"); err != nil {
		t.Fatalf("extended session should survive: %v", err)
	}
}
