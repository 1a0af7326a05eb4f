package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"unihub/internal/model"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(0),
		"redis":  NewRedisStore(client, time.Hour),
	}
}

func TestGetCreatesDefaultSession(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			sess, err := store.Get(context.Background(), "u1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !sess.Filter.IsZero() || sess.Page != 0 || sess.Mode != model.ModeBrowsing {
				t.Fatalf("unexpected default session: %+v", sess)
			}
		})
	}
}

func TestUpdatePersistsMutation(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			got, err := store.Update(ctx, "u1", func(s *Session) {
				s.Filter.City = "Almaty"
				s.Page = 2
				s.Mode = model.ModeAwaitingScore
			})
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if got.Filter.City != "Almaty" || got.Page != 2 || got.Mode != model.ModeAwaitingScore {
				t.Fatalf("update result not applied: %+v", got)
			}

			again, err := store.Get(ctx, "u1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if again != got {
				t.Fatalf("state not persisted: %+v vs %+v", again, got)
			}
		})
	}
}

func TestUsersAreIsolated(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := store.Update(ctx, "u1", func(s *Session) { s.Page = 7 }); err != nil {
				t.Fatalf("update: %v", err)
			}
			other, err := store.Get(ctx, "u2")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if other.Page != 0 {
				t.Fatalf("u2 must get a fresh session, got %+v", other)
			}
		})
	}
}

func TestMemorySweepEvictsIdleSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	if _, err := store.Update(ctx, "idle", func(s *Session) { s.Page = 1 }); err != nil {
		t.Fatalf("update: %v", err)
	}
	if n := store.Sweep(time.Now()); n != 0 {
		t.Fatalf("fresh session must survive a sweep, evicted %d", n)
	}
	if n := store.Sweep(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}

	sess, err := store.Get(ctx, "idle")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.Page != 0 {
		t.Fatalf("evicted user must start fresh, got %+v", sess)
	}
}

func TestMemorySweepDisabledWithZeroTTL(t *testing.T) {
	store := NewMemoryStore(0)
	if _, err := store.Update(context.Background(), "u1", func(s *Session) { s.Page = 3 }); err != nil {
		t.Fatalf("update: %v", err)
	}
	if n := store.Sweep(time.Now().Add(48 * time.Hour)); n != 0 {
		t.Fatalf("ttl=0 must never evict, evicted %d", n)
	}
}

func TestRedisSessionExpiresWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	if _, err := store.Update(ctx, "u1", func(s *Session) { s.Page = 4 }); err != nil {
		t.Fatalf("update: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	sess, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if sess.Page != 0 {
		t.Fatalf("expired session must reset to defaults, got %+v", sess)
	}
}
