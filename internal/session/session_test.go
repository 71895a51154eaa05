package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func newTestMemory(ttl time.Duration) (*MemoryStore, *time.Time) {
	now := time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)
	m := NewMemoryStore(ttl)
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMemoryUnknownUser(t *testing.T) {
	m, _ := newTestMemory(time.Hour)
	s, err := m.Get(context.Background(), "42")
	if err != nil {
		t.Fatal(err)
	}
	if s.UserID != "42" || s.Mode != ModeNone {
		t.Errorf("Get unknown user = %+v, want ModeNone", s)
	}
}

func TestMemoryPutGet(t *testing.T) {
	m, now := newTestMemory(time.Hour)
	ctx := context.Background()

	if err := m.Put(ctx, Session{UserID: "42", Mode: ModeSearch}); err != nil {
		t.Fatal(err)
	}
	s, err := m.Get(ctx, "42")
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != ModeSearch {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeSearch)
	}
	if !s.UpdatedAt.Equal(*now) {
		t.Errorf("UpdatedAt = %s, want %s", s.UpdatedAt, *now)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m, now := newTestMemory(time.Hour)
	ctx := context.Background()

	m.Put(ctx, Session{UserID: "old", Mode: ModeSearch})
	*now = now.Add(45 * time.Minute)
	m.Put(ctx, Session{UserID: "fresh", Mode: ModeMain})
	*now = now.Add(30 * time.Minute)

	s, _ := m.Get(ctx, "old")
	if s.Mode != ModeNone {
		t.Errorf("expired session Mode = %q, want ModeNone", s.Mode)
	}
	s, _ = m.Get(ctx, "fresh")
	if s.Mode != ModeMain {
		t.Errorf("fresh session Mode = %q, want %q", s.Mode, ModeMain)
	}
}

func TestMemorySweep(t *testing.T) {
	m, now := newTestMemory(time.Hour)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		m.Put(ctx, Session{UserID: id, Mode: ModeMain})
	}
	*now = now.Add(2 * time.Hour)
	m.Put(ctx, Session{UserID: "d", Mode: ModeMain})

	if n := m.Sweep(); n != 3 {
		t.Errorf("Sweep removed %d, want 3", n)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}

func TestMemoryZeroTTLKeepsSessions(t *testing.T) {
	m, now := newTestMemory(0)
	ctx := context.Background()

	m.Put(ctx, Session{UserID: "a", Mode: ModeSearch})
	*now = now.Add(365 * 24 * time.Hour)
	if n := m.Sweep(); n != 0 {
		t.Errorf("Sweep removed %d with expiry disabled", n)
	}
	if s, _ := m.Get(ctx, "a"); s.Mode != ModeSearch {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeSearch)
	}
}

func TestOpen(t *testing.T) {
	s, err := Open(Options{Backend: "memory", TTL: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Open(memory) = %T", s)
	}

	s, err = Open(Options{Backend: "redis", RedisAddr: "localhost:6379"})
	if err != nil {
		t.Fatal(err)
	}
	if rs, ok := s.(*RedisStore); !ok {
		t.Errorf("Open(redis) = %T", s)
	} else {
		rs.Close()
	}

	if _, err := Open(Options{Backend: "etcd"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(etcd) err = %v, want ErrUnknownBackend", err)
	}
}

func TestRedisKey(t *testing.T) {
	if got := redisKey("42"); got != "menubot:session:42" {
		t.Errorf("redisKey = %q", got)
	}
}

// TestRedisStore runs against a live server when MENUBOT_TEST_REDIS_ADDR is set.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("MENUBOT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("MENUBOT_TEST_REDIS_ADDR not set")
	}
	store := NewRedisStore(addr, "", 0, time.Minute)
	defer store.Close()
	ctx := context.Background()
	user := "test-" + time.Now().Format("150405.000000")

	s, err := store.Get(ctx, user)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Mode != ModeNone {
		t.Errorf("unknown user Mode = %q", s.Mode)
	}

	if err := store.Put(ctx, Session{UserID: user, Mode: ModeSearch}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s, err = store.Get(ctx, user)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Mode != ModeSearch {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeSearch)
	}

	ttl, err := store.client.TTL(ctx, redisKey(user)).Result()
	if err != nil {
		t.Fatal(err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %s, want within (0, 1m]", ttl)
	}
	store.client.Del(ctx, redisKey(user))
}
