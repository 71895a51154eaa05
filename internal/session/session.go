// Package session keeps the per-user conversation mode.
package session

import (
	"context"
	"errors"
	"time"
)

// Mode gates how free text is interpreted.
type Mode string

const (
	// ModeNone is the mode of a user who has not issued a command yet.
	ModeNone   Mode = ""
	ModeMain   Mode = "main_menu"
	ModeSearch Mode = "search"
)

// Session is the ephemeral state of one user.
type Session struct {
	UserID    string
	Mode      Mode
	UpdatedAt time.Time
}

// Store maps user ids to sessions. Get returns a fresh ModeNone session for
// unknown users; it never returns ErrNotFound-style errors.
type Store interface {
	Get(ctx context.Context, userID string) (Session, error)
	Put(ctx context.Context, s Session) error
}

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown session backend")

// Options configures Open.
type Options struct {
	Backend       string // "memory" or "redis"
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the store selected by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemoryStore(opts.TTL), nil
	case "redis":
		return NewRedisStore(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.TTL), nil
	default:
		return nil, ErrUnknownBackend
	}
}
