package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "menubot:session:"

// RedisStore keeps the mode of each user under its own key. Every Put
// refreshes the key's TTL, so idle sessions expire on the server.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore connects to a single Redis server.
func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreWithClient(client, ttl)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(userID string) string { return redisKeyPrefix + userID }

func (r *RedisStore) Get(ctx context.Context, userID string) (Session, error) {
	mode, err := r.client.Get(ctx, redisKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return Session{UserID: userID, Mode: ModeNone}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("reading session %s: %w", userID, err)
	}
	return Session{UserID: userID, Mode: Mode(mode)}, nil
}

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	if err := r.client.Set(ctx, redisKey(s.UserID), string(s.Mode), r.ttl).Err(); err != nil {
		return fmt.Errorf("writing session %s: %w", s.UserID, err)
	}
	return nil
}

// Close releases the client connection pool.
func (r *RedisStore) Close() error { return r.client.Close() }
