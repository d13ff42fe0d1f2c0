// Package session keeps opaque server-side sessions in Redis. A session
// is a uuid token mapped to a landlord id with a TTL; the token is the
// only thing that leaves the server (in a cookie).
package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned for missing or expired sessions.
var ErrNotFound = errors.New("session not found")

// RedisClient is the subset of the go-redis client the session store
// uses, kept as an interface so tests can substitute a fake.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	SetEx(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// Store manages landlord sessions.
type Store struct {
	redis RedisClient
	ttl   time.Duration
}

// NewStore creates a session store with the given TTL.
func NewStore(client RedisClient, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func key(token string) string { return "session:" + token }

// Create opens a session for a landlord and returns the opaque token.
func (s *Store) Create(ctx context.Context, landlordID int64) (string, error) {
	token := uuid.NewString()
	err := s.redis.SetEx(ctx, key(token), strconv.FormatInt(landlordID, 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its landlord id.
func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.redis.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// Delete ends a session. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, key(token)).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.redis.Close()
}
