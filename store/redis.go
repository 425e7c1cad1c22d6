package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis defines a public type used by Planner session APIs.
//
// Redis is a [Store] backed by a Redis database. Entries carry no TTL: the
// session ends when the client clears them, not when a key expires.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis describes the newredis operation and its observable behavior.
//
// NewRedis may return an error when input validation, dependency calls, or security checks fail.
// NewRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "planner"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(name string) string {
	return r.prefix + ":" + name
}

// Get describes the get operation and its observable behavior.
//
// Get reports absence for missing keys and wraps every transport failure in
// [ErrUnavailable] so consumers can fail closed uniformly.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, true, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete is idempotent: deleting an absent key is not an error.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear removes all four session keys in a single DEL command so the
// operation is atomic on the Redis side; no concurrent reader observes a
// partially cleared session.
func (r *Redis) Clear(ctx context.Context) error {
	keys := make([]string, 0, len(Keys()))
	for _, name := range Keys() {
		keys = append(keys, r.key(name))
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
