// Package revalidate tracks a version counter per listing route. Every
// successful mutation bumps the version of the routes that display the
// affected entity; page handlers derive ETags from the current version, so a
// browser's cached render stays valid exactly until the next mutation.
package revalidate

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Invalidator marks routes stale and reports their current version.
type Invalidator interface {
	// Invalidate bumps the version of the given route path.
	Invalidate(ctx context.Context, path string) error

	// Version returns the current version of the route. A route that was
	// never invalidated is at version 0.
	Version(ctx context.Context, path string) (int64, error)
}

const keyPrefix = "route:ver:"

// RedisInvalidator keeps route versions in Redis so invalidation is shared
// across server instances.
type RedisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator creates an Invalidator backed by the given Redis client.
func NewRedisInvalidator(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

func (r *RedisInvalidator) Invalidate(ctx context.Context, path string) error {
	return r.client.Incr(ctx, keyPrefix+path).Err()
}

func (r *RedisInvalidator) Version(ctx context.Context, path string) (int64, error) {
	v, err := r.client.Get(ctx, keyPrefix+path).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}
