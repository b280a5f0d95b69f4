// Package redis tracks session liveness in Redis so several instances
// agree on which session ids were issued. Cart contents are not stored.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Tracker implements session.Tracker on top of a Redis client.
type Tracker struct {
	client *redis.Client
}

// New wraps an existing client.
func New(client *redis.Client) *Tracker {
	return &Tracker{client: client}
}

// Dial connects to addr and pings it.
func Dial(ctx context.Context, addr string) (*Tracker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(client), nil
}

// Touch (re)sets the key for id with the given expiry.
func (t *Tracker) Touch(ctx context.Context, id string, ttl time.Duration) error {
	return t.client.Set(ctx, keyPrefix+id, time.Now().Unix(), ttl).Err()
}

// Alive reports whether the key for id still exists.
func (t *Tracker) Alive(ctx context.Context, id string) (bool, error) {
	n, err := t.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Close releases the client.
func (t *Tracker) Close() error {
	return t.client.Close()
}
