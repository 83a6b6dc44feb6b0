package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces session keys when no prefix is configured.
const DefaultRedisPrefix = "pc"

// Redis persists session slots in a Redis instance. Keys are written without
// TTL; the session controller owns their lifecycle.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed store. An empty prefix falls back to
// [DefaultRedisPrefix].
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(slot Slot) string {
	return r.prefix + ":" + string(slot)
}

func (r *Redis) Read(ctx context.Context, slot Slot) (string, error) {
	value, err := r.client.Get(ctx, r.key(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, nil
}

func (r *Redis) Write(ctx context.Context, slot Slot, value string) error {
	var err error
	if value == "" {
		err = r.client.Del(ctx, r.key(slot)).Err()
	} else {
		err = r.client.Set(ctx, r.key(slot), value, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	// Single DEL covering all three keys: no observer sees a partial clear.
	keys := make([]string, 0, len(Slots()))
	for _, slot := range Slots() {
		keys = append(keys, r.key(slot))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
