// Package redis caches run verdicts in a Redis instance.
//
// A compiled table is immutable and runs are deterministic, so the triple
// of table fingerprint, input and step bound fully identifies a verdict.
// Cached entries therefore never go stale; the optional TTL only bounds
// memory usage.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/cinta/pkg/machine"
	"github.com/aretw0/cinta/pkg/ports"
)

// Cache implements ports.VerdictCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached verdicts. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached verdicts.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "cinta:verdict:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(k ports.RunKey) string {
	return c.prefix + k.String()
}

// Probe retrieves the cached result for the key.
// It returns machine.ErrRunNotCached when the key is absent.
func (c *Cache) Probe(ctx context.Context, key ports.RunKey) (*machine.RunResult, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, machine.ErrRunNotCached
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var result machine.RunResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}

// Store persists the result under the key.
func (c *Cache) Store(ctx context.Context, key ports.RunKey, result machine.RunResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
