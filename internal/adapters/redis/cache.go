// Package redis provides a Redis-backed caching decorator for candidate
// catalogs, so repeated queries for the same destination skip the
// underlying backend.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// Cache wraps a Catalog with read-through caching. Entries are stored as
// JSON per (category, query) key with a TTL.
type Cache struct {
	inner  ports.Catalog
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached candidate lists.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cache entries.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a caching decorator over inner using a new Redis client.
func New(inner ports.Catalog, address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(inner, client, opts...)
}

// NewFromClient creates a caching decorator from an existing client.
func NewFromClient(inner ports.Catalog, client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		inner:  inner,
		client: client,
		prefix: "wayfarer:catalog:",
		ttl:    15 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Flights implements ports.Catalog.
func (c *Cache) Flights(ctx context.Context, q ports.TravelQuery) ([]domain.Flight, error) {
	return cached(ctx, c, "flights", q, c.inner.Flights)
}

// Hotels implements ports.Catalog.
func (c *Cache) Hotels(ctx context.Context, q ports.TravelQuery) ([]domain.Hotel, error) {
	return cached(ctx, c, "hotels", q, c.inner.Hotels)
}

// Activities implements ports.Catalog.
func (c *Cache) Activities(ctx context.Context, q ports.TravelQuery) ([]domain.Activity, error) {
	return cached(ctx, c, "activities", q, c.inner.Activities)
}

// Destinations forwards to the inner catalog when it can enumerate its
// destinations. The listing is not cached.
func (c *Cache) Destinations(ctx context.Context) ([]string, error) {
	lister, ok := c.inner.(interface {
		Destinations(context.Context) ([]string, error)
	})
	if !ok {
		return nil, fmt.Errorf("catalog does not support destination listing")
	}
	return lister.Destinations(ctx)
}

func (c *Cache) key(category string, q ports.TravelQuery) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", c.prefix, category, q.Destination, q.Origin, q.Duration)
}

// cached reads a candidate list through the cache. Cache faults fall back
// to the inner catalog: a broken Redis never breaks planning.
func cached[T any](ctx context.Context, c *Cache, category string, q ports.TravelQuery, load func(context.Context, ports.TravelQuery) ([]T, error)) ([]T, error) {
	key := c.key(category, q)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var options []T
		if err := json.Unmarshal(data, &options); err == nil {
			return options, nil
		}
		// Corrupt entry: drop it and reload.
		c.client.Del(ctx, key)
	}

	options, err := load(ctx, q)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(options); err == nil {
		c.client.Set(ctx, key, data, c.ttl)
	}
	return options, nil
}
