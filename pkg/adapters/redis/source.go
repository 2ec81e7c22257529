// Package redis provides an environment source backed by a Redis hash.
// Deployments that distribute configuration through Redis can validate it
// with the same schema used for the local process environment.
package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/sill/pkg/source"
)

// DefaultKey is the hash holding environment pairs unless WithKey overrides it.
const DefaultKey = "sill:env"

// Source fetches environment snapshots from a Redis hash.
type Source struct {
	client *backend.Client
	key    string
}

type Option func(*Source)

// WithKey sets the hash key holding the environment pairs.
func WithKey(key string) Option {
	return func(s *Source) {
		s.key = key
	}
}

// New creates a Source with its own Redis client.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	src := &Source{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(src)
	}
	return src
}

// Fetch loads the hash as an immutable snapshot. A missing key is an empty
// environment, not an error, matching the env-file convention.
func (s *Source) Fetch(ctx context.Context) (source.Map, error) {
	vals, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch environment from redis: %w", err)
	}
	return source.Map(vals), nil
}

// Close closes the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}
