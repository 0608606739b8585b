// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package refcache caches reference-data snapshots (genres, MPA ratings,
directors) in Redis.

The cache is explicit: it owns one snapshot per entity kind, services decide
when to read through it, and every mutation path must call [Cache.Invalidate]
for the affected kind. There is no ambient cache and no implicit invalidation.
*/
package refcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kinora/internal/platform/constants"
)

// Kind identifies one cached reference snapshot.
type Kind string

const (
	KindGenres    Kind = "genres"
	KindRatings   Kind = "ratings"
	KindDirectors Kind = "directors"
)

// Cache is a Redis-backed snapshot store keyed by entity kind.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New constructs a reference cache.
//
// A zero ttl stores snapshots without expiry; they then live until the next
// [Cache.Invalidate] call.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get loads the snapshot for kind into target (a pointer to a slice of the
// entity type). It reports whether a snapshot was present.
//
// Redis failures are treated as cache misses so that a degraded cache never
// takes reads down with it; the caller falls through to PostgreSQL.
func (cache *Cache) Get(ctx context.Context, kind Kind, target any) bool {
	payload, err := cache.client.Get(ctx, cache.key(kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.WarnContext(ctx, "refcache_get_failed",
				slog.String("kind", string(kind)),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		// A corrupt snapshot is dropped so the next write replaces it.
		cache.logger.WarnContext(ctx, "refcache_corrupt_snapshot",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		_ = cache.client.Del(ctx, cache.key(kind)).Err()
		return false
	}

	return true
}

// Set stores the snapshot for kind. Failures are logged, not returned:
// a write-through miss only costs the next reader one database query.
func (cache *Cache) Set(ctx context.Context, kind Kind, snapshot any) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		cache.logger.WarnContext(ctx, "refcache_marshal_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return
	}

	if err := cache.client.Set(ctx, cache.key(kind), payload, cache.ttl).Err(); err != nil {
		cache.logger.WarnContext(ctx, "refcache_set_failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// Invalidate drops the snapshot for kind. Unlike Set, failures are returned:
// a mutation that cannot invalidate its snapshot would serve stale reference
// data indefinitely, so the caller must know.
func (cache *Cache) Invalidate(ctx context.Context, kind Kind) error {
	if err := cache.client.Del(ctx, cache.key(kind)).Err(); err != nil {
		return fmt.Errorf("refcache: invalidate %s: %w", kind, err)
	}
	return nil
}

func (cache *Cache) key(kind Kind) string {
	return constants.RedisPrefixReference + string(kind)
}
