// Copyright (c) 2026 Etnoflora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/etnoflora/internal/platform/constants"
	"github.com/taibuivan/etnoflora/internal/platform/ctxutil"
)

// # Search Result Cache

// cacheGenerationKey is the Redis counter namespacing all cached search pages.
// Bumping it on any mutation makes every previously cached page unreachable,
// which is cheaper than enumerating and deleting the affected keys.
const cacheGenerationKey = "reference:search:generation"

// SearchCache memoizes public search pages in Redis for a short TTL.
//
// # Failure Policy
//
// The cache is strictly best-effort: every Redis failure degrades to a store
// read and is logged at debug level, never surfaced to the caller. A nil
// *SearchCache is valid and disables caching entirely.
type SearchCache struct {
	client *redis.Client
}

// NewSearchCache wraps a Redis client. Passing nil returns a nil cache,
// which every method treats as a no-op.
func NewSearchCache(client *redis.Client) *SearchCache {
	if client == nil {
		return nil
	}
	return &SearchCache{client: client}
}

// Get returns the cached page for the filter/pagination tuple, if present.
func (cache *SearchCache) Get(ctx context.Context, filter SearchFilter, page, limit int) (*SearchResult, bool) {
	if cache == nil {
		return nil, false
	}

	key, ok := cache.pageKey(ctx, filter, page, limit)
	if !ok {
		return nil, false
	}

	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			ctxutil.GetLogger(ctx).Debug("search_cache_read_failed", slog.Any("error", err))
		}
		return nil, false
	}

	result := &SearchResult{}
	if err := json.Unmarshal(payload, result); err != nil {
		ctxutil.GetLogger(ctx).Debug("search_cache_decode_failed", slog.Any("error", err))
		return nil, false
	}

	return result, true
}

// Put stores a search page under the current cache generation.
func (cache *SearchCache) Put(ctx context.Context, filter SearchFilter, page, limit int, result *SearchResult) {
	if cache == nil {
		return
	}

	key, ok := cache.pageKey(ctx, filter, page, limit)
	if !ok {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := cache.client.Set(ctx, key, payload, constants.SearchCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(ctx).Debug("search_cache_write_failed", slog.Any("error", err))
	}
}

// Invalidate bumps the generation counter, orphaning all cached pages.
// Orphaned keys expire on their own TTL.
func (cache *SearchCache) Invalidate(ctx context.Context) {
	if cache == nil {
		return
	}

	if err := cache.client.Incr(ctx, cacheGenerationKey).Err(); err != nil {
		ctxutil.GetLogger(ctx).Debug("search_cache_invalidate_failed", slog.Any("error", err))
	}
}

// pageKey derives the cache key for one filter/pagination tuple under the
// current generation. It reports false when the generation cannot be read.
func (cache *SearchCache) pageKey(ctx context.Context, filter SearchFilter, page, limit int) (string, bool) {
	generation, err := cache.client.Get(ctx, cacheGenerationKey).Int64()
	if err != nil && err != redis.Nil {
		ctxutil.GetLogger(ctx).Debug("search_cache_generation_failed", slog.Any("error", err))
		return "", false
	}

	return searchPageKey(generation, filter, page, limit), true
}

// searchPageKey encodes one filter/pagination tuple into a cache key. The
// filter is JSON-encoded so that filter values containing any separator
// character cannot collide with a different filter tuple.
func searchPageKey(generation int64, filter SearchFilter, page, limit int) string {
	encoded, _ := json.Marshal(filter)
	return fmt.Sprintf("reference:search:%d:%s:%d:%d", generation, encoded, page, limit)
}
