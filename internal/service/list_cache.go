package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"bistroboss/internal/cache"
)

// Cache keys of the whole-collection listings.
const (
	MenuCacheKey   = "menu:all"
	ReviewCacheKey = "reviews:all"
)

const (
	listCacheTTL    = 5 * time.Minute
	listLoadTimeout = 10 * time.Second
)

// listCache serves a whole-collection listing from redis, loading and storing it on a miss.
// Concurrent misses share one load. A load that overlaps an invalidate is returned to its
// callers but never stored.
type listCache[T any] struct {
	client *cache.Client
	key    string
	group  singleflight.Group

	mu  sync.Mutex
	gen uint64
}

func newListCache[T any](client *cache.Client, key string) *listCache[T] {
	return &listCache[T]{client: client, key: key}
}

func (lc *listCache[T]) get(ctx context.Context, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err, _ := lc.group.Do(lc.key, func() (interface{}, error) {
		// the load outlives a cancelled caller; others may be waiting on it
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listLoadTimeout)
		defer cancel()

		if data, _ := lc.client.Get(loadCtx, lc.key); data != nil {
			var cached []T
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}

		lc.mu.Lock()
		gen := lc.gen
		lc.mu.Unlock()

		items, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		if payload, err := json.Marshal(items); err == nil {
			lc.mu.Lock()
			if lc.gen == gen {
				_ = lc.client.Set(loadCtx, lc.key, payload, listCacheTTL)
			}
			lc.mu.Unlock()
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// invalidate drops the stored listing. Call it after the write it covers.
func (lc *listCache[T]) invalidate(ctx context.Context) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.gen++
	lc.group.Forget(lc.key)
	_ = lc.client.Delete(ctx, lc.key)
}
