package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pixelperfect/backend/internal/application/service"
	"github.com/pixelperfect/backend/internal/domain/video"
)

const catalogCacheKey = "catalog:videos"

// redisCatalogCache keeps one serialized copy of the full catalog listing
// under a fixed key with a short TTL. No eviction logic beyond the TTL.
type redisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) service.CatalogCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisCatalogCache{rdb: rdb, ttl: ttl}
}

func (c *redisCatalogCache) Get(ctx context.Context) ([]*video.Video, bool, error) {
	raw, err := c.rdb.Get(ctx, catalogCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var videos []*video.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		// Stale or corrupt entry, treat as a miss.
		return nil, false, nil
	}
	return videos, true, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, videos []*video.Video) error {
	raw, err := json.Marshal(videos)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, catalogCacheKey, raw, c.ttl).Err()
}

func (c *redisCatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, catalogCacheKey).Err()
}
