package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// ListCache caches one category list per key.
type ListCache interface {
	Get(ctx context.Context, category Category) ([]domain.CatalogItem, error)
	Set(ctx context.Context, category Category, items []domain.CatalogItem) error
	Delete(ctx context.Context, category Category) error
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) Get(ctx context.Context, category Category) ([]domain.CatalogItem, error) {
	data, err := r.client.Get(ctx, cacheKey(category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}
	return items, nil
}

func (r *RedisCache) Set(ctx context.Context, category Category, items []domain.CatalogItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}

	// Jitter keeps both category keys from expiring at once.
	ttl := r.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := r.client.Set(ctx, cacheKey(category), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, category Category) error {
	if err := r.client.Del(ctx, cacheKey(category)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(category Category) string {
	return fmt.Sprintf("catalog:%s", category)
}
