package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func TestCacheGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	items := []domain.CatalogItem{
		{ID: 1, Title: "Black Coffee"},
		{ID: 2, Title: "Latte"},
	}
	data, _ := json.Marshal(items)
	mr.Set(cacheKey(CategoryHot), string(data))

	result, err := cache.Get(context.Background(), CategoryHot)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Black Coffee", result[0].Title)
}

func TestCacheGet_Miss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	result, err := cache.Get(context.Background(), CategoryIced)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestCacheGet_InvalidJSON(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	mr.Set(cacheKey(CategoryHot), "{not json")

	_, err := cache.Get(context.Background(), CategoryHot)
	assert.ErrorContains(t, err, "unmarshal catalog failed")
}

func TestCacheSetThenGet(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	items := []domain.CatalogItem{{ID: 7, Title: "Cold Brew"}}
	require.NoError(t, cache.Set(ctx, CategoryIced, items))

	assert.True(t, mr.Exists(cacheKey(CategoryIced)))

	result, err := cache.Get(ctx, CategoryIced)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Cold Brew", result[0].Title)
}

func TestCacheDelete(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, CategoryHot, []domain.CatalogItem{{ID: 1}}))
	require.NoError(t, cache.Delete(ctx, CategoryHot))

	_, err := cache.Get(ctx, CategoryHot)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
