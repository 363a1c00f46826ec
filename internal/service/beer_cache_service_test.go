package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-rest-brewery/internal/domain/entity"
	"go-rest-brewery/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeerCacheKeys(t *testing.T) {
	id := uuid.MustParse("6f1c1b8e-3c2a-4d0e-9a51-0c1f6f1d2b3a")

	assert.Equal(t, "beer:id:6f1c1b8e-3c2a-4d0e-9a51-0c1f6f1d2b3a", service.BeerIDKey(id))
	assert.Equal(t, "beer:upc:0631234200036", service.BeerUpcKey("0631234200036"))
}

func TestNoopBeerCache(t *testing.T) {
	cache := service.NewNoopBeerCache()
	ctx := context.Background()
	beer := &entity.Beer{ID: uuid.New(), Upc: "0631234200036"}

	assert.NoError(t, cache.Set(ctx, beer))

	byID, err := cache.GetByID(ctx, beer.ID)
	assert.NoError(t, err)
	assert.Nil(t, byID)

	byUpc, err := cache.GetByUpc(ctx, beer.Upc)
	assert.NoError(t, err)
	assert.Nil(t, byUpc)

	assert.NoError(t, cache.Evict(ctx, beer))
}

// Nothing listens on port 1, so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisBeerCache_ReportsConnectionErrors(t *testing.T) {
	cache := service.NewRedisBeerCache(unreachableRedis(t), newTestLogger(), time.Minute)
	ctx := context.Background()
	beer := &entity.Beer{ID: uuid.New(), Upc: "0631234200036"}

	got, err := cache.GetByID(ctx, beer.ID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, redis.Nil))
	assert.Nil(t, got)

	got, err = cache.GetByUpc(ctx, beer.Upc)
	require.Error(t, err)
	assert.Nil(t, got)

	assert.Error(t, cache.Set(ctx, beer))
	assert.Error(t, cache.Evict(ctx, beer))
}
