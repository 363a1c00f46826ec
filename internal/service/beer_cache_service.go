package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-rest-brewery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for cached beers
	RedisBeerIDKeyPrefix  = "beer:id:"
	RedisBeerUpcKeyPrefix = "beer:upc:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// BeerCache is a read-through cache for single beer lookups.
// Get* return (nil, nil) on a miss.
type BeerCache interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Beer, error)
	GetByUpc(ctx context.Context, upc string) (*entity.Beer, error)
	Set(ctx context.Context, beer *entity.Beer) error
	Evict(ctx context.Context, beer *entity.Beer) error
}

// BeerIDKey returns the cache key of a beer by id.
func BeerIDKey(id uuid.UUID) string {
	return RedisBeerIDKeyPrefix + id.String()
}

// BeerUpcKey returns the cache key of a beer by UPC.
func BeerUpcKey(upc string) string {
	return RedisBeerUpcKeyPrefix + upc
}

type redisBeerCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// NewRedisBeerCache stores each beer as JSON under both its id and its UPC key.
func NewRedisBeerCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) BeerCache {
	return &redisBeerCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *redisBeerCache) GetByID(ctx context.Context, id uuid.UUID) (*entity.Beer, error) {
	return c.get(ctx, BeerIDKey(id))
}

func (c *redisBeerCache) GetByUpc(ctx context.Context, upc string) (*entity.Beer, error) {
	return c.get(ctx, BeerUpcKey(upc))
}

func (c *redisBeerCache) get(ctx context.Context, key string) (*entity.Beer, error) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var beer entity.Beer
	if err := json.Unmarshal(raw, &beer); err != nil {
		// Drop entries we can no longer decode
		c.log.Warnf("Discarding undecodable cache entry %s: %+v", key, err)
		c.redisClient.Del(ctx, key)
		return nil, nil
	}
	return &beer, nil
}

func (c *redisBeerCache) Set(ctx context.Context, beer *entity.Beer) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(beer)
	if err != nil {
		return fmt.Errorf("encode beer %s: %w", beer.ID, err)
	}

	pipe := c.redisClient.TxPipeline()
	pipe.Set(ctx, BeerIDKey(beer.ID), raw, c.ttl)
	pipe.Set(ctx, BeerUpcKey(beer.Upc), raw, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis cache beer %s: %w", beer.ID, err)
	}

	c.log.Debugf("Cached beer %s (upc=%s, TTL=%v)", beer.ID, beer.Upc, c.ttl)
	return nil
}

func (c *redisBeerCache) Evict(ctx context.Context, beer *entity.Beer) error {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, BeerIDKey(beer.ID), BeerUpcKey(beer.Upc)).Err(); err != nil {
		return fmt.Errorf("redis evict beer %s: %w", beer.ID, err)
	}

	c.log.Debugf("Evicted beer %s from cache", beer.ID)
	return nil
}

type noopBeerCache struct{}

// NewNoopBeerCache returns a cache that never stores anything, for running without Redis.
func NewNoopBeerCache() BeerCache {
	return noopBeerCache{}
}

func (noopBeerCache) GetByID(context.Context, uuid.UUID) (*entity.Beer, error) { return nil, nil }
func (noopBeerCache) GetByUpc(context.Context, string) (*entity.Beer, error)   { return nil, nil }
func (noopBeerCache) Set(context.Context, *entity.Beer) error                  { return nil }
func (noopBeerCache) Evict(context.Context, *entity.Beer) error                { return nil }
