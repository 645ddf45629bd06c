package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
	lru "github.com/hashicorp/golang-lru"
)

// CatalogCacheKey is the cache key for the active service catalog
const CatalogCacheKey = "services:active"

// CatalogCacheInterface caches the service catalog between mutations
type CatalogCacheInterface interface {
	Add(ctx context.Context, key string, services []*Service) error
	Invalidate(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]*Service, error)
}

// CatalogCacheMemory caches the service catalog in process memory
type CatalogCacheMemory struct {
	Cache *lru.Cache
}

// NewCatalogCacheMemory initializes a new CatalogCacheMemory
func NewCatalogCacheMemory() (*CatalogCacheMemory, error) {
	lruCache, err := lru.New(10)
	if err != nil {
		return nil, err
	}

	return &CatalogCacheMemory{
		Cache: lruCache,
	}, nil
}

// Add adds a catalog entry to the cache
func (c *CatalogCacheMemory) Add(_ context.Context, key string, services []*Service) error {
	_ = c.Cache.Add(key, services)
	return nil
}

// Invalidate removes a catalog entry from the cache
func (c *CatalogCacheMemory) Invalidate(_ context.Context, key string) error {
	c.Cache.Remove(key)
	return nil
}

// Get retrieves a catalog entry from the cache
func (c *CatalogCacheMemory) Get(_ context.Context, key string) ([]*Service, error) {
	result, ok := c.Cache.Get(key)
	if !ok {
		return nil, fmt.Errorf("could not find key %s in catalog cache", key)
	}

	services, ok := result.([]*Service)
	if !ok {
		return nil, fmt.Errorf("cache entry was not a service catalog entry")
	}

	return services, nil
}

// CatalogCacheRedis caches the service catalog in redis
type CatalogCacheRedis struct {
	Cache *cache.Cache
}

// NewCatalogCacheRedis initializes a new CatalogCacheRedis
func NewCatalogCacheRedis(redisClient *redis.Client) *CatalogCacheRedis {
	redisCache := cache.New(&cache.Options{
		Redis: redisClient,
	})

	return &CatalogCacheRedis{
		Cache: redisCache,
	}
}

// Add adds a catalog entry
func (c *CatalogCacheRedis) Add(ctx context.Context, key string, services []*Service) error {
	return c.Cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: services,
		TTL:   time.Minute * 10,
	})
}

// Invalidate invalidates a catalog entry
func (c *CatalogCacheRedis) Invalidate(ctx context.Context, key string) error {
	return c.Cache.Delete(ctx, key)
}

// Get retrieves a catalog entry
func (c *CatalogCacheRedis) Get(ctx context.Context, key string) ([]*Service, error) {
	var services []*Service

	err := c.Cache.Get(ctx, key, &services)
	if err != nil {
		return nil, err
	}

	return services, nil
}
