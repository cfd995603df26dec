// internal/infrastructure/repository/search_cache.go
package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/your-org/shopping-assistant/internal/domain/catalog"
)

// RedisSearchCache caches ranked search results keyed by intent. Any cache
// failure is treated as a miss so Redis outages never affect search.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

// NewRedisSearchCache creates a Redis-backed search result cache
func NewRedisSearchCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) *RedisSearchCache {
	return &RedisSearchCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Get returns the cached product list for the key, if present
func (c *RedisSearchCache) Get(ctx context.Context, key string) ([]catalog.Product, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.WithError(err).Debug("Search cache read failed, treating as miss")
		return nil, false
	}

	var products []catalog.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores the product list under the key with the configured TTL
func (c *RedisSearchCache) Set(ctx context.Context, key string, products []catalog.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WithError(err).Debug("Search cache write failed")
	}
}
