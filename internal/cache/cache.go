package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a JSON read-through cache over Redis. Fetched backend resources
// (products, slots, pages, testimonials) are treated as fresh for the
// configured TTL; writes are best effort so a cache outage never fails a
// read path.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient opens a Redis connection from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// New creates a cache with the given freshness TTL.
func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetJSON loads the cached value for key into out. Returns ErrMiss when the
// key is absent; any other failure is also reported as a miss to the caller
// after logging, so Redis trouble degrades to an upstream fetch.
func (c *Cache) GetJSON(ctx context.Context, key string, out interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return ErrMiss
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		return ErrMiss
	}

	return nil
}

// SetJSON stores v under key with the freshness TTL. Best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Key builders. The cache key for product/page/slot queries is the resource
// identifier (and date range, for slots).

func ProductsKey() string             { return "catalog:products" }
func ProductKey(id string) string     { return "catalog:product:" + id }
func TestimonialsKey() string         { return "catalog:testimonials" }
func SlotsKey(from, to string) string { return fmt.Sprintf("slots:%s:%s", from, to) }
func PageKey(slug string) string      { return "cms:page:" + slug }
