package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

const (
	DefaultTTL = 10 * time.Minute
	catalogKey = "beauty:catalog:services"
)

// ErrMiss indica que o catálogo não está em cache.
var ErrMiss = errors.New("cache: miss")

type Catalog interface {
	Get(ctx context.Context) ([]models.Service, error)
	Set(ctx context.Context, services []models.Service) error
	Invalidate(ctx context.Context) error
}

// ============================================================
// REDIS
// ============================================================

type RedisCatalog struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewRedisCatalog(client redis.Cmdable, ttl time.Duration) *RedisCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCatalog{client: client, key: catalogKey, ttl: ttl}
}

// NewRedisClient conecta a partir de uma URL redis://.
func NewRedisClient(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (c *RedisCatalog) Get(ctx context.Context) ([]models.Service, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		// entrada corrompida vira miss
		_ = c.client.Del(ctx, c.key).Err()
		return nil, ErrMiss
	}
	return services, nil
}

func (c *RedisCatalog) Set(ctx context.Context, services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *RedisCatalog) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

// ============================================================
// NOP
// ============================================================

type NopCatalog struct{}

func (NopCatalog) Get(context.Context) ([]models.Service, error) { return nil, ErrMiss }
func (NopCatalog) Set(context.Context, []models.Service) error   { return nil }
func (NopCatalog) Invalidate(context.Context) error              { return nil }
