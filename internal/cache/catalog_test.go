package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/models"
)

// memRedis implementa só os comandos usados pelo RedisCatalog.
type memRedis struct {
	redis.Cmdable
	data map[string]string
	ttl  map[string]time.Duration
}

func newMemRedis() *memRedis {
	return &memRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (m *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.ttl[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (m *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	mem := newMemRedis()
	c := NewRedisCatalog(mem, time.Minute)
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, []models.Service{{ID: "corte", Name: "Corte", Duration: 60}}))
	require.Equal(t, time.Minute, mem.ttl[catalogKey])

	got, err := c.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "corte", got[0].ID)

	require.NoError(t, c.Invalidate(ctx))
	_, err = c.Get(ctx)
	require.ErrorIs(t, err, ErrMiss)
}

func TestRedisCatalogCorruptEntryIsMiss(t *testing.T) {
	t.Parallel()

	mem := newMemRedis()
	mem.data[catalogKey] = "{nope"
	_, err := NewRedisCatalog(mem, 0).Get(context.Background())
	require.ErrorIs(t, err, ErrMiss)
	require.NotContains(t, mem.data, catalogKey)
}

func TestNopCatalog(t *testing.T) {
	t.Parallel()

	var c Catalog = NopCatalog{}
	require.NoError(t, c.Set(context.Background(), nil))
	_, err := c.Get(context.Background())
	require.ErrorIs(t, err, ErrMiss)
}
