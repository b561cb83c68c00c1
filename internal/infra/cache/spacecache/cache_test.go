package spacecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
)

// memoryClient Client поверх map
type memoryClient struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newMemoryClient() *memoryClient {
	return &memoryClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.err != nil {
		return redis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.data[key] = string(value.([]byte))
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memoryClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, m.err)
}

func TestCache_RoundTrip(t *testing.T) {
	client := newMemoryClient()
	cache := New(client, time.Minute, logger.Discard())
	ctx := context.Background()

	_, ok := cache.Get(ctx, 1)
	assert.False(t, ok)

	space := &domain.Space{
		ID: 1, Name: "Court 1", Capacity: 4, CostPerHour: 20,
		IsReservable: true, IsAvailable: true, Category: domain.CategorySports,
		CreatedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
	}
	cache.Set(ctx, space)
	assert.Equal(t, time.Minute, client.ttls["club:space:1"])

	got, ok := cache.Get(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, space.Name, got.Name)
	assert.Equal(t, domain.CategorySports, got.Category)
	assert.True(t, got.CreatedAt.Equal(space.CreatedAt))

	cache.Invalidate(ctx, 1)
	_, ok = cache.Get(ctx, 1)
	assert.False(t, ok)
}

func TestCache_ErrorsAreMisses(t *testing.T) {
	client := newMemoryClient()
	client.err = errors.New("connection refused")
	cache := New(client, time.Minute, logger.Discard())
	ctx := context.Background()

	assert.NotPanics(t, func() {
		cache.Set(ctx, &domain.Space{ID: 2})
		cache.Invalidate(ctx, 2)
	})
	_, ok := cache.Get(ctx, 2)
	assert.False(t, ok)

	client.err = nil
	client.data["club:space:3"] = "{not json"
	_, ok = cache.Get(ctx, 3)
	assert.False(t, ok)
}
