// Package spacecache read-through кэш реестра площадок в Redis.
// Кэш необязателен: любая ошибка Redis считается промахом.
package spacecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

const keyPrefix = "club:space:"

// Cache кэш площадок по id
type Cache struct {
	client Client
	ttl    time.Duration
	logger Logger
}

// NewClient создает клиент Redis
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// New создает кэш поверх клиента
func New(client Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

type cachedSpace struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CostPerHour  float64   `json:"costPerHour"`
	IsReservable bool      `json:"isReservable"`
	IsAvailable  bool      `json:"isAvailable"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// Get возвращает площадку из кэша. false - промах
func (c *Cache) Get(ctx context.Context, id int64) (*domain.Space, bool) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("spacecache: Get id=%d: %v", id, err)
		}
		return nil, false
	}

	var cs cachedSpace
	if err := json.Unmarshal(raw, &cs); err != nil {
		c.logger.Warn("spacecache: Get id=%d: corrupted entry: %v", id, err)
		return nil, false
	}

	return &domain.Space{
		ID:           cs.ID,
		Name:         cs.Name,
		Capacity:     cs.Capacity,
		CostPerHour:  cs.CostPerHour,
		IsReservable: cs.IsReservable,
		IsAvailable:  cs.IsAvailable,
		Category:     domain.SpaceCategory(cs.Category),
		CreatedAt:    cs.CreatedAt,
		UpdatedAt:    cs.UpdatedAt,
	}, true
}

// Set сохраняет площадку с TTL
func (c *Cache) Set(ctx context.Context, space *domain.Space) {
	raw, err := json.Marshal(cachedSpace{
		ID:           space.ID,
		Name:         space.Name,
		Capacity:     space.Capacity,
		CostPerHour:  space.CostPerHour,
		IsReservable: space.IsReservable,
		IsAvailable:  space.IsAvailable,
		Category:     string(space.Category),
		CreatedAt:    space.CreatedAt,
		UpdatedAt:    space.UpdatedAt,
	})
	if err != nil {
		c.logger.Warn("spacecache: Set id=%d: %v", space.ID, err)
		return
	}

	if err := c.client.Set(ctx, key(space.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("spacecache: Set id=%d: %v", space.ID, err)
	}
}

// Invalidate удаляет площадку из кэша
func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.logger.Warn("spacecache: Invalidate id=%d: %v", id, err)
	}
}
