package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vaberg/holidaze/config"
	"github.com/vaberg/holidaze/internal/domain"
	"github.com/vaberg/holidaze/internal/session"
)

type RedisCache struct {
	client     *redis.Client
	venuesTTL  time.Duration
	sessionTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, venuesTTL, sessionTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		venuesTTL:  venuesTTL,
		sessionTTL: sessionTTL,
	}
}

func (c *RedisCache) GetVenues(ctx context.Context) ([]domain.Venue, error) {
	data, err := c.client.Get(ctx, venuesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *RedisCache) SetVenues(ctx context.Context, venues []domain.Venue) error {
	payload, err := json.Marshal(venues)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, venuesKey(), payload, c.venuesTTL).Err()
}

func (c *RedisCache) Save(ctx context.Context, id string, rec session.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(id), payload, c.sessionTTL).Err()
}

func (c *RedisCache) Load(ctx context.Context, id string) (*session.Record, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *RedisCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, sessionKey(id)).Err()
}

func venuesKey() string {
	return "cache:venues"
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

var _ session.Persistence = (*RedisCache)(nil)
