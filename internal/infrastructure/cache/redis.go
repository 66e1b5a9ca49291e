// Package cache implementa el cache del dashboard sobre Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Piscinas-api/internal/application/analytics"
	"github.com/jhoicas/Piscinas-api/pkg/config"
)

var _ analytics.Cache = (*Redis)(nil)

// Redis adaptador de analytics.Cache sobre un servidor Redis.
type Redis struct {
	client *redis.Client
}

// NewRedis abre la conexión y verifica con un PING.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a redis %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client}, nil
}

// Get devuelve el valor y true si la clave existe.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set guarda el valor con la vigencia indicada.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Noop cache nulo para entornos sin Redis: nunca acierta y no guarda nada.
type Noop struct{}

var _ analytics.Cache = Noop{}

func (Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
