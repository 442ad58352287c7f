// Package cache keeps a short-lived redis copy of the active contact list so
// repeated GETs skip Postgres. Every mutation drops the key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"contact-manager-api/config"
	domain "contact-manager-api/internal/domain/contact"
)

const (
	activeListKey = "contacts:active"
	activeListTTL = 30 * time.Second
)

type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

func New(ctx context.Context, logger *zap.Logger, cfg config.Redis) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	logger.Info("redis connected successfully", zap.String("addr", cfg.Addr))

	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) Close() error { return r.client.Close() }

// GetActive returns the cached list and whether it was a hit.
func (r *Redis) GetActive(ctx context.Context) (domain.Contacts, bool) {
	b, err := r.client.Get(ctx, activeListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("contact list cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var cs domain.Contacts
	if err = json.Unmarshal(b, &cs); err != nil {
		r.logger.Warn("contact list cache payload corrupt", zap.Error(err))
		return nil, false
	}

	return cs, true
}

func (r *Redis) SetActive(ctx context.Context, cs domain.Contacts) error {
	b, err := json.Marshal(cs)
	if err != nil {
		return fmt.Errorf("marshal contact list: %w", err)
	}
	if err = r.client.Set(ctx, activeListKey, b, activeListTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache contact list: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, activeListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate contact list cache: %w", err)
	}
	return nil
}
