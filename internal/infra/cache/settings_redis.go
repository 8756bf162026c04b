package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/lahermandad/internal/domain/settings"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

const settingsKey = "lahermandad:settings"

// SettingsRedisCache keeps the settings row in Redis without expiry; it is
// invalidated whenever the row is written. A nil client turns every call
// into a miss.
type SettingsRedisCache struct {
	rdb *redis.Client
}

func NewSettingsRedisCache(rdb *redis.Client) *SettingsRedisCache {
	return &SettingsRedisCache{rdb: rdb}
}

func (c *SettingsRedisCache) Get(ctx context.Context) (*models.Settings, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}

	raw, err := c.rdb.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s models.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *SettingsRedisCache) Set(ctx context.Context, s *models.Settings) error {
	if c == nil || c.rdb == nil || s == nil {
		return nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, settingsKey, raw, 0).Err()
}

func (c *SettingsRedisCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, settingsKey).Err()
}

var _ settings.Cache = (*SettingsRedisCache)(nil)
