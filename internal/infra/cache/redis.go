package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/pkg/env"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewConfig() Config {
	return Config{
		Addr:     env.GetEnv("REDIS_ADDR", ""),
		Password: env.GetEnv("REDIS_PASSWORD", ""),
		DB:       env.GetInt("REDIS_DB", 0),
		TTL:      time.Duration(env.GetInt("PREVIEW_CACHE_TTL_SEC", 600)) * time.Second,
	}
}

func (c Config) Enabled() bool {
	return c.Addr != ""
}

// PreviewCache keeps rendered template previews in Redis under
// "template:preview:<id>".
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.PreviewCache = (*PreviewCache)(nil)

func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	return &PreviewCache{client: client, ttl: ttl}
}

func previewKey(templateID uint64) string {
	return fmt.Sprintf("template:preview:%d", templateID)
}

func (c *PreviewCache) Get(ctx context.Context, templateID uint64) (string, bool, error) {
	html, err := c.client.Get(ctx, previewKey(templateID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("err reading preview %d, %v", templateID, err)
	}
	return html, true, nil
}

func (c *PreviewCache) Set(ctx context.Context, templateID uint64, html string) error {
	if err := c.client.Set(ctx, previewKey(templateID), html, c.ttl).Err(); err != nil {
		return fmt.Errorf("err writing preview %d, %v", templateID, err)
	}
	return nil
}

func (c *PreviewCache) Invalidate(ctx context.Context, templateID uint64) error {
	if err := c.client.Del(ctx, previewKey(templateID)).Err(); err != nil {
		return fmt.Errorf("err deleting preview %d, %v", templateID, err)
	}
	return nil
}

// Noop is used when no Redis is configured: every lookup misses.
type Noop struct{}

var _ interfaces.PreviewCache = Noop{}

func (Noop) Get(context.Context, uint64) (string, bool, error) { return "", false, nil }
func (Noop) Set(context.Context, uint64, string) error         { return nil }
func (Noop) Invalidate(context.Context, uint64) error          { return nil }
