// Package cache keeps the assembled assistant context in Redis so chat
// requests do not rebuild it from the database on every message. The cache
// is advisory: every miss or Redis failure just means a rebuild.
package cache

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const promptKey = "chatbot:system-prompt"

type PromptCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewPromptCache(client *redisv9.Client, ttl time.Duration) *PromptCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PromptCache{client: client, ttl: ttl}
}

// Get returns the cached context and whether it was present.
func (c *PromptCache) Get(ctx context.Context) (string, bool, error) {
	if c == nil {
		return "", false, nil
	}
	raw, err := c.client.Get(ctx, promptKey).Result()
	if err == redisv9.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get prompt failed: %w", err)
	}
	return raw, true, nil
}

func (c *PromptCache) Set(ctx context.Context, prompt string) error {
	if c == nil {
		return nil
	}
	if err := c.client.Set(ctx, promptKey, prompt, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set prompt failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached context. Called after every admin mutation so
// the next chat message sees fresh data. Failures are logged, not returned;
// the TTL bounds how stale a missed invalidation can get.
func (c *PromptCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, promptKey).Err(); err != nil {
		log.Warn().Err(err).Msg("prompt cache invalidation failed")
	}
}
