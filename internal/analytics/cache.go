package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/redis/go-redis/v9"
)

const summaryTTL = 5 * time.Minute

// Cache keeps computed summaries in redis so parallel dashboard loads do
// not re-aggregate the same batch. A cold or unreachable cache is never an
// error condition for callers; they fall back to computing directly.
type Cache struct {
	redis *redis.Client
}

func NewCache(redisClient *redis.Client) *Cache {
	return &Cache{redis: redisClient}
}

func summaryKey(chatbotID string) string {
	if chatbotID == "" {
		return "analytics:summary:all"
	}
	return "analytics:summary:" + chatbotID
}

func (c *Cache) Get(ctx context.Context, chatbotID string) (*Summary, error) {
	data, err := c.redis.Get(ctx, summaryKey(chatbotID)).Bytes()
	if err == redis.Nil {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) Set(ctx context.Context, chatbotID string, s *Summary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, summaryKey(chatbotID), data, summaryTTL).Err()
}

func (c *Cache) Invalidate(ctx context.Context, chatbotID string) error {
	return c.redis.Del(ctx, summaryKey(chatbotID)).Err()
}
