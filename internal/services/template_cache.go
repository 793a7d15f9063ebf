package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hopa-consensus/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	TemplateCacheKeyPrefix = "consensus:template:"
	TemplateCacheDuration  = 1 * time.Hour
)

// TemplateCache keeps exported documents by title. A nil client turns every
// call into a miss; cache failures are logged and never fail a request.
type TemplateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTemplateCache(client *redis.Client, ttl time.Duration) *TemplateCache {
	if ttl <= 0 {
		ttl = TemplateCacheDuration
	}
	return &TemplateCache{client: client, ttl: ttl}
}

func (c *TemplateCache) key(title string) string {
	return TemplateCacheKeyPrefix + title
}

func (c *TemplateCache) Get(ctx context.Context, title string) (*TemplateDocument, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, c.key(title)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("template cache read failed", zap.String("title", title), zap.Error(err))
		}
		return nil, false
	}

	var doc TemplateDocument
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		logger.Log.Warn("template cache entry unreadable", zap.String("title", title), zap.Error(err))
		return nil, false
	}
	return &doc, true
}

func (c *TemplateCache) Set(ctx context.Context, doc *TemplateDocument) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(doc.Title), data, c.ttl).Err(); err != nil {
		logger.Log.Warn("template cache write failed", zap.String("title", doc.Title), zap.Error(err))
	}
}

func (c *TemplateCache) Invalidate(ctx context.Context, title string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(title)).Err(); err != nil {
		logger.Log.Warn("template cache invalidation failed", zap.String("title", title), zap.Error(err))
	}
}
