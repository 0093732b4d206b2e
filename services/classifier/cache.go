package classifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"ecoscan/models"
	"ecoscan/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "classify:"

// ResultCache memoizes classification results by image digest so resubmitting
// the same photo does not burn upstream quota. Cache failures degrade to a
// direct upstream call.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a ResultCache backed by the given redis client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// Get returns the cached result for the image, if present.
func (c *ResultCache) Get(ctx context.Context, image []byte) (*models.ClassificationResult, bool) {
	payload, err := c.client.Get(ctx, cacheKey(image)).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("classification cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var result models.ClassificationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Put stores the result for the image.
func (c *ResultCache) Put(ctx context.Context, image []byte, result *models.ClassificationResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(image), payload, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("classification cache write failed", zap.Error(err))
	}
}

func cacheKey(image []byte) string {
	sum := sha256.Sum256(image)
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
