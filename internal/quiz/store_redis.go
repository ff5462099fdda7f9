// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cybersage/api/internal/platform/constants"
)

// RedisCache implements the [Cache] interface using Redis.
//
// Role-scoped question lists are the hottest read path of the API: every quiz
// session fetches them. Entries are stored as JSON blobs under
// "quiz:role:<role>" with a short TTL to bound staleness.
type RedisCache struct {
	client *redis.Client
}

// NewCache creates a new Redis-backed question cache.
func NewCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// GetRole returns the cached question list for a role, or (nil, nil) on a miss.
func (cache *RedisCache) GetRole(context context.Context, role string) ([]Question, error) {
	key := constants.RedisPrefixQuizRole + role

	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_quiz_cache_get_failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, nil
	}

	return questions, nil
}

// SetRole stores the question list for a role with the given TTL.
func (cache *RedisCache) SetRole(context context.Context, role string, questions []Question, ttl time.Duration) error {
	key := constants.RedisPrefixQuizRole + role

	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("redis_quiz_cache_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_quiz_cache_set_failed: %w", err)
	}

	return nil
}

// InvalidateRole drops the cached question list for a role.
func (cache *RedisCache) InvalidateRole(context context.Context, role string) error {
	key := constants.RedisPrefixQuizRole + role

	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_quiz_cache_invalidate_failed: %w", err)
	}

	return nil
}
