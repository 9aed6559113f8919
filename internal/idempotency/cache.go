/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
)

// ReplayCache holds recently created submissions by dedup key. It is an optimisation only; the
// store remains authoritative.
type ReplayCache interface {
	Get(ctx context.Context, consentID, apiClientID, dedupKey string) (*model.Submission, error)
	Set(ctx context.Context, submission *model.Submission, ttl time.Duration) error
}

// redisCommands is the subset of the go-redis client the cache uses.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisReplayCache struct {
	client redisCommands
	prefix string
}

// NewRedisReplayCache creates a ReplayCache backed by redis. Keys are namespaced by prefix.
func NewRedisReplayCache(client redisCommands, prefix string) ReplayCache {
	return &redisReplayCache{client: client, prefix: prefix}
}

func (c *redisReplayCache) key(consentID, apiClientID, dedupKey string) string {
	return fmt.Sprintf("%s%s:%s:%s", c.prefix, consentID, apiClientID, dedupKey)
}

// Get returns nil on a cache miss
func (c *redisReplayCache) Get(ctx context.Context, consentID, apiClientID, dedupKey string) (*model.Submission, error) {
	raw, err := c.client.Get(ctx, c.key(consentID, apiClientID, dedupKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("replay cache get failed: %w", err)
	}

	var submission model.Submission
	if err := json.Unmarshal(raw, &submission); err != nil {
		return nil, fmt.Errorf("replay cache entry is corrupt: %w", err)
	}
	return &submission, nil
}

// Set stores the submission under its dedup key for ttl
func (c *redisReplayCache) Set(ctx context.Context, submission *model.Submission, ttl time.Duration) error {
	if ttl <= 0 || submission.DedupKey == "" {
		return nil
	}
	raw, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to encode replay cache entry: %w", err)
	}
	key := c.key(submission.ConsentID, submission.APIClientID, submission.DedupKey)
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("replay cache set failed: %w", err)
	}
	return nil
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}
