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
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
)

type fakeRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisReplayCache_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	cache := NewRedisReplayCache(client, "ob:idempotency:")
	sub := testSubmission()

	require.NoError(t, cache.Set(context.Background(), sub, time.Hour))
	assert.Equal(t, time.Hour, client.ttls["ob:idempotency:c-1:client-1:k-1"])

	got, err := cache.Get(context.Background(), "c-1", "client-1", "k-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, sub.PayloadHash, got.PayloadHash)
	assert.JSONEq(t, string(sub.Payload), string(got.Payload))
}

func TestRedisReplayCache_Miss(t *testing.T) {
	cache := NewRedisReplayCache(newFakeRedis(), "p:")
	got, err := cache.Get(context.Background(), "c-1", "client-1", "k-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisReplayCache_SkipsExpiredAndRetired(t *testing.T) {
	client := newFakeRedis()
	cache := NewRedisReplayCache(client, "p:")

	require.NoError(t, cache.Set(context.Background(), testSubmission(), 0))
	retired := testSubmission()
	retired.DedupKey = ""
	require.NoError(t, cache.Set(context.Background(), retired, time.Hour))

	assert.Empty(t, client.values)
}

func TestRedisReplayCache_Errors(t *testing.T) {
	client := newFakeRedis()
	client.failGet = errors.New("connection refused")
	client.failSet = errors.New("connection refused")
	cache := NewRedisReplayCache(client, "p:")

	_, err := cache.Get(context.Background(), "c-1", "client-1", "k-1")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), testSubmission(), time.Hour))
}

func TestRedisReplayCache_CorruptEntry(t *testing.T) {
	client := newFakeRedis()
	client.values["p:c-1:client-1:k-1"] = "{not json"
	cache := NewRedisReplayCache(client, "p:")

	_, err := cache.Get(context.Background(), "c-1", "client-1", "k-1")
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestRedisReplayCache_ReturnsModel(t *testing.T) {
	client := newFakeRedis()
	raw, _ := json.Marshal(&model.Submission{ID: "s-9", DedupKey: "k"})
	client.values["p:c:cl:k"] = string(raw)

	got, err := NewRedisReplayCache(client, "p:").Get(context.Background(), "c", "cl", "k")
	require.NoError(t, err)
	assert.Equal(t, "s-9", got.ID)
}
