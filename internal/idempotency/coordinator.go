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

// Package idempotency guarantees that a payment submission is persisted at most once per
// idempotency key and that retries receive the original result.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"

	"github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
	"github.com/wso2/ob-consent-enforcement/internal/system/metrics"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

// Mode selects what a submission is de-duplicated on.
type Mode int

const (
	// PerIdempotencyKey allows one submission per client supplied key.
	PerIdempotencyKey Mode = iota
	// PerConsent allows one submission per consent. The consent ID is the dedup key and it
	// never expires.
	PerConsent
)

// Key identifies a submission attempt.
type Key struct {
	ConsentID      string
	APIClientID    string
	IdempotencyKey string
	Mode           Mode
}

// DedupKey returns the value the store's unique constraint is enforced on.
func (k Key) DedupKey() string {
	if k.Mode == PerConsent {
		return k.ConsentID
	}
	return k.IdempotencyKey
}

func (k Key) expires() bool {
	return k.Mode != PerConsent
}

// BuildFunc validates the attempt and returns the submission to persist. Only the status,
// transaction ID and product need to be set; the coordinator fills in the rest.
type BuildFunc func(ctx context.Context) (*model.Submission, error)

// Coordinator implements find-or-create over a SubmissionStore.
type Coordinator struct {
	store         SubmissionStore
	cache         ReplayCache
	keyExpiration time.Duration
	now           func() time.Time
	logger        *log.Logger
	metrics       *metrics.Metrics
}

// NewCoordinator creates a coordinator. cache may be nil.
func NewCoordinator(store SubmissionStore, cache ReplayCache, keyExpiration time.Duration) *Coordinator {
	return &Coordinator{
		store:         store,
		cache:         cache,
		keyExpiration: keyExpiration,
		now:           time.Now,
		logger:        log.GetLogger().With(log.String(log.LoggerKeyComponentName, "IdempotencyCoordinator")),
		metrics:       metrics.Get(),
	}
}

// PayloadHash returns the base64 SHA-256 digest of the RFC 8785 form of payload.
func PayloadHash(payload json.RawMessage) (string, error) {
	canonical, err := jcs.Transform(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// FindExisting returns the live submission holding key, or nil. Submissions whose key expired
// are not returned, except in PerConsent mode where the holder is always returned.
func (c *Coordinator) FindExisting(ctx context.Context, key Key) (*model.Submission, error) {
	dedupKey := key.DedupKey()
	if dedupKey == "" {
		return nil, ErrMissingKey
	}
	nowMillis := c.now().UnixMilli()

	if c.cache != nil {
		cached, err := c.cache.Get(ctx, key.ConsentID, key.APIClientID, dedupKey)
		switch {
		case err != nil:
			c.metrics.ReplayCacheLookups.WithLabelValues("error").Inc()
			c.logger.WithContext(ctx).Warn("Replay cache lookup failed, falling back to store", log.Error(err))
		case cached != nil && (!key.expires() || !cached.KeyExpired(nowMillis)):
			c.metrics.ReplayCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			c.metrics.ReplayCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	existing, err := c.store.GetByDedupKey(ctx, key.ConsentID, key.APIClientID, dedupKey)
	if err != nil {
		return nil, err
	}
	if existing == nil || (key.expires() && existing.KeyExpired(nowMillis)) {
		return nil, nil
	}
	return existing, nil
}

// Save persists submission. When another request already holds the key the winner is returned
// with replayed set, provided the payloads are equal; a different payload is a conflict. A winner
// whose key has expired is retired and the insert is retried once, unless submission carries no
// key expiration, in which case the winner is never retired.
func (c *Coordinator) Save(ctx context.Context, submission *model.Submission) (*model.Submission, bool, error) {
	logger := c.logger.WithContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		err := c.store.Insert(ctx, submission)
		if err == nil {
			c.cacheSubmission(ctx, submission)
			return submission, false, nil
		}
		if !errors.Is(err, ErrDuplicateSubmission) {
			return nil, false, err
		}

		winner, err := c.store.GetByDedupKey(ctx, submission.ConsentID, submission.APIClientID, submission.DedupKey)
		if err != nil {
			return nil, false, err
		}
		if winner == nil {
			// The holder retired the key between our insert and read.
			continue
		}
		if submission.IdempotencyKeyExpiration != 0 && winner.KeyExpired(c.now().UnixMilli()) {
			logger.Debug("Retiring expired idempotency key",
				log.String("submission_id", winner.ID), log.String("consent_id", winner.ConsentID))
			if err := c.store.RetireDedupKey(ctx, winner.ID, submission.DedupKey, c.now().UnixMilli()); err != nil {
				return nil, false, err
			}
			continue
		}
		if winner.PayloadHash != submission.PayloadHash {
			logger.Warn("Idempotency key reused with a different payload",
				log.String("consent_id", submission.ConsentID), log.String("idempotency_key", submission.IdempotencyKey))
			return nil, false, ErrIdempotencyConflict
		}

		logger.Debug("Concurrent submission resolved to existing record", log.String("submission_id", winner.ID))
		return winner, true, nil
	}

	return nil, false, fmt.Errorf("could not acquire idempotency key for consent %s", submission.ConsentID)
}

// FindOrCreate returns the submission previously created for key when its payload equals
// payload. Otherwise build runs and its submission is saved. The returned flag is true when an
// existing submission was returned.
func (c *Coordinator) FindOrCreate(ctx context.Context, key Key, payload json.RawMessage, build BuildFunc) (*model.Submission, bool, error) {
	hash, err := PayloadHash(payload)
	if err != nil {
		return nil, false, err
	}

	existing, err := c.FindExisting(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return c.replay(existing, hash)
	}

	submission, buildErr := build(ctx)
	if buildErr != nil {
		// A concurrent attempt may have won and changed the consent while this one validated.
		if winner, err := c.FindExisting(ctx, key); err == nil && winner != nil {
			return c.replay(winner, hash)
		}
		return nil, false, buildErr
	}

	now := c.now()
	if submission.ID == "" {
		submission.ID = utils.GenerateUUID()
	}
	submission.ConsentID = key.ConsentID
	submission.APIClientID = key.APIClientID
	submission.IdempotencyKey = key.IdempotencyKey
	submission.DedupKey = key.DedupKey()
	submission.IdempotencyKeyExpiration = 0
	if key.expires() {
		submission.IdempotencyKeyExpiration = now.Add(c.keyExpiration).UnixMilli()
	}
	submission.Payload = payload
	submission.PayloadHash = hash
	submission.CreatedTime = now.UnixMilli()
	submission.UpdatedTime = now.UnixMilli()

	return c.Save(ctx, submission)
}

// GetByID returns a stored submission, or nil.
func (c *Coordinator) GetByID(ctx context.Context, submissionID string) (*model.Submission, error) {
	return c.store.GetByID(ctx, submissionID)
}

// ListByConsent returns the submissions of a consent created at or after since.
func (c *Coordinator) ListByConsent(ctx context.Context, consentID string, since time.Time) ([]*model.Submission, error) {
	return c.store.ListByConsent(ctx, consentID, since.UnixMilli())
}

func (c *Coordinator) replay(existing *model.Submission, hash string) (*model.Submission, bool, error) {
	if existing.PayloadHash != hash {
		return nil, false, ErrIdempotencyConflict
	}
	return existing, true, nil
}

func (c *Coordinator) cacheSubmission(ctx context.Context, submission *model.Submission) {
	if c.cache == nil {
		return
	}
	ttl := time.UnixMilli(submission.IdempotencyKeyExpiration).Sub(c.now())
	if submission.IdempotencyKeyExpiration == 0 {
		ttl = c.keyExpiration
	}
	if err := c.cache.Set(ctx, submission, ttl); err != nil {
		c.logger.WithContext(ctx).Warn("Failed to cache submission", log.Error(err))
	}
}
