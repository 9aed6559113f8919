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
	"sync"

	"github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
)

type dedupIndex struct {
	consentID, apiClientID, dedupKey string
}

// memoryStore is a SubmissionStore enforcing the dedup unique constraint in memory.
type memoryStore struct {
	mu      sync.Mutex
	byID    map[string]*model.Submission
	unique  map[dedupIndex]string
	inserts int
	retires int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byID: map[string]*model.Submission{}, unique: map[dedupIndex]string{}}
}

func clone(s *model.Submission) *model.Submission {
	c := *s
	c.Payload = append([]byte(nil), s.Payload...)
	return &c
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.byID[id]; ok {
		return clone(s), nil
	}
	return nil, nil
}

func (m *memoryStore) GetByDedupKey(_ context.Context, consentID, apiClientID, dedupKey string) (*model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.unique[dedupIndex{consentID, apiClientID, dedupKey}]; ok {
		return clone(m.byID[id]), nil
	}
	return nil, nil
}

func (m *memoryStore) Insert(_ context.Context, s *model.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := dedupIndex{s.ConsentID, s.APIClientID, s.DedupKey}
	if _, taken := m.unique[idx]; taken && s.DedupKey != "" {
		return ErrDuplicateSubmission
	}
	m.byID[s.ID] = clone(s)
	if s.DedupKey != "" {
		m.unique[idx] = s.ID
	}
	m.inserts++
	return nil
}

func (m *memoryStore) RetireDedupKey(_ context.Context, submissionID, dedupKey string, updatedTime int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[submissionID]
	if !ok || s.DedupKey != dedupKey {
		return nil
	}
	delete(m.unique, dedupIndex{s.ConsentID, s.APIClientID, dedupKey})
	s.DedupKey = ""
	s.UpdatedTime = updatedTime
	m.retires++
	return nil
}

func (m *memoryStore) ListByConsent(_ context.Context, consentID string, since int64) ([]*model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Submission
	for _, s := range m.byID {
		if s.ConsentID == consentID && s.CreatedTime >= since {
			out = append(out, clone(s))
		}
	}
	return out, nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}
