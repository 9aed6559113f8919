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

package consent

import (
	"context"
	"fmt"
	"time"

	"github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
)

// ConsentService is the consent store as seen by the enforcement engine.
type ConsentService interface {
	GetConsent(ctx context.Context, consentID, apiClientID string) (*model.Consent, error)
	Consume(ctx context.Context, consentID, apiClientID string) error
	SaveFile(ctx context.Context, consentID, apiClientID, fileType string, content []byte) error
	GetFile(ctx context.Context, consentID, apiClientID string) (*model.ConsentFile, error)
}

type consentService struct {
	store  consentStore
	now    func() time.Time
	logger *log.Logger
}

func newConsentService(store consentStore) ConsentService {
	return &consentService{
		store:  store,
		now:    time.Now,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ConsentService")),
	}
}

// GetConsent fetches a consent owned by apiClientID.
func (s *consentService) GetConsent(ctx context.Context, consentID, apiClientID string) (*model.Consent, error) {
	consent, err := s.store.GetByID(ctx, consentID)
	if err != nil {
		return nil, err
	}
	if consent == nil {
		return nil, ErrConsentNotFound
	}
	if consent.APIClientID != apiClientID {
		s.logger.WithContext(ctx).Warn("Consent requested by a client that does not own it",
			log.String("consent_id", consentID), log.String("client_id", apiClientID))
		return nil, ErrConsentForbidden
	}
	return consent, nil
}

// Consume marks an authorised single-shot consent as used.
func (s *consentService) Consume(ctx context.Context, consentID, apiClientID string) error {
	consent, err := s.GetConsent(ctx, consentID, apiClientID)
	if err != nil {
		return err
	}
	if consent.Status != model.StatusAuthorised {
		return fmt.Errorf("%w: cannot consume consent in status %s", ErrInvalidStateTransition, consent.Status)
	}

	ok, err := s.store.TransitionStatus(ctx, consentID, model.StatusAuthorised, model.StatusConsumed, s.now().UnixMilli())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: consent %s changed status concurrently", ErrInvalidStateTransition, consentID)
	}

	s.logger.WithContext(ctx).Debug("Consent consumed", log.String("consent_id", consentID))
	return nil
}

// SaveFile stores the bulk payment file of a file payment consent awaiting authorisation.
func (s *consentService) SaveFile(ctx context.Context, consentID, apiClientID, fileType string, content []byte) error {
	consent, err := s.GetConsent(ctx, consentID, apiClientID)
	if err != nil {
		return err
	}
	if consent.Status != model.StatusAwaitingAuthorisation {
		return fmt.Errorf("%w: file upload not permitted in status %s", ErrInvalidStateTransition, consent.Status)
	}

	return s.store.CreateFile(ctx, &model.ConsentFile{
		ConsentID:   consentID,
		FileContent: content,
		FileType:    fileType,
		CreatedTime: s.now().UnixMilli(),
	})
}

// GetFile returns the uploaded file of a consent.
func (s *consentService) GetFile(ctx context.Context, consentID, apiClientID string) (*model.ConsentFile, error) {
	if _, err := s.GetConsent(ctx, consentID, apiClientID); err != nil {
		return nil, err
	}
	file, err := s.store.GetFile(ctx, consentID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}
	return file, nil
}
