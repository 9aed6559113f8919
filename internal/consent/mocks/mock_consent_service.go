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

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wso2/ob-consent-enforcement/internal/consent/model"
)

// MockConsentService is a mock implementation of consent.ConsentService
type MockConsentService struct {
	mock.Mock
}

func (m *MockConsentService) GetConsent(ctx context.Context, consentID, apiClientID string) (*model.Consent, error) {
	args := m.Called(ctx, consentID, apiClientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consent), args.Error(1)
}

func (m *MockConsentService) Consume(ctx context.Context, consentID, apiClientID string) error {
	args := m.Called(ctx, consentID, apiClientID)
	return args.Error(0)
}

func (m *MockConsentService) SaveFile(ctx context.Context, consentID, apiClientID, fileType string, content []byte) error {
	args := m.Called(ctx, consentID, apiClientID, fileType, content)
	return args.Error(0)
}

func (m *MockConsentService) GetFile(ctx context.Context, consentID, apiClientID string) (*model.ConsentFile, error) {
	args := m.Called(ctx, consentID, apiClientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentFile), args.Error(1)
}
