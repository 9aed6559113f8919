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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
)

type mockConsentStore struct {
	mock.Mock
}

func (m *mockConsentStore) GetByID(ctx context.Context, consentID string) (*model.Consent, error) {
	args := m.Called(ctx, consentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consent), args.Error(1)
}

func (m *mockConsentStore) TransitionStatus(ctx context.Context, consentID, from, to string, updatedTime int64) (bool, error) {
	args := m.Called(ctx, consentID, from, to, updatedTime)
	return args.Bool(0), args.Error(1)
}

func (m *mockConsentStore) CreateFile(ctx context.Context, file *model.ConsentFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *mockConsentStore) GetFile(ctx context.Context, consentID string) (*model.ConsentFile, error) {
	args := m.Called(ctx, consentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentFile), args.Error(1)
}

func newTestService(store consentStore) *consentService {
	return &consentService{
		store:  store,
		now:    func() time.Time { return time.UnixMilli(5000) },
		logger: log.GetLogger(),
	}
}

func TestGetConsent_Taxonomy(t *testing.T) {
	ctx := context.Background()
	store := new(mockConsentStore)
	store.On("GetByID", ctx, "missing").Return(nil, nil)
	store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "owner"}, nil)
	svc := newTestService(store)

	_, err := svc.GetConsent(ctx, "missing", "owner")
	assert.ErrorIs(t, err, ErrConsentNotFound)

	_, err = svc.GetConsent(ctx, "c-1", "intruder")
	assert.ErrorIs(t, err, ErrConsentForbidden)

	consent, err := svc.GetConsent(ctx, "c-1", "owner")
	require.NoError(t, err)
	assert.Equal(t, "c-1", consent.ID)
}

func TestConsume(t *testing.T) {
	ctx := context.Background()

	t.Run("authorised consent is consumed", func(t *testing.T) {
		store := new(mockConsentStore)
		store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a", Status: model.StatusAuthorised}, nil)
		store.On("TransitionStatus", ctx, "c-1", model.StatusAuthorised, model.StatusConsumed, int64(5000)).Return(true, nil)

		assert.NoError(t, newTestService(store).Consume(ctx, "c-1", "a"))
		store.AssertExpectations(t)
	})

	t.Run("consumed consent cannot be consumed again", func(t *testing.T) {
		store := new(mockConsentStore)
		store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a", Status: model.StatusConsumed}, nil)

		err := newTestService(store).Consume(ctx, "c-1", "a")
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		store.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("concurrent consumption loses", func(t *testing.T) {
		store := new(mockConsentStore)
		store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a", Status: model.StatusAuthorised}, nil)
		store.On("TransitionStatus", ctx, "c-1", model.StatusAuthorised, model.StatusConsumed, int64(5000)).Return(false, nil)

		assert.ErrorIs(t, newTestService(store).Consume(ctx, "c-1", "a"), ErrInvalidStateTransition)
	})
}

func TestSaveFile_RequiresAwaitingAuthorisation(t *testing.T) {
	ctx := context.Background()
	store := new(mockConsentStore)
	store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a", Status: model.StatusAuthorised}, nil)

	err := newTestService(store).SaveFile(ctx, "c-1", "a", "UK.OBIE.PaymentInitiation.3.1", []byte("{}"))
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	store.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything)
}

func TestSaveFile_StoresContent(t *testing.T) {
	ctx := context.Background()
	store := new(mockConsentStore)
	store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a", Status: model.StatusAwaitingAuthorisation}, nil)
	store.On("CreateFile", ctx, mock.MatchedBy(func(f *model.ConsentFile) bool {
		return f.ConsentID == "c-1" && string(f.FileContent) == "{}" && f.CreatedTime == 5000
	})).Return(nil)

	assert.NoError(t, newTestService(store).SaveFile(ctx, "c-1", "a", "UK.OBIE.PaymentInitiation.3.1", []byte("{}")))
	store.AssertExpectations(t)
}

func TestGetFile_NotUploaded(t *testing.T) {
	ctx := context.Background()
	store := new(mockConsentStore)
	store.On("GetByID", ctx, "c-1").Return(&model.Consent{ID: "c-1", APIClientID: "a"}, nil)
	store.On("GetFile", ctx, "c-1").Return(nil, nil)

	_, err := newTestService(store).GetFile(ctx, "c-1", "a")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestServiceErrorFor(t *testing.T) {
	cases := map[error]string{
		ErrConsentNotFound:     serviceerror.ConsentNotFoundError.Code,
		ErrConsentForbidden:    serviceerror.ForbiddenError.Code,
		ErrFileAlreadyUploaded: serviceerror.ConflictError.Code,
		ErrFileNotFound:        serviceerror.ResourceNotFoundError.Code,
		errors.New("db down"):  serviceerror.InternalServerError.Code,
		fmt.Errorf("%w: consent c-1 changed status concurrently", ErrInvalidStateTransition): serviceerror.ConsentStateError.Code,
	}
	for err, code := range cases {
		assert.Equal(t, code, ServiceErrorFor(err).Code, err.Error())
	}
}
