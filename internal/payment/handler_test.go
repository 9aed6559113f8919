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

package payment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/consent/mocks"
	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/fileparser"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/apierror"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/middleware"
)

func newPaymentRouter(consents *mocks.MockConsentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service, _ := newTestPaymentService(consents)

	router := gin.New()
	group := router.Group(constants.APIBasePath, middleware.ClientIDMiddleware())
	registerRoutes(group, newPaymentHandler(service), service.productNames())
	return router
}

func send(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, constants.APIBasePath+path, strings.NewReader(body))
	req.Header.Set(constants.ClientIDHeaderName, "client-1")
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateReplayAndGet(t *testing.T) {
	consents := &mocks.MockConsentService{}
	consents.On("GetConsent", mock.Anything, "c-1", "client-1").Return(domesticPaymentConsent(consentmodel.StatusAuthorised), nil)
	consents.On("Consume", mock.Anything, "c-1", "client-1").Return(nil)
	router := newPaymentRouter(consents)
	headers := map[string]string{constants.IdempotencyKeyHeader: "key-1"}

	w := send(router, http.MethodPost, "/domestic-payments", string(domesticPayload(testRisk)), headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "key-1", w.Header().Get(constants.IdempotencyKeyHeader))

	var created model.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.SubmissionID)

	w = send(router, http.MethodPost, "/domestic-payments", string(domesticPayload(testRisk)), headers)
	require.Equal(t, http.StatusCreated, w.Code)
	var replayed model.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replayed))
	assert.Equal(t, created.Data.SubmissionID, replayed.Data.SubmissionID)

	w = send(router, http.MethodGet, "/domestic-payments/"+created.Data.SubmissionID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Data.TransactionID)

	w = send(router, http.MethodGet, "/domestic-vrps/"+created.Data.SubmissionID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateErrors(t *testing.T) {
	consents := &mocks.MockConsentService{}
	consents.On("GetConsent", mock.Anything, "c-1", "client-1").Return(domesticPaymentConsent(consentmodel.StatusAuthorised), nil)
	router := newPaymentRouter(consents)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{name: "empty body", body: "", status: http.StatusBadRequest, code: serviceerror.InvalidRequestError.Error},
		{name: "invalid JSON", body: `{"Data":`, status: http.StatusBadRequest, code: serviceerror.InvalidRequestError.Error},
		{name: "risk mismatch", body: string(domesticPayload(`{}`)), status: http.StatusBadRequest,
			code: serviceerror.ValidationError.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(router, http.MethodPost, "/domestic-payments", tt.body, nil)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			var body apierror.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestHandler_FileUpload(t *testing.T) {
	consents := &mocks.MockConsentService{}
	consents.On("GetConsent", mock.Anything, "f-1", "client-1").
		Return(filePaymentConsent(consentmodel.StatusAwaitingAuthorisation, testFileContent), nil)
	consents.On("SaveFile", mock.Anything, "f-1", "client-1", fileparser.FileTypeJSON, []byte(testFileContent)).Return(nil)
	router := newPaymentRouter(consents)

	w := send(router, http.MethodPost, "/file-payment-consents/f-1/file", testFileContent, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = send(router, http.MethodPost, "/file-payment-consents/f-1/file", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	consents.AssertNumberOfCalls(t, "SaveFile", 1)
}
