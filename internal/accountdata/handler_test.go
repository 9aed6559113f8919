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

package accountdata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata/model"
	"github.com/wso2/ob-consent-enforcement/internal/accountdata/redactor"
	"github.com/wso2/ob-consent-enforcement/internal/consent/mocks"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/middleware"
)

func newTestRouter(t *testing.T, perms ...string) *gin.Engine {
	return newRouterWithStore(seededStore(t), perms...)
}

func newRouterWithStore(store accountDataStore, perms ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	consents := &mocks.MockConsentService{}
	consents.On("GetConsent", mock.Anything, "c-1", "client-1").Return(accountConsent(perms...), nil)

	router := gin.New()
	group := router.Group(constants.APIBasePath, middleware.ClientIDMiddleware())
	registerRoutes(group, newAccountDataHandler(newTestService(store, consents, true)))
	return router
}

func get(router *gin.Engine, path string, consentID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, constants.APIBasePath+path, nil)
	req.Header.Set(constants.ClientIDHeaderName, "client-1")
	if consentID != "" {
		req.Header.Set(constants.ConsentIDHeaderName, consentID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_GetAccountTransactions(t *testing.T) {
	router := newTestRouter(t, redactor.ReadTransactionsDetail, redactor.ReadTransactionsCredits,
		redactor.ReadTransactionsDebits, redactor.ReadPAN)

	w := get(router, "/accounts/acc-1/transactions", "c-1")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Transaction []map[string]interface{} `json:"Transaction"`
		} `json:"Data"`
		Links struct {
			Self string `json:"Self"`
		} `json:"Links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Transaction, 2)
	assert.Equal(t, constants.APIBasePath+"/accounts/acc-1/transactions", body.Links.Self)
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	router := newTestRouter(t, redactor.ReadBeneficiariesBasic)

	w := get(router, "/beneficiaries", "c-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Data":{"Beneficiary":[]},"Links":{"Self":"`+constants.APIBasePath+`/beneficiaries"},"Meta":{"TotalPages":1}}`,
		w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	router := newTestRouter(t, redactor.ReadAccountsBasic)

	assert.Equal(t, http.StatusBadRequest, get(router, "/accounts", "").Code)
	assert.Equal(t, http.StatusForbidden, get(router, "/statements", "c-1").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/accounts/acc-9", "c-1").Code)
}

func TestHandler_Pagination(t *testing.T) {
	store := seededStore(t)
	for i := 0; i < 101; i++ {
		store.resources = append(store.resources, model.AccountResource{
			ResourceID: fmt.Sprintf("d-%03d", i), AccountID: "acc-2", ResourceType: "transactions",
			Document: doc(t, &model.Transaction{AccountID: "acc-2", TransactionID: fmt.Sprintf("d-%03d", i),
				CreditDebitIndicator: model.Debit}),
		})
	}
	router := newRouterWithStore(store, redactor.ReadTransactionsBasic, redactor.ReadTransactionsCredits,
		redactor.ReadTransactionsDebits)
	path := constants.APIBasePath + "/transactions"

	var body struct {
		Data struct {
			Transaction []map[string]interface{} `json:"Transaction"`
		} `json:"Data"`
		Links map[string]string `json:"Links"`
		Meta  struct {
			TotalPages int `json:"TotalPages"`
		} `json:"Meta"`
	}

	w := get(router, "/transactions?page=2", "c-1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Transaction, 3)
	assert.Equal(t, 2, body.Meta.TotalPages)
	assert.Equal(t, path+"?page=2", body.Links["Self"])
	assert.Equal(t, path+"?page=1", body.Links["Prev"])
	assert.Equal(t, path+"?page=2", body.Links["Last"])
	assert.NotContains(t, body.Links, "Next")

	assert.Equal(t, http.StatusBadRequest, get(router, "/transactions?page=3", "c-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/transactions?page=zero", "c-1").Code)
}
