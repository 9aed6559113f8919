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
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

// accountDataHandler handles account information read requests
type accountDataHandler struct {
	service AccountDataService
}

func newAccountDataHandler(service AccountDataService) *accountDataHandler {
	return &accountDataHandler{service: service}
}

// requestScope reads the consent bound to the access token (forwarded by the gateway) and the
// optional account path parameter.
func requestScope(c *gin.Context) (consentID, apiClientID, accountID string, ok bool) {
	consentID = c.GetHeader(constants.ConsentIDHeaderName)
	if consentID == "" {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError,
			constants.ConsentIDHeaderName+" header is required"))
		return "", "", "", false
	}
	return consentID, utils.GetClientIDFromContext(c), c.Param("accountId"), true
}

// respond writes one page of records. Paging links are only set when there is more than one page.
func respond[T any](c *gin.Context, key string, records []T, svcErr *serviceerror.ServiceError) {
	if svcErr != nil {
		utils.SendError(c, svcErr)
		return
	}

	page, err := utils.ParsePage(c.Query("page"), utils.DefaultPageSize)
	if err != nil {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, err.Error()))
		return
	}
	start, end, ok := page.Bounds(len(records))
	if !ok {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError,
			fmt.Sprintf("page %d is beyond the last page", page.Number)))
		return
	}

	window := make([]T, 0, end-start)
	window = append(window, records[start:end]...)

	path := c.Request.URL.Path
	totalPages := page.TotalPages(len(records))
	links := model.ResponseLinks{Self: path}
	if totalPages > 1 {
		pageLink := func(n int) string { return fmt.Sprintf("%s?page=%d", path, n) }
		links.Self = pageLink(page.Number)
		links.First = pageLink(1)
		links.Last = pageLink(totalPages)
		if page.HasPrevious() {
			links.Prev = pageLink(page.Number - 1)
		}
		if page.HasNext(len(records)) {
			links.Next = pageLink(page.Number + 1)
		}
	}

	utils.SendOKResponse(c, model.ReadResponse{
		Data:  map[string]interface{}{key: window},
		Links: links,
		Meta:  model.ResponseMeta{TotalPages: totalPages},
	})
}

// handleGetAccounts handles GET /accounts and GET /accounts/{accountId}
func (h *accountDataHandler) handleGetAccounts(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetAccounts(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "Account", records, svcErr)
}

// handleGetBalances handles GET /balances and GET /accounts/{accountId}/balances
func (h *accountDataHandler) handleGetBalances(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetBalances(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "Balance", records, svcErr)
}

// handleGetTransactions handles GET /transactions and GET /accounts/{accountId}/transactions
func (h *accountDataHandler) handleGetTransactions(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetTransactions(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "Transaction", records, svcErr)
}

// handleGetBeneficiaries handles GET /beneficiaries and GET /accounts/{accountId}/beneficiaries
func (h *accountDataHandler) handleGetBeneficiaries(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetBeneficiaries(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "Beneficiary", records, svcErr)
}

// handleGetStandingOrders handles GET /standing-orders and GET /accounts/{accountId}/standing-orders
func (h *accountDataHandler) handleGetStandingOrders(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetStandingOrders(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "StandingOrder", records, svcErr)
}

// handleGetScheduledPayments handles GET /scheduled-payments and GET /accounts/{accountId}/scheduled-payments
func (h *accountDataHandler) handleGetScheduledPayments(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetScheduledPayments(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "ScheduledPayment", records, svcErr)
}

// handleGetStatements handles GET /statements and GET /accounts/{accountId}/statements
func (h *accountDataHandler) handleGetStatements(c *gin.Context) {
	consentID, clientID, accountID, ok := requestScope(c)
	if !ok {
		return
	}
	records, svcErr := h.service.GetStatements(c.Request.Context(), consentID, clientID, accountID)
	respond(c, "Statement", records, svcErr)
}
