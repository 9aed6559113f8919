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
	"github.com/gin-gonic/gin"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata/redactor"
	"github.com/wso2/ob-consent-enforcement/internal/consent"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
)

// Initialize sets up the account data module and registers its routes on group.
func Initialize(group *gin.RouterGroup, db *database.DB, consents consent.ConsentService, r *redactor.Redactor) AccountDataService {
	service := newAccountDataService(newAccountDataStore(db), consents, r)
	registerRoutes(group, newAccountDataHandler(service))
	return service
}

func registerRoutes(group *gin.RouterGroup, handler *accountDataHandler) {
	group.GET("/accounts", handler.handleGetAccounts)
	group.GET("/accounts/:accountId", handler.handleGetAccounts)

	resources := map[string]gin.HandlerFunc{
		"balances":           handler.handleGetBalances,
		"transactions":       handler.handleGetTransactions,
		"beneficiaries":      handler.handleGetBeneficiaries,
		"standing-orders":    handler.handleGetStandingOrders,
		"scheduled-payments": handler.handleGetScheduledPayments,
		"statements":         handler.handleGetStatements,
	}
	for path, h := range resources {
		group.GET("/"+path, h)
		group.GET("/accounts/:accountId/"+path, h)
	}
}
