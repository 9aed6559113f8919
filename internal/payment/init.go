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
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/wso2/ob-consent-enforcement/internal/consent"
	"github.com/wso2/ob-consent-enforcement/internal/idempotency"
	"github.com/wso2/ob-consent-enforcement/internal/payment/fileparser"
	"github.com/wso2/ob-consent-enforcement/internal/payment/validator"
)

// Initialize sets up the payment module and registers its routes on group.
func Initialize(group *gin.RouterGroup, consents consent.ConsentService, coordinator *idempotency.Coordinator,
	maxKeyLength int) PaymentService {
	service := newPaymentService(consents, coordinator, validator.NewFileValidator(fileparser.NewRegistry()), maxKeyLength)
	registerRoutes(group, newPaymentHandler(service), service.productNames())
	return service
}

func registerRoutes(group *gin.RouterGroup, handler *paymentHandler, products []string) {
	for _, product := range products {
		group.POST("/"+product, handler.handleCreate(product))
		group.GET("/"+product+"/:paymentId", handler.handleGet(product))
	}
	group.POST("/file-payment-consents/:consentId/file", handler.handleFileUpload)
}

func (s *paymentService) productNames() []string {
	names := make([]string, 0, len(s.products))
	for name := range s.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
