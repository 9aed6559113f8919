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

	"github.com/gin-gonic/gin"

	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

// paymentHandler handles payment submission HTTP requests
type paymentHandler struct {
	service PaymentService
}

func newPaymentHandler(service PaymentService) *paymentHandler {
	return &paymentHandler{service: service}
}

// handleCreate returns the handler of POST /{product}
func (h *paymentHandler) handleCreate(product string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil || len(body) == 0 {
			utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "request body is required"))
			return
		}
		if !json.Valid(body) {
			utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "request body is not valid JSON"))
			return
		}

		idempotencyKey := c.GetHeader(constants.IdempotencyKeyHeader)
		response, _, svcErr := h.service.CreateSubmission(c.Request.Context(), product,
			utils.GetClientIDFromContext(c), idempotencyKey, body)
		if svcErr != nil {
			utils.SendError(c, svcErr)
			return
		}

		if idempotencyKey != "" {
			c.Header(constants.IdempotencyKeyHeader, idempotencyKey)
		}
		utils.SendCreatedResponse(c, response)
	}
}

// handleGet returns the handler of GET /{product}/{paymentId}
func (h *paymentHandler) handleGet(product string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response, svcErr := h.service.GetSubmission(c.Request.Context(), product, c.Param("paymentId"),
			utils.GetClientIDFromContext(c))
		if svcErr != nil {
			utils.SendError(c, svcErr)
			return
		}
		utils.SendOKResponse(c, response)
	}
}

// handleFileUpload handles POST /file-payment-consents/{consentId}/file
func (h *paymentHandler) handleFileUpload(c *gin.Context) {
	consentID := c.Param("consentId")
	if err := utils.ValidateConsentID(consentID); err != nil {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, err.Error()))
		return
	}

	content, err := c.GetRawData()
	if err != nil || len(content) == 0 {
		utils.SendError(c, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, "file content is required"))
		return
	}

	if svcErr := h.service.UploadFile(c.Request.Context(), consentID, utils.GetClientIDFromContext(c), content); svcErr != nil {
		utils.SendError(c, svcErr)
		return
	}
	c.Status(http.StatusOK)
}
