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

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/apierror"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
)

// StatusCodeFor maps a ServiceError onto the HTTP status the client receives.
func StatusCodeFor(err *serviceerror.ServiceError) int {
	if err.Type != serviceerror.ClientErrorType {
		return http.StatusInternalServerError
	}
	switch err.Code {
	case serviceerror.ResourceNotFoundError.Code, serviceerror.ConsentNotFoundError.Code:
		return http.StatusNotFound
	case serviceerror.ForbiddenError.Code:
		return http.StatusForbidden
	case serviceerror.ConflictError.Code, serviceerror.IdempotencyConflictError.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// SendError writes a ServiceError as an HTTP response with appropriate status code.
func SendError(c *gin.Context, err *serviceerror.ServiceError) {
	c.JSON(StatusCodeFor(err), apierror.FromServiceError(err))
}

// SendOKResponse sends a 200 OK response.
func SendOKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreatedResponse sends a 201 Created response.
func SendCreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// GetClientIDFromContext extracts the API client ID set by the client middleware.
func GetClientIDFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeyClientID)
}

