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

package apierror

import "github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"

// ErrorResponse is the JSON error body written to clients.
type ErrorResponse struct {
	Code        string                     `json:"error"`
	Description string                     `json:"error_description"`
	Details     []serviceerror.ErrorDetail `json:"errors,omitempty"`
}

// FromServiceError converts a service error into its wire form.
func FromServiceError(err *serviceerror.ServiceError) *ErrorResponse {
	return &ErrorResponse{
		Code:        err.Error,
		Description: err.ErrorDescription,
		Details:     err.Details,
	}
}
