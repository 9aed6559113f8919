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

package serviceerror

// ServiceErrorType separates failures the client can fix from failures it cannot.
type ServiceErrorType string

const (
	ClientErrorType ServiceErrorType = "client_error"
	ServerErrorType ServiceErrorType = "server_error"
)

// ErrorDetail is a single field-level problem attached to a ServiceError.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// ServiceError is the error value returned by services to the transport layer.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
	Details          []ErrorDetail    `json:"details,omitempty"`
}

var (
	InternalServerError = ServiceError{
		Type:             ServerErrorType,
		Code:             "SSE-5000",
		Error:            "internal_server_error",
		ErrorDescription: "An unexpected error occurred",
	}

	DatabaseError = ServiceError{
		Type:             ServerErrorType,
		Code:             "SSE-5001",
		Error:            "database_error",
		ErrorDescription: "A database error occurred",
	}

	InvalidRequestError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4000",
		Error:            "invalid_request",
		ErrorDescription: "The request is invalid",
	}

	ValidationError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4001",
		Error:            "validation_error",
		ErrorDescription: "Validation failed",
	}

	ForbiddenError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4003",
		Error:            "forbidden",
		ErrorDescription: "The resource is not accessible to the caller",
	}

	ResourceNotFoundError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4004",
		Error:            "resource_not_found",
		ErrorDescription: "Resource not found",
	}

	ConflictError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4009",
		Error:            "conflict",
		ErrorDescription: "Request conflicts with current state",
	}

	ConsentNotFoundError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4040",
		Error:            "consent_not_found",
		ErrorDescription: "Consent not found",
	}

	ConsentStateError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4043",
		Error:            "consent_state_invalid",
		ErrorDescription: "Consent is not in a state that permits this operation",
	}

	IdempotencyConflictError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CSE-4091",
		Error:            "idempotency_key_reused",
		ErrorDescription: "Idempotency key was already used with a different request",
	}
)

// CustomServiceError copies baseError with a different description.
func CustomServiceError(baseError ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:             baseError.Type,
		Code:             baseError.Code,
		Error:            baseError.Error,
		ErrorDescription: description,
	}
}

// WithDetails copies baseError and attaches field-level details.
func WithDetails(baseError ServiceError, description string, details []ErrorDetail) *ServiceError {
	svcErr := CustomServiceError(baseError, description)
	svcErr.Details = details
	return svcErr
}
