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
	"errors"

	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
)

var (
	// ErrConsentNotFound is returned when no consent exists with the given ID.
	ErrConsentNotFound = errors.New("consent not found")
	// ErrConsentForbidden is returned when the consent belongs to a different API client.
	ErrConsentForbidden = errors.New("consent is not accessible to the client")
	// ErrInvalidStateTransition is returned when the consent status does not permit the change.
	ErrInvalidStateTransition = errors.New("invalid consent state transition")
	// ErrFileAlreadyUploaded is returned on a second file upload for the same consent.
	ErrFileAlreadyUploaded = errors.New("consent file already uploaded")
	// ErrFileNotFound is returned when a file payment consent has no uploaded file.
	ErrFileNotFound = errors.New("consent file not found")
)

// ServiceErrorFor maps an error returned by ConsentService onto the client facing error.
// Errors outside the consent taxonomy map to InternalServerError.
func ServiceErrorFor(err error) *serviceerror.ServiceError {
	switch {
	case errors.Is(err, ErrConsentNotFound):
		return serviceerror.CustomServiceError(serviceerror.ConsentNotFoundError, err.Error())
	case errors.Is(err, ErrConsentForbidden):
		return serviceerror.CustomServiceError(serviceerror.ForbiddenError, err.Error())
	case errors.Is(err, ErrInvalidStateTransition):
		return serviceerror.CustomServiceError(serviceerror.ConsentStateError, err.Error())
	case errors.Is(err, ErrFileAlreadyUploaded):
		return serviceerror.CustomServiceError(serviceerror.ConflictError, err.Error())
	case errors.Is(err, ErrFileNotFound):
		return serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, err.Error())
	default:
		return &serviceerror.InternalServerError
	}
}
