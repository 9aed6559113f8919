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
	"errors"
	"strings"

	"github.com/wso2/ob-consent-enforcement/internal/payment/validator"
)

var (
	// ErrUnknownProduct is returned for a product with no registered validator.
	ErrUnknownProduct = errors.New("unsupported payment product")
	// ErrMalformedRequest is returned when a submission body cannot be decoded.
	ErrMalformedRequest = errors.New("malformed payment request")
	// ErrConsentTypeMismatch is returned when the consent was granted for another product.
	ErrConsentTypeMismatch = errors.New("consent was not granted for this payment product")
)

// ValidationFailedError carries a failed validation result through the idempotency coordinator.
type ValidationFailedError struct {
	Result *validator.Result
}

func (e *ValidationFailedError) Error() string {
	return "payment request failed validation: " + strings.Join(e.Result.Codes(), ", ")
}
