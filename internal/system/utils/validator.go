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
	"fmt"
	"strings"
)

// ValidateRequired checks that a string field is not blank.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateConsentID checks the consent ID path parameter.
func ValidateConsentID(consentID string) error {
	if err := ValidateRequired("consent ID", consentID); err != nil {
		return err
	}
	if len(consentID) > 255 {
		return fmt.Errorf("consent ID must not exceed 255 characters")
	}
	return nil
}

// ValidateIdempotencyKey checks the client supplied idempotency key.
func ValidateIdempotencyKey(key string, maxLength int) error {
	if err := ValidateRequired("idempotency key", key); err != nil {
		return err
	}
	if len(key) > maxLength {
		return fmt.Errorf("idempotency key must not exceed %d characters", maxLength)
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return fmt.Errorf("idempotency key must not contain whitespace")
	}
	return nil
}
