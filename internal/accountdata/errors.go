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

import "errors"

var (
	// ErrNotAccountConsent is returned when a payment consent is used to read account data.
	ErrNotAccountConsent = errors.New("consent does not grant account access")
	// ErrPermissionDenied is returned when the consent holds neither tier for the resource.
	ErrPermissionDenied = errors.New("consent does not permit access to the resource")
	// ErrAccountNotFound is returned when the account is not linked to the consent.
	ErrAccountNotFound = errors.New("account not found")
)
