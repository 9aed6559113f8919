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

package idempotency

import "errors"

var (
	// ErrIdempotencyConflict is returned when a key is reused with a different payload.
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different payload")
	// ErrDuplicateSubmission is returned by the store when the unique dedup constraint is violated.
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrInvalidPayload is returned when the payload is not a JSON document.
	ErrInvalidPayload = errors.New("payload is not valid JSON")
	// ErrMissingKey is returned when the mode needs an idempotency key and none was supplied.
	ErrMissingKey = errors.New("idempotency key is required")
)
