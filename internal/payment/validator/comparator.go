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

package validator

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/gowebpki/jcs"
)

// Matches reports whether the consent and request fragments describe the same value. Raw JSON
// fragments and typed values are both compared through their RFC 8785 canonical form, so key
// order, whitespace and number spelling do not affect the outcome.
func Matches(consentFragment, requestFragment any) bool {
	if reflect.DeepEqual(consentFragment, requestFragment) {
		return true
	}

	consentJSON, err := canonicalJSON(consentFragment)
	if err != nil {
		return false
	}
	requestJSON, err := canonicalJSON(requestFragment)
	if err != nil {
		return false
	}
	return bytes.Equal(consentJSON, requestJSON)
}

// CanonicalJSON returns the RFC 8785 form of a raw JSON document.
func CanonicalJSON(raw []byte) ([]byte, error) {
	return jcs.Transform(raw)
}

func canonicalJSON(v any) ([]byte, error) {
	var raw []byte
	switch t := v.(type) {
	case json.RawMessage:
		raw = t
	case []byte:
		raw = t
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		raw = encoded
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	return jcs.Transform(raw)
}
