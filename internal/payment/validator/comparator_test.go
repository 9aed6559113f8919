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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
)

func TestMatches_RawJSON(t *testing.T) {
	tests := []struct {
		name     string
		consent  string
		request  string
		expected bool
	}{
		{"identical", `{"a":1,"b":"x"}`, `{"a":1,"b":"x"}`, true},
		{"key order and whitespace", `{"a":1,"b":{"c":[1,2]}}`, "{ \"b\": {\"c\": [1, 2]},\n \"a\": 1 }", true},
		{"number spelling", `{"a":1.0}`, `{"a":1}`, true},
		{"different value", `{"a":1}`, `{"a":2}`, false},
		{"extra field", `{"a":1}`, `{"a":1,"b":2}`, false},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"invalid json", `{"a":1}`, `{"a":`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(json.RawMessage(tt.consent), json.RawMessage(tt.request)))
		})
	}
}

func TestMatches_EmptyFragmentsAreEqual(t *testing.T) {
	assert.True(t, Matches(json.RawMessage(nil), json.RawMessage("")))
	assert.False(t, Matches(json.RawMessage(nil), json.RawMessage(`{}`)))
}

func TestMatches_TypedValues(t *testing.T) {
	consent := model.DomesticInitiation{
		InstructionIdentification: "ACME412",
		InstructedAmount:          model.Amount{Amount: "165.88", Currency: "GBP"},
		CreditorAccount:           model.CashAccount{SchemeName: "UK.OBIE.SortCodeAccountNumber", Identification: "08080021325698"},
		SupplementaryData:         json.RawMessage(`{"a": 1, "b": 2}`),
	}
	request := consent
	request.SupplementaryData = json.RawMessage(`{"b":2,"a":1}`)

	assert.True(t, Matches(consent, request))

	request.InstructedAmount.Amount = "165.89"
	assert.False(t, Matches(consent, request))
}
