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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const domesticInitiation = `{
  "InstructionIdentification": "ACME412",
  "EndToEndIdentification": "FRESCO.21302.GFX.20",
  "InstructedAmount": {"Amount": "165.88", "Currency": "GBP"},
  "CreditorAccount": {"SchemeName": "UK.OBIE.SortCodeAccountNumber", "Identification": "08080021325698", "Name": "ACME Inc"}
}`

const domesticRisk = `{"PaymentContextCode": "EcommerceGoods", "MerchantCategoryCode": "5967"}`

func domesticConsent(t *testing.T, status string) *model.PaymentConsent[model.DomesticInitiation, model.NoControlParameters] {
	t.Helper()
	decoded, err := model.DecodeConsent[model.DomesticInitiation, model.NoControlParameters](&consentmodel.Consent{
		ID:          "c-1",
		APIClientID: "client-1",
		Type:        consentmodel.TypeDomesticPayment,
		Status:      status,
		Initiation:  json.RawMessage(domesticInitiation),
		Risk:        json.RawMessage(domesticRisk),
	})
	require.NoError(t, err)
	return decoded
}

func domesticRequest(t *testing.T, initiation, risk string) *model.SubmissionRequest[model.DomesticInitiation] {
	t.Helper()
	body := `{"Data": {"ConsentId": "c-1", "Initiation": ` + initiation + `}, "Risk": ` + risk + `}`
	var req model.SubmissionRequest[model.DomesticInitiation]
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestValidate_MatchingSubmissionIsValid(t *testing.T) {
	v := NewDomesticPaymentValidator()
	req := domesticRequest(t, domesticInitiation, `{"MerchantCategoryCode":"5967","PaymentContextCode":"EcommerceGoods"}`)

	result := v.Validate(req, domesticConsent(t, consentmodel.StatusAuthorised), Options{Now: testNow})
	assert.True(t, result.Valid(), "%v", result.Entries)
}

func TestValidate_AggregatesStatusRiskAndInitiationFailures(t *testing.T) {
	v := NewDomesticPaymentValidator()
	tampered := `{
	  "InstructionIdentification": "ACME412",
	  "EndToEndIdentification": "FRESCO.21302.GFX.20",
	  "InstructedAmount": {"Amount": "9999.00", "Currency": "GBP"},
	  "CreditorAccount": {"SchemeName": "UK.OBIE.SortCodeAccountNumber", "Identification": "08080021325698", "Name": "ACME Inc"}
	}`
	req := domesticRequest(t, tampered, `{"PaymentContextCode": "BillPayment"}`)

	result := v.Validate(req, domesticConsent(t, consentmodel.StatusAwaitingAuthorisation), Options{Now: testNow})

	assert.Equal(t, []string{codes.ConsentStateInvalid, codes.RiskMismatch, codes.InitiationMismatch}, result.Codes())
	assert.Contains(t, result.Entries[0].Message, consentmodel.StatusAwaitingAuthorisation)
}

func TestValidate_ProductRulesSkippedWhenConsentNotAuthorised(t *testing.T) {
	lower := `{
	  "InstructionIdentification": "ACME412",
	  "EndToEndIdentification": "FRESCO.21302.GFX.20",
	  "InstructedAmount": {"Amount": "165.88", "Currency": "gbp"},
	  "CreditorAccount": {"SchemeName": "UK.OBIE.SortCodeAccountNumber", "Identification": "08080021325698", "Name": "ACME Inc"}
	}`
	req := domesticRequest(t, lower, domesticRisk)
	v := NewDomesticPaymentValidator()

	consumed := v.Validate(req, domesticConsent(t, consentmodel.StatusConsumed), Options{Now: testNow})
	assert.False(t, consumed.Has(codes.InvalidCurrency))
	assert.True(t, consumed.Has(codes.ConsentStateInvalid))

	authorised := v.Validate(req, domesticConsent(t, consentmodel.StatusAuthorised), Options{Now: testNow})
	assert.True(t, authorised.Has(codes.InvalidCurrency))
}

func TestValidate_ExpiredConsent(t *testing.T) {
	decoded, err := model.DecodeConsent[model.DomesticInitiation, model.NoControlParameters](&consentmodel.Consent{
		ID:             "c-1",
		Status:         consentmodel.StatusAuthorised,
		Initiation:     json.RawMessage(domesticInitiation),
		Risk:           json.RawMessage(domesticRisk),
		ExpirationTime: testNow.Add(-time.Minute).UnixMilli(),
	})
	require.NoError(t, err)

	result := NewDomesticPaymentValidator().Validate(domesticRequest(t, domesticInitiation, domesticRisk), decoded, Options{Now: testNow})
	assert.Equal(t, []string{codes.ConsentExpired}, result.Codes())
}

func TestScheduledPayment_ExecutionDateMustBeFuture(t *testing.T) {
	initiation := `{"InstructionIdentification":"S1","RequestedExecutionDateTime":"2024-05-01T00:00:00Z",
	  "InstructedAmount":{"Amount":"1.00","Currency":"GBP"},
	  "CreditorAccount":{"SchemeName":"UK.OBIE.IBAN","Identification":"GB29NWBK60161331926819"}}`
	consent, err := model.DecodeConsent[model.DomesticScheduledInitiation, model.NoControlParameters](&consentmodel.Consent{
		Status: consentmodel.StatusAuthorised, Initiation: json.RawMessage(initiation), Risk: json.RawMessage(`{}`),
	})
	require.NoError(t, err)
	var req model.SubmissionRequest[model.DomesticScheduledInitiation]
	require.NoError(t, json.Unmarshal([]byte(`{"Data":{"ConsentId":"c","Initiation":`+initiation+`},"Risk":{}}`), &req))

	result := NewDomesticScheduledPaymentValidator().Validate(&req, consent, Options{Now: testNow})
	assert.Equal(t, []string{codes.FieldInvalid}, result.Codes())
}

func TestFilePayment_RequiresFileMetadata(t *testing.T) {
	initiation := `{"FileType":"UK.OBIE.PaymentInitiation.3.1","FileHash":"abc"}`
	withoutMetadata, err := model.DecodeConsent[model.FileInitiation, model.NoControlParameters](&consentmodel.Consent{
		Status: consentmodel.StatusAuthorised, Initiation: json.RawMessage(initiation),
	})
	require.NoError(t, err)
	var req model.SubmissionRequest[model.FileInitiation]
	require.NoError(t, json.Unmarshal([]byte(`{"Data":{"ConsentId":"c","Initiation":`+initiation+`}}`), &req))

	result := NewFilePaymentValidator().Validate(&req, withoutMetadata, Options{Now: testNow})
	assert.Equal(t, []string{codes.FieldMissing}, result.Codes())

	withMetadata, err := model.DecodeConsent[model.FileInitiation, model.NoControlParameters](&consentmodel.Consent{
		Status: consentmodel.StatusAuthorised, Initiation: json.RawMessage(initiation),
		FileMetadata: &consentmodel.FileMetadata{FileType: "UK.OBIE.PaymentInitiation.3.1", FileHash: "abc"},
	})
	require.NoError(t, err)
	assert.True(t, NewFilePaymentValidator().Validate(&req, withMetadata, Options{Now: testNow}).Valid())
}
