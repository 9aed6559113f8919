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
	"fmt"
	"time"

	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
)

const (
	pathConsentStatus = "Data.ConsentId"
	pathRisk          = "Risk"
	pathInitiation    = "Data.Initiation"
)

// PaymentRequest is a submission of a payment product with initiation type I.
type PaymentRequest[I any] interface {
	GetConsentID() string
	GetInitiation() I
	GetRisk() json.RawMessage
}

// PaymentConsent is a stored consent of a payment product with initiation type I and control
// parameter type C.
type PaymentConsent[I, C any] interface {
	GetStatus() string
	GetInitiation() I
	GetRisk() json.RawMessage
	GetControlParameters() *C
	GetExpirationTime() int64
	GetCreatedTime() int64
	GetFileMetadata() *consentmodel.FileMetadata
}

// RuleInput is everything a product rule may inspect.
type RuleInput[I, C any] struct {
	Request PaymentRequest[I]
	Consent PaymentConsent[I, C]
	Now     time.Time
	Usage   PeriodicUsage
}

// ProductRule adds product specific failures to result. Rules must be pure.
type ProductRule[I, C any] func(in RuleInput[I, C], result *Result)

// Options carries the per call inputs of a validation pass.
type Options struct {
	Now   time.Time
	Usage PeriodicUsage
}

// ConsentRequestValidator runs the shared validation pass of one payment product.
type ConsentRequestValidator[I, C any] struct {
	product string
	rules   []ProductRule[I, C]
}

// NewConsentRequestValidator creates the validator of product with its product rules.
func NewConsentRequestValidator[I, C any](product string, rules ...ProductRule[I, C]) *ConsentRequestValidator[I, C] {
	return &ConsentRequestValidator[I, C]{product: product, rules: rules}
}

// Product returns the product the validator was created for.
func (v *ConsentRequestValidator[I, C]) Product() string {
	return v.product
}

// Validate reconciles request with consent. Every check runs and contributes to one result,
// except that product rules are skipped when the consent cannot be executed.
func (v *ConsentRequestValidator[I, C]) Validate(request PaymentRequest[I], consent PaymentConsent[I, C], opts Options) *Result {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	result := NewResult()

	executable := true
	if status := consent.GetStatus(); status != consentmodel.StatusAuthorised {
		result.Add(codes.ConsentStateInvalid,
			fmt.Sprintf("consent is in status %s, expected %s", status, consentmodel.StatusAuthorised),
			pathConsentStatus)
		executable = false
	} else if expiry := consent.GetExpirationTime(); expiry != 0 && expiry <= opts.Now.UnixMilli() {
		result.Add(codes.ConsentExpired, "consent has expired", pathConsentStatus)
		executable = false
	}

	if !Matches(consent.GetRisk(), request.GetRisk()) {
		result.Add(codes.RiskMismatch, "risk does not match the consent", pathRisk)
	}

	if !Matches(consent.GetInitiation(), request.GetInitiation()) {
		result.Add(codes.InitiationMismatch, "initiation does not match the consent", pathInitiation)
	}

	if executable {
		in := RuleInput[I, C]{Request: request, Consent: consent, Now: opts.Now, Usage: opts.Usage}
		for _, rule := range v.rules {
			rule(in, result)
		}
	}

	return result
}
