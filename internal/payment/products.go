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
	"context"
	"encoding/json"
	"fmt"

	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/idempotency"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/validator"
)

// productBinding is a payment product as the service drives it, independent of its wire types.
type productBinding interface {
	Product() string
	Mode() idempotency.Mode
	Validate(ctx context.Context, s *paymentService, payload json.RawMessage, apiClientID string) (*validator.Result, error)
}

// usageFunc aggregates what was already paid in each current periodic limit window.
type usageFunc[C any] func(ctx context.Context, s *paymentService, consent *consentmodel.Consent, params *C) (validator.PeriodicUsage, error)

// checkFunc adds failures that need collaborators beyond the consent itself.
type checkFunc func(ctx context.Context, s *paymentService, consent *consentmodel.Consent, apiClientID string, result *validator.Result) error

type binding[I, C any] struct {
	validator *validator.ConsentRequestValidator[I, C]
	decode    func(payload json.RawMessage) (validator.PaymentRequest[I], error)
	mode      idempotency.Mode
	usage     usageFunc[C]
	check     checkFunc
}

func (b *binding[I, C]) Product() string { return b.validator.Product() }

func (b *binding[I, C]) Mode() idempotency.Mode { return b.mode }

// Validate decodes the submission, loads its consent and reconciles the two. Consent store
// failures are returned as errors; everything else is reported in the result.
func (b *binding[I, C]) Validate(ctx context.Context, s *paymentService, payload json.RawMessage,
	apiClientID string) (*validator.Result, error) {
	request, err := b.decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if request.GetConsentID() == "" {
		return nil, fmt.Errorf("%w: Data.ConsentId is required", ErrMalformedRequest)
	}

	consent, err := s.consents.GetConsent(ctx, request.GetConsentID(), apiClientID)
	if err != nil {
		return nil, err
	}
	if consent.Type != b.Product() {
		return nil, fmt.Errorf("%w: consent type is %s", ErrConsentTypeMismatch, consent.Type)
	}

	decoded, err := model.DecodeConsent[I, C](consent)
	if err != nil {
		return nil, err
	}

	opts := validator.Options{Now: s.now()}
	if b.usage != nil && decoded.GetControlParameters() != nil {
		if opts.Usage, err = b.usage(ctx, s, consent, decoded.GetControlParameters()); err != nil {
			return nil, err
		}
	}

	result := b.validator.Validate(request, decoded, opts)
	if b.check != nil {
		if err := b.check(ctx, s, consent, apiClientID, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func decodeSubmission[I any](payload json.RawMessage) (validator.PaymentRequest[I], error) {
	var request model.SubmissionRequest[I]
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func decodeVRPSubmission(payload json.RawMessage) (validator.PaymentRequest[model.VRPInitiation], error) {
	var request model.VRPSubmissionRequest
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// defaultBindings registers every supported product. Single payments are de-duplicated per
// consent; VRP consents allow many payments, one per idempotency key.
func defaultBindings() map[string]productBinding {
	bindings := []productBinding{
		&binding[model.DomesticInitiation, model.NoControlParameters]{
			validator: validator.NewDomesticPaymentValidator(),
			decode:    decodeSubmission[model.DomesticInitiation],
			mode:      idempotency.PerConsent,
		},
		&binding[model.DomesticScheduledInitiation, model.NoControlParameters]{
			validator: validator.NewDomesticScheduledPaymentValidator(),
			decode:    decodeSubmission[model.DomesticScheduledInitiation],
			mode:      idempotency.PerConsent,
		},
		&binding[model.DomesticStandingOrderInitiation, model.NoControlParameters]{
			validator: validator.NewDomesticStandingOrderValidator(),
			decode:    decodeSubmission[model.DomesticStandingOrderInitiation],
			mode:      idempotency.PerConsent,
		},
		&binding[model.InternationalInitiation, model.NoControlParameters]{
			validator: validator.NewInternationalPaymentValidator(),
			decode:    decodeSubmission[model.InternationalInitiation],
			mode:      idempotency.PerConsent,
		},
		&binding[model.FileInitiation, model.NoControlParameters]{
			validator: validator.NewFilePaymentValidator(),
			decode:    decodeSubmission[model.FileInitiation],
			mode:      idempotency.PerConsent,
			check:     requireUploadedFile,
		},
		&binding[model.VRPInitiation, model.VRPControlParameters]{
			validator: validator.NewDomesticVRPValidator(),
			decode:    decodeVRPSubmission,
			mode:      idempotency.PerIdempotencyKey,
			usage:     vrpPeriodicUsage,
		},
	}

	byProduct := make(map[string]productBinding, len(bindings))
	for _, b := range bindings {
		byProduct[b.Product()] = b
	}
	return byProduct
}
