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
	"fmt"
	"time"

	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
)

const pathInstructionCreditorAccount = "Data.Instruction.CreditorAccount"

// NewDomesticPaymentValidator validates domestic payment submissions.
func NewDomesticPaymentValidator() *ConsentRequestValidator[model.DomesticInitiation, model.NoControlParameters] {
	return NewConsentRequestValidator[model.DomesticInitiation, model.NoControlParameters](consentmodel.TypeDomesticPayment,
		func(in RuleInput[model.DomesticInitiation, model.NoControlParameters], result *Result) {
			result.Merge(ValidateCurrencyCode(in.Request.GetInitiation().InstructedAmount.Currency,
				"Data.Initiation.InstructedAmount.Currency"))
		})
}

// NewDomesticScheduledPaymentValidator validates domestic scheduled payment submissions.
func NewDomesticScheduledPaymentValidator() *ConsentRequestValidator[model.DomesticScheduledInitiation, model.NoControlParameters] {
	return NewConsentRequestValidator[model.DomesticScheduledInitiation, model.NoControlParameters](consentmodel.TypeDomesticScheduledPayment,
		func(in RuleInput[model.DomesticScheduledInitiation, model.NoControlParameters], result *Result) {
			initiation := in.Request.GetInitiation()
			result.Merge(ValidateCurrencyCode(initiation.InstructedAmount.Currency,
				"Data.Initiation.InstructedAmount.Currency"))
			result.Merge(validateFutureDateTime(initiation.RequestedExecutionDateTime, in.Now,
				"Data.Initiation.RequestedExecutionDateTime"))
		})
}

// NewDomesticStandingOrderValidator validates domestic standing order submissions.
func NewDomesticStandingOrderValidator() *ConsentRequestValidator[model.DomesticStandingOrderInitiation, model.NoControlParameters] {
	return NewConsentRequestValidator[model.DomesticStandingOrderInitiation, model.NoControlParameters](consentmodel.TypeDomesticStandingOrder,
		func(in RuleInput[model.DomesticStandingOrderInitiation, model.NoControlParameters], result *Result) {
			initiation := in.Request.GetInitiation()
			result.Merge(ValidateCurrencyCode(initiation.FirstPaymentAmount.Currency,
				"Data.Initiation.FirstPaymentAmount.Currency"))
			if initiation.RecurringPaymentAmount != nil {
				result.Merge(ValidateCurrencyCode(initiation.RecurringPaymentAmount.Currency,
					"Data.Initiation.RecurringPaymentAmount.Currency"))
			}
			if initiation.FinalPaymentAmount != nil {
				result.Merge(ValidateCurrencyCode(initiation.FinalPaymentAmount.Currency,
					"Data.Initiation.FinalPaymentAmount.Currency"))
			}
		})
}

// NewInternationalPaymentValidator validates international payment submissions.
func NewInternationalPaymentValidator() *ConsentRequestValidator[model.InternationalInitiation, model.NoControlParameters] {
	return NewConsentRequestValidator[model.InternationalInitiation, model.NoControlParameters](consentmodel.TypeInternationalPayment,
		func(in RuleInput[model.InternationalInitiation, model.NoControlParameters], result *Result) {
			initiation := in.Request.GetInitiation()
			result.Merge(ValidateCurrencyCode(initiation.InstructedAmount.Currency,
				"Data.Initiation.InstructedAmount.Currency"))
			result.Merge(ValidateCurrencyCode(initiation.CurrencyOfTransfer, "Data.Initiation.CurrencyOfTransfer"))
		})
}

// NewFilePaymentValidator validates file payment submissions. The file itself is checked when it
// is uploaded.
func NewFilePaymentValidator() *ConsentRequestValidator[model.FileInitiation, model.NoControlParameters] {
	return NewConsentRequestValidator[model.FileInitiation, model.NoControlParameters](consentmodel.TypeFilePayment,
		func(in RuleInput[model.FileInitiation, model.NoControlParameters], result *Result) {
			if in.Consent.GetFileMetadata() == nil {
				result.Add(codes.FieldMissing, "consent declares no file metadata", "Data.Initiation.FileHash")
			}
		})
}

// NewDomesticVRPValidator validates domestic variable recurring payment submissions.
func NewDomesticVRPValidator() *ConsentRequestValidator[model.VRPInitiation, model.VRPControlParameters] {
	return NewConsentRequestValidator[model.VRPInitiation, model.VRPControlParameters](consentmodel.TypeDomesticVRP,
		vrpCreditorAccountRule,
		vrpControlParameterRule)
}

type instructionCarrier interface {
	GetInstruction() model.VRPInstruction
}

func vrpInstruction(request PaymentRequest[model.VRPInitiation]) (model.VRPInstruction, bool) {
	carrier, ok := request.(instructionCarrier)
	if !ok {
		return model.VRPInstruction{}, false
	}
	return carrier.GetInstruction(), true
}

// vrpCreditorAccountRule requires a creditor account on the instruction when the consent leaves
// it open, and the same account when the consent names one.
func vrpCreditorAccountRule(in RuleInput[model.VRPInitiation, model.VRPControlParameters], result *Result) {
	instruction, ok := vrpInstruction(in.Request)
	if !ok {
		result.Add(codes.FieldMissing, "instruction is missing", "Data.Instruction")
		return
	}

	consentCreditor := in.Consent.GetInitiation().CreditorAccount
	switch {
	case consentCreditor == nil && instruction.CreditorAccount == nil:
		result.Add(codes.CreditorAccountRequired,
			"creditor account is required when the consent does not specify one", pathInstructionCreditorAccount)
	case consentCreditor != nil && (instruction.CreditorAccount == nil || !Matches(consentCreditor, instruction.CreditorAccount)):
		result.Add(codes.CreditorAccountMismatch,
			"creditor account does not match the consent", pathInstructionCreditorAccount)
	}
}

func vrpControlParameterRule(in RuleInput[model.VRPInitiation, model.VRPControlParameters], result *Result) {
	instruction, ok := vrpInstruction(in.Request)
	if !ok {
		return
	}

	params := in.Consent.GetControlParameters()
	if params == nil {
		result.Add(codes.ControlParametersNotValid, "consent declares no control parameters", "ControlParameters")
		return
	}

	result.Merge(ValidateCurrencyCode(instruction.InstructedAmount.Currency, pathInstructedCurrency))
	result.Merge(ValidateValidityWindow(in.Now, params.ValidFromDateTime, params.ValidToDateTime))
	result.Merge(ValidateAmount(instruction.InstructedAmount, params.MaximumIndividualAmount))
	if len(params.PeriodicLimits) > 0 {
		result.Merge(ValidatePeriodicLimits(instruction.InstructedAmount, params.PeriodicLimits, in.Usage))
	}
}

func validateFutureDateTime(value string, now time.Time, fieldPath string) *Result {
	result := NewResult()
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		result.Add(codes.FieldInvalid, fmt.Sprintf("%q is not a valid timestamp", value), fieldPath)
		return result
	}
	if !t.After(now) {
		result.Add(codes.FieldInvalid, "execution date time must be in the future", fieldPath)
	}
	return result
}
