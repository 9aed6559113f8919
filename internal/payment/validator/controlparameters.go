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
	"math/big"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/wso2/ob-consent-enforcement/internal/payment/fileparser"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
)

const (
	pathInstructedAmount     = "Data.Instruction.InstructedAmount.Amount"
	pathInstructedCurrency   = "Data.Instruction.InstructedAmount.Currency"
	pathMaximumIndividual    = "ControlParameters.MaximumIndividualAmount.Amount"
	pathMaximumIndividualCcy = "ControlParameters.MaximumIndividualAmount.Currency"
	pathPeriodicLimits       = "ControlParameters.PeriodicLimits"
	pathValidityWindow       = "ControlParameters.ValidFromDateTime, ControlParameters.ValidToDateTime"
)

// PeriodKey identifies one periodic limit window.
type PeriodKey struct {
	PeriodType      string
	PeriodAlignment string
}

// PeriodicUsage is the amount already paid in the current window of each periodic limit.
// Missing keys mean nothing was paid yet.
type PeriodicUsage map[PeriodKey]*big.Rat

// ValidateAmount checks an instructed amount against the maximum individual amount of a consent.
// Both the amount and the currency rule are always evaluated.
func ValidateAmount(instructed, maximumIndividual model.Amount) *Result {
	result := NewResult()

	instructedValue, instructedOK := fileparser.ParseDecimal(instructed.Amount)
	if !instructedOK {
		result.Add(codes.InvalidAmount,
			fmt.Sprintf("instructed amount %q is not a valid decimal", instructed.Amount), pathInstructedAmount)
	}
	maxValue, maxOK := fileparser.ParseDecimal(maximumIndividual.Amount)
	if !maxOK {
		result.Add(codes.InvalidAmount,
			fmt.Sprintf("maximum individual amount %q is not a valid decimal", maximumIndividual.Amount), pathMaximumIndividual)
	}

	if instructedOK && maxOK && instructedValue.Cmp(maxValue) > 0 {
		result.Add(codes.InstructedAmountExceedsMaximum,
			fmt.Sprintf("instructed amount %s exceeds maximum individual amount %s",
				instructed.Amount, maximumIndividual.Amount),
			pathInstructedAmount, pathMaximumIndividual)
	}

	if instructed.Currency != maximumIndividual.Currency {
		result.Add(codes.CurrencyMismatch,
			fmt.Sprintf("currency %s of the instructed amount does not match control parameter currency %s",
				instructed.Currency, maximumIndividual.Currency),
			pathInstructedCurrency, pathMaximumIndividualCcy)
	}

	return result
}

// ValidatePeriodicLimits checks that the instructed amount fits in every periodic limit given the
// amount already paid in each current window.
func ValidatePeriodicLimits(instructed model.Amount, limits []model.PeriodicLimit, usage PeriodicUsage) *Result {
	result := NewResult()

	instructedValue, ok := fileparser.ParseDecimal(instructed.Amount)
	if !ok {
		result.Add(codes.InvalidAmount,
			fmt.Sprintf("instructed amount %q is not a valid decimal", instructed.Amount), pathInstructedAmount)
		return result
	}

	for i, limit := range limits {
		path := fmt.Sprintf("%s[%d]", pathPeriodicLimits, i)

		if instructed.Currency != limit.Currency {
			result.Add(codes.CurrencyMismatch,
				fmt.Sprintf("currency %s of the instructed amount does not match periodic limit currency %s",
					instructed.Currency, limit.Currency),
				pathInstructedCurrency, path+".Currency")
			continue
		}

		limitValue, ok := fileparser.ParseDecimal(limit.Amount)
		if !ok {
			result.Add(codes.InvalidAmount,
				fmt.Sprintf("periodic limit amount %q is not a valid decimal", limit.Amount), path+".Amount")
			continue
		}

		total := new(big.Rat).Set(instructedValue)
		if used := usage[PeriodKey{PeriodType: limit.PeriodType, PeriodAlignment: limit.PeriodAlignment}]; used != nil {
			total.Add(total, used)
		}

		if total.Cmp(limitValue) > 0 {
			result.Add(codes.PeriodicLimitBreached,
				fmt.Sprintf("instructed amount %s %s breaches the %s periodic limit of %s %s aligned to %s",
					instructed.Amount, instructed.Currency, limit.PeriodType, limit.Amount, limit.Currency,
					limit.PeriodAlignment),
				pathInstructedAmount, path)
		}
	}

	return result
}

// ValidateValidityWindow checks that now lies within the optional VRP validity window. Bounds are
// RFC 3339 timestamps; an empty bound is open.
func ValidateValidityWindow(now time.Time, validFrom, validTo string) *Result {
	result := NewResult()

	if validFrom != "" {
		from, err := time.Parse(time.RFC3339, validFrom)
		if err != nil {
			result.Add(codes.ControlParametersNotValid,
				fmt.Sprintf("ValidFromDateTime %q is not a valid timestamp", validFrom), pathValidityWindow)
			return result
		}
		if now.Before(from) {
			result.Add(codes.ControlParametersNotValid,
				fmt.Sprintf("payment is not permitted before %s", validFrom), pathValidityWindow)
		}
	}

	if validTo != "" {
		to, err := time.Parse(time.RFC3339, validTo)
		if err != nil {
			result.Add(codes.ControlParametersNotValid,
				fmt.Sprintf("ValidToDateTime %q is not a valid timestamp", validTo), pathValidityWindow)
			return result
		}
		if now.After(to) {
			result.Add(codes.ControlParametersNotValid,
				fmt.Sprintf("payment is not permitted after %s", validTo), pathValidityWindow)
		}
	}

	return result
}

// ValidateCurrencyCode checks that code is an upper case ISO 4217 currency code.
func ValidateCurrencyCode(code, fieldPath string) *Result {
	result := NewResult()
	if code != strings.ToUpper(code) {
		result.Add(codes.InvalidCurrency, fmt.Sprintf("currency code %q must be upper case", code), fieldPath)
		return result
	}
	if _, err := currency.ParseISO(code); err != nil {
		result.Add(codes.InvalidCurrency, fmt.Sprintf("currency code %q is not an ISO 4217 code", code), fieldPath)
	}
	return result
}
