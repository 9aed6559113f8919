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

package codes

// Field-level validation codes reported inside a validation result.
const (
	// Consent state
	ConsentStateInvalid = "UK.OBIE.Resource.InvalidConsentStatus"
	ConsentExpired      = "UK.OBIE.Resource.ConsentExpired"

	// Consent reconciliation
	RiskMismatch       = "UK.OBIE.Resource.ConsentMismatch.Risk"
	InitiationMismatch = "UK.OBIE.Resource.ConsentMismatch.Initiation"

	// Control parameters
	InstructedAmountExceedsMaximum = "UK.OBIE.Rules.FailsControlParameters.MaximumIndividualAmount"
	CurrencyMismatch               = "UK.OBIE.Rules.FailsControlParameters.Currency"
	PeriodicLimitBreached          = "UK.OBIE.Rules.FailsControlParameters.PeriodicLimit"
	ControlParametersNotValid      = "UK.OBIE.Rules.FailsControlParameters.ValidityWindow"
	InvalidAmount                  = "UK.OBIE.Field.InvalidAmount"
	InvalidCurrency                = "UK.OBIE.Unsupported.Currency"

	// Creditor account
	CreditorAccountRequired = "UK.OBIE.Field.Missing.CreditorAccount"
	CreditorAccountMismatch = "UK.OBIE.Resource.ConsentMismatch.CreditorAccount"

	// Bulk files
	FileHashMismatch             = "UK.OBIE.Resource.FileHashMismatch"
	FileTransactionCountMismatch = "UK.OBIE.Resource.FileNumberOfTransactionsMismatch"
	FileControlSumMismatch       = "UK.OBIE.Resource.FileControlSumMismatch"
	FileParseFailed              = "UK.OBIE.Field.InvalidFile"
	UnsupportedFileType          = "UK.OBIE.Unsupported.FileType"

	// Request shape
	FieldMissing = "UK.OBIE.Field.Missing"
	FieldInvalid = "UK.OBIE.Field.Invalid"
)
