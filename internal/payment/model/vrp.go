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

package model

import "encoding/json"

// Period types of a VRP periodic limit.
const (
	PeriodTypeDay       = "Day"
	PeriodTypeWeek      = "Week"
	PeriodTypeFortnight = "Fortnight"
	PeriodTypeMonth     = "Month"
	PeriodTypeHalfYear  = "Half-year"
	PeriodTypeYear      = "Year"
)

// Period alignments of a VRP periodic limit.
const (
	PeriodAlignmentConsent  = "Consent"
	PeriodAlignmentCalendar = "Calendar"
)

// VRPInitiation is the initiation agreed in a domestic VRP consent. The creditor account is
// optional; when absent every instruction must name one.
type VRPInitiation struct {
	DebtorAccount         *CashAccount           `json:"DebtorAccount,omitempty"`
	CreditorAgent         json.RawMessage        `json:"CreditorAgent,omitempty"`
	CreditorAccount       *CashAccount           `json:"CreditorAccount,omitempty"`
	RemittanceInformation *RemittanceInformation `json:"RemittanceInformation,omitempty"`
}

// PeriodicLimit caps the total paid within one period.
type PeriodicLimit struct {
	Amount          string `json:"Amount"`
	Currency        string `json:"Currency"`
	PeriodType      string `json:"PeriodType"`
	PeriodAlignment string `json:"PeriodAlignment"`
}

// VRPControlParameters are the limits declared in a domestic VRP consent.
type VRPControlParameters struct {
	PSUAuthenticationMethods []string        `json:"PSUAuthenticationMethods,omitempty"`
	VRPType                  []string        `json:"VRPType,omitempty"`
	ValidFromDateTime        string          `json:"ValidFromDateTime,omitempty"`
	ValidToDateTime          string          `json:"ValidToDateTime,omitempty"`
	MaximumIndividualAmount  Amount          `json:"MaximumIndividualAmount"`
	PeriodicLimits           []PeriodicLimit `json:"PeriodicLimits,omitempty"`
	SupplementaryData        json.RawMessage `json:"SupplementaryData,omitempty"`
}

// VRPInstruction is the per payment part of a VRP submission.
type VRPInstruction struct {
	InstructionIdentification string                 `json:"InstructionIdentification"`
	EndToEndIdentification    string                 `json:"EndToEndIdentification"`
	RemittanceInformation     *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	LocalInstrument           string                 `json:"LocalInstrument,omitempty"`
	InstructedAmount          Amount                 `json:"InstructedAmount"`
	CreditorAgent             json.RawMessage        `json:"CreditorAgent,omitempty"`
	CreditorAccount           *CashAccount           `json:"CreditorAccount,omitempty"`
	SupplementaryData         json.RawMessage        `json:"SupplementaryData,omitempty"`
}

// VRPSubmissionData is the Data section of a VRP submission.
type VRPSubmissionData struct {
	ConsentID               string         `json:"ConsentId"`
	PSUAuthenticationMethod string         `json:"PSUAuthenticationMethod,omitempty"`
	Initiation              VRPInitiation  `json:"Initiation"`
	Instruction             VRPInstruction `json:"Instruction"`
}

// VRPSubmissionRequest is the body of a domestic VRP submission.
type VRPSubmissionRequest struct {
	Data VRPSubmissionData `json:"Data"`
	Risk json.RawMessage   `json:"Risk"`
}

func (r *VRPSubmissionRequest) GetConsentID() string { return r.Data.ConsentID }
func (r *VRPSubmissionRequest) GetInitiation() VRPInitiation { return r.Data.Initiation }
func (r *VRPSubmissionRequest) GetRisk() json.RawMessage { return r.Risk }
func (r *VRPSubmissionRequest) GetInstruction() VRPInstruction { return r.Data.Instruction }
