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

// DomesticInitiation is the initiation of a domestic payment.
type DomesticInitiation struct {
	InstructionIdentification string                 `json:"InstructionIdentification"`
	EndToEndIdentification    string                 `json:"EndToEndIdentification"`
	LocalInstrument           string                 `json:"LocalInstrument,omitempty"`
	InstructedAmount          Amount                 `json:"InstructedAmount"`
	DebtorAccount             *CashAccount           `json:"DebtorAccount,omitempty"`
	CreditorAccount           CashAccount            `json:"CreditorAccount"`
	CreditorPostalAddress     json.RawMessage        `json:"CreditorPostalAddress,omitempty"`
	RemittanceInformation     *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	SupplementaryData         json.RawMessage        `json:"SupplementaryData,omitempty"`
}

// DomesticScheduledInitiation is the initiation of a future dated domestic payment.
type DomesticScheduledInitiation struct {
	InstructionIdentification  string                 `json:"InstructionIdentification"`
	EndToEndIdentification     string                 `json:"EndToEndIdentification,omitempty"`
	LocalInstrument            string                 `json:"LocalInstrument,omitempty"`
	RequestedExecutionDateTime string                 `json:"RequestedExecutionDateTime"`
	InstructedAmount           Amount                 `json:"InstructedAmount"`
	DebtorAccount              *CashAccount           `json:"DebtorAccount,omitempty"`
	CreditorAccount            CashAccount            `json:"CreditorAccount"`
	RemittanceInformation      *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	SupplementaryData          json.RawMessage        `json:"SupplementaryData,omitempty"`
}

// DomesticStandingOrderInitiation is the initiation of a recurring domestic payment.
type DomesticStandingOrderInitiation struct {
	Frequency              string          `json:"Frequency"`
	Reference              string          `json:"Reference,omitempty"`
	NumberOfPayments       string          `json:"NumberOfPayments,omitempty"`
	FirstPaymentDateTime   string          `json:"FirstPaymentDateTime"`
	RecurringPaymentAmount *Amount         `json:"RecurringPaymentAmount,omitempty"`
	FinalPaymentDateTime   string          `json:"FinalPaymentDateTime,omitempty"`
	FirstPaymentAmount     Amount          `json:"FirstPaymentAmount"`
	FinalPaymentAmount     *Amount         `json:"FinalPaymentAmount,omitempty"`
	DebtorAccount          *CashAccount    `json:"DebtorAccount,omitempty"`
	CreditorAccount        CashAccount     `json:"CreditorAccount"`
	SupplementaryData      json.RawMessage `json:"SupplementaryData,omitempty"`
}

// InternationalInitiation is the initiation of a cross border payment.
type InternationalInitiation struct {
	InstructionIdentification string                 `json:"InstructionIdentification"`
	EndToEndIdentification    string                 `json:"EndToEndIdentification"`
	InstructionPriority       string                 `json:"InstructionPriority,omitempty"`
	ChargeBearer              string                 `json:"ChargeBearer,omitempty"`
	CurrencyOfTransfer        string                 `json:"CurrencyOfTransfer"`
	DestinationCountryCode    string                 `json:"DestinationCountryCode,omitempty"`
	InstructedAmount          Amount                 `json:"InstructedAmount"`
	ExchangeRateInformation   json.RawMessage        `json:"ExchangeRateInformation,omitempty"`
	DebtorAccount             *CashAccount           `json:"DebtorAccount,omitempty"`
	Creditor                  json.RawMessage        `json:"Creditor,omitempty"`
	CreditorAgent             json.RawMessage        `json:"CreditorAgent,omitempty"`
	CreditorAccount           CashAccount            `json:"CreditorAccount"`
	RemittanceInformation     *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	SupplementaryData         json.RawMessage        `json:"SupplementaryData,omitempty"`
}

// FileInitiation is the initiation of a bulk file payment.
type FileInitiation struct {
	FileType                   string                 `json:"FileType"`
	FileHash                   string                 `json:"FileHash"`
	FileReference              string                 `json:"FileReference,omitempty"`
	NumberOfTransactions       string                 `json:"NumberOfTransactions,omitempty"`
	ControlSum                 string                 `json:"ControlSum,omitempty"`
	RequestedExecutionDateTime string                 `json:"RequestedExecutionDateTime,omitempty"`
	LocalInstrument            string                 `json:"LocalInstrument,omitempty"`
	DebtorAccount              *CashAccount           `json:"DebtorAccount,omitempty"`
	RemittanceInformation      *RemittanceInformation `json:"RemittanceInformation,omitempty"`
	SupplementaryData          json.RawMessage        `json:"SupplementaryData,omitempty"`
}

// NoControlParameters is the control parameter type of products whose consent declares none.
type NoControlParameters struct{}
