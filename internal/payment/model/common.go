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

// Package model defines the payment instruction, consent and submission wire types.
package model

import "encoding/json"

// Amount is a decimal amount in a currency. Amount is kept as the submitted string so no
// precision is lost before comparison.
type Amount struct {
	Amount   string `json:"Amount"`
	Currency string `json:"Currency"`
}

// CashAccount identifies a debtor or creditor account.
type CashAccount struct {
	SchemeName              string `json:"SchemeName"`
	Identification          string `json:"Identification"`
	Name                    string `json:"Name,omitempty"`
	SecondaryIdentification string `json:"SecondaryIdentification,omitempty"`
}

// RemittanceInformation is the payment reference shown to the payee.
type RemittanceInformation struct {
	Unstructured string `json:"Unstructured,omitempty"`
	Reference    string `json:"Reference,omitempty"`
}

// SubmissionData is the Data section of a payment submission.
type SubmissionData[I any] struct {
	ConsentID  string `json:"ConsentId"`
	Initiation I      `json:"Initiation"`
}

// SubmissionRequest is the body of a single payment submission for every product except VRP.
type SubmissionRequest[I any] struct {
	Data SubmissionData[I] `json:"Data"`
	Risk json.RawMessage   `json:"Risk"`
}

func (r *SubmissionRequest[I]) GetConsentID() string { return r.Data.ConsentID }
func (r *SubmissionRequest[I]) GetInitiation() I { return r.Data.Initiation }
func (r *SubmissionRequest[I]) GetRisk() json.RawMessage { return r.Risk }
