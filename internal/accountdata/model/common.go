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

// Package model defines the account information resources returned to data-access clients.
package model

// ResourceClass groups records that share a Basic/Detail permission pair.
type ResourceClass string

// Resource classes.
const (
	ClassAccounts          ResourceClass = "accounts"
	ClassBalances          ResourceClass = "balances"
	ClassTransactions      ResourceClass = "transactions"
	ClassBeneficiaries     ResourceClass = "beneficiaries"
	ClassStandingOrders    ResourceClass = "standing-orders"
	ClassScheduledPayments ResourceClass = "scheduled-payments"
	ClassStatements        ResourceClass = "statements"
)

// SchemePAN marks a party account identified by a primary account number.
const SchemePAN = "UK.OBIE.PAN"

// Credit/debit indicators.
const (
	Credit = "Credit"
	Debit  = "Debit"
)

// Amount is a decimal string amount with its ISO 4217 currency.
type Amount struct {
	Amount   string `json:"Amount"`
	Currency string `json:"Currency"`
}

// CashAccount identifies a party account.
type CashAccount struct {
	SchemeName              string  `json:"SchemeName"`
	Identification          string  `json:"Identification"`
	Name                    *string `json:"Name,omitempty"`
	SecondaryIdentification *string `json:"SecondaryIdentification,omitempty"`
}

// IsPAN reports whether the account is identified by a card number.
func (a *CashAccount) IsPAN() bool {
	return a != nil && a.SchemeName == SchemePAN
}

// BranchAndFinancialInstitution identifies an account servicer or party agent.
type BranchAndFinancialInstitution struct {
	SchemeName     string `json:"SchemeName,omitempty"`
	Identification string `json:"Identification,omitempty"`
	Name           string `json:"Name,omitempty"`
}
