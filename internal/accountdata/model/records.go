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

// Account is an account the consent grants access to.
type Account struct {
	AccountID      string                         `json:"AccountId"`
	Status         string                         `json:"Status,omitempty"`
	Currency       string                         `json:"Currency"`
	AccountType    string                         `json:"AccountType"`
	AccountSubType string                         `json:"AccountSubType"`
	Nickname       string                         `json:"Nickname,omitempty"`
	Account        []*CashAccount                 `json:"Account,omitempty"`
	Servicer       *BranchAndFinancialInstitution `json:"Servicer,omitempty"`
}

func (a *Account) Class() ResourceClass { return ClassAccounts }

func (a *Account) PartyAccounts() []*CashAccount { return a.Account }

func (a *Account) ClearDetail() {
	a.Account = nil
	a.Servicer = nil
}

func (a *Account) ClearInternalIDs() {}

// Balance is one balance of an account. Balances have no Basic/Detail split.
type Balance struct {
	AccountID            string `json:"AccountId"`
	CreditDebitIndicator string `json:"CreditDebitIndicator"`
	Type                 string `json:"Type"`
	DateTime             string `json:"DateTime"`
	Amount               Amount `json:"Amount"`
}

func (b *Balance) Class() ResourceClass { return ClassBalances }

func (b *Balance) PartyAccounts() []*CashAccount { return nil }

func (b *Balance) ClearDetail() {}

func (b *Balance) ClearInternalIDs() {}

// TransactionBalance is the running balance after a transaction.
type TransactionBalance struct {
	CreditDebitIndicator string `json:"CreditDebitIndicator"`
	Type                 string `json:"Type"`
	Amount               Amount `json:"Amount"`
}

// MerchantDetails describes the merchant of a card transaction.
type MerchantDetails struct {
	MerchantName         string `json:"MerchantName,omitempty"`
	MerchantCategoryCode string `json:"MerchantCategoryCode,omitempty"`
}

// Transaction is a booked or pending account entry.
type Transaction struct {
	AccountID              string                         `json:"AccountId"`
	TransactionID          string                         `json:"TransactionId,omitempty"`
	TransactionReference   string                         `json:"TransactionReference,omitempty"`
	CreditDebitIndicator   string                         `json:"CreditDebitIndicator"`
	Status                 string                         `json:"Status"`
	BookingDateTime        string                         `json:"BookingDateTime"`
	ValueDateTime          string                         `json:"ValueDateTime,omitempty"`
	Amount                 Amount                         `json:"Amount"`
	TransactionInformation *string                        `json:"TransactionInformation,omitempty"`
	Balance                *TransactionBalance            `json:"Balance,omitempty"`
	MerchantDetails        *MerchantDetails               `json:"MerchantDetails,omitempty"`
	CreditorAgent          *BranchAndFinancialInstitution `json:"CreditorAgent,omitempty"`
	CreditorAccount        *CashAccount                   `json:"CreditorAccount,omitempty"`
	DebtorAgent            *BranchAndFinancialInstitution `json:"DebtorAgent,omitempty"`
	DebtorAccount          *CashAccount                   `json:"DebtorAccount,omitempty"`
}

func (t *Transaction) Class() ResourceClass { return ClassTransactions }

func (t *Transaction) PartyAccounts() []*CashAccount {
	return []*CashAccount{t.CreditorAccount, t.DebtorAccount}
}

func (t *Transaction) ClearDetail() {
	t.TransactionInformation = nil
	t.Balance = nil
	t.MerchantDetails = nil
	t.CreditorAgent = nil
	t.CreditorAccount = nil
	t.DebtorAgent = nil
	t.DebtorAccount = nil
}

func (t *Transaction) ClearInternalIDs() { t.TransactionID = "" }

// Beneficiary is a trusted payee of an account.
type Beneficiary struct {
	AccountID         string                         `json:"AccountId"`
	BeneficiaryID     string                         `json:"BeneficiaryId,omitempty"`
	Reference         string                         `json:"Reference,omitempty"`
	CreditorAgent     *BranchAndFinancialInstitution `json:"CreditorAgent,omitempty"`
	CreditorAccount   *CashAccount                   `json:"CreditorAccount,omitempty"`
	SupplementaryData map[string]interface{}         `json:"SupplementaryData,omitempty"`
}

func (b *Beneficiary) Class() ResourceClass { return ClassBeneficiaries }

func (b *Beneficiary) PartyAccounts() []*CashAccount { return []*CashAccount{b.CreditorAccount} }

func (b *Beneficiary) ClearDetail() {
	b.CreditorAgent = nil
	b.CreditorAccount = nil
	b.SupplementaryData = nil
}

func (b *Beneficiary) ClearInternalIDs() {}

// StandingOrder is a recurring payment instruction set up on an account.
type StandingOrder struct {
	AccountID            string                         `json:"AccountId"`
	StandingOrderID      string                         `json:"StandingOrderId,omitempty"`
	Frequency            string                         `json:"Frequency"`
	Reference            string                         `json:"Reference,omitempty"`
	FirstPaymentDateTime string                         `json:"FirstPaymentDateTime,omitempty"`
	NextPaymentDateTime  string                         `json:"NextPaymentDateTime,omitempty"`
	FinalPaymentDateTime string                         `json:"FinalPaymentDateTime,omitempty"`
	StandingOrderStatus  string                         `json:"StandingOrderStatusCode,omitempty"`
	FirstPaymentAmount   *Amount                        `json:"FirstPaymentAmount,omitempty"`
	NextPaymentAmount    *Amount                        `json:"NextPaymentAmount,omitempty"`
	FinalPaymentAmount   *Amount                        `json:"FinalPaymentAmount,omitempty"`
	CreditorAgent        *BranchAndFinancialInstitution `json:"CreditorAgent,omitempty"`
	CreditorAccount      *CashAccount                   `json:"CreditorAccount,omitempty"`
	SupplementaryData    map[string]interface{}         `json:"SupplementaryData,omitempty"`
}

func (s *StandingOrder) Class() ResourceClass { return ClassStandingOrders }

func (s *StandingOrder) PartyAccounts() []*CashAccount { return []*CashAccount{s.CreditorAccount} }

func (s *StandingOrder) ClearDetail() {
	s.CreditorAgent = nil
	s.CreditorAccount = nil
	s.SupplementaryData = nil
}

func (s *StandingOrder) ClearInternalIDs() {}

// ScheduledPayment is a single future-dated payment set up on an account.
type ScheduledPayment struct {
	AccountID                string                         `json:"AccountId"`
	ScheduledPaymentID       string                         `json:"ScheduledPaymentId,omitempty"`
	ScheduledPaymentDateTime string                         `json:"ScheduledPaymentDateTime"`
	ScheduledType            string                         `json:"ScheduledType"`
	Reference                string                         `json:"Reference,omitempty"`
	InstructedAmount         Amount                         `json:"InstructedAmount"`
	CreditorAgent            *BranchAndFinancialInstitution `json:"CreditorAgent,omitempty"`
	CreditorAccount          *CashAccount                   `json:"CreditorAccount,omitempty"`
}

func (s *ScheduledPayment) Class() ResourceClass { return ClassScheduledPayments }

func (s *ScheduledPayment) PartyAccounts() []*CashAccount {
	return []*CashAccount{s.CreditorAccount}
}

func (s *ScheduledPayment) ClearDetail() {
	s.CreditorAgent = nil
	s.CreditorAccount = nil
}

func (s *ScheduledPayment) ClearInternalIDs() {}

// StatementAmount is one amount line of a statement.
type StatementAmount struct {
	CreditDebitIndicator string `json:"CreditDebitIndicator"`
	Type                 string `json:"Type"`
	Amount               Amount `json:"Amount"`
}

// Statement is a periodic account statement.
type Statement struct {
	AccountID            string             `json:"AccountId"`
	StatementID          string             `json:"StatementId,omitempty"`
	StatementReference   string             `json:"StatementReference,omitempty"`
	Type                 string             `json:"Type"`
	StartDateTime        string             `json:"StartDateTime"`
	EndDateTime          string             `json:"EndDateTime"`
	CreationDateTime     string             `json:"CreationDateTime"`
	StatementDescription []string           `json:"StatementDescription,omitempty"`
	StatementAmount      []*StatementAmount `json:"StatementAmount,omitempty"`
	StatementBenefit     []*StatementAmount `json:"StatementBenefit,omitempty"`
	StatementFee         []*StatementAmount `json:"StatementFee,omitempty"`
	StatementInterest    []*StatementAmount `json:"StatementInterest,omitempty"`
}

func (s *Statement) Class() ResourceClass { return ClassStatements }

func (s *Statement) PartyAccounts() []*CashAccount { return nil }

func (s *Statement) ClearDetail() {
	s.StatementDescription = nil
	s.StatementAmount = nil
	s.StatementBenefit = nil
	s.StatementFee = nil
	s.StatementInterest = nil
}

func (s *Statement) ClearInternalIDs() { s.StatementID = "" }
