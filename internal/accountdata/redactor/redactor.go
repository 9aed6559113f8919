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

// Package redactor strips account information the consent's permissions do not release.
package redactor

import (
	"github.com/wso2/ob-consent-enforcement/internal/accountdata/model"
)

// DefaultPANMask replaces card numbers when ReadPAN is not granted.
const DefaultPANMask = "xxxx xxxx xxxx xxxx"

// Record is an account information resource the redactor can operate on.
type Record interface {
	Class() model.ResourceClass
	// PartyAccounts returns the accounts whose identification may carry a PAN. Entries may be nil.
	PartyAccounts() []*model.CashAccount
	// ClearDetail nulls the fields released only by the Detail tier.
	ClearDetail()
	// ClearInternalIDs blanks identifiers internal to the account servicer.
	ClearInternalIDs()
}

// Config holds the redaction switches.
type Config struct {
	ShowInternalIDs bool
	PANMask         string
}

// Redactor applies permission based redaction. It holds no mutable state.
type Redactor struct {
	showInternalIDs bool
	panMask         string
}

// New creates a Redactor. An empty mask falls back to DefaultPANMask.
func New(cfg Config) *Redactor {
	mask := cfg.PANMask
	if mask == "" {
		mask = DefaultPANMask
	}
	return &Redactor{showInternalIDs: cfg.ShowInternalIDs, panMask: mask}
}

// PANMask returns the token card numbers are replaced with.
func (r *Redactor) PANMask() string {
	return r.panMask
}

// Redact modifies record in place and returns it. Applying it twice with the same permissions
// gives the same result as applying it once.
func Redact[T Record](r *Redactor, record T, perms PermissionSet) T {
	if t, ok := TierOf(record.Class()); ok && t.Basic != t.Detail && !perms.Has(t.Detail) {
		record.ClearDetail()
	}

	if !perms.Has(ReadPAN) {
		for _, account := range record.PartyAccounts() {
			if account.IsPAN() {
				account.Identification = r.panMask
			}
		}
	}

	if !r.showInternalIDs {
		record.ClearInternalIDs()
	}
	return record
}

// RedactAll applies Redact to every record of records.
func RedactAll[T Record](r *Redactor, records []T, perms PermissionSet) []T {
	for i := range records {
		records[i] = Redact(r, records[i], perms)
	}
	return records
}

// FilterTransactions keeps the transactions whose direction is released by
// ReadTransactionsCredits and ReadTransactionsDebits.
func FilterTransactions(transactions []*model.Transaction, perms PermissionSet) []*model.Transaction {
	credits := perms.Has(ReadTransactionsCredits)
	debits := perms.Has(ReadTransactionsDebits)
	if credits && debits {
		return transactions
	}

	filtered := make([]*model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		switch {
		case credits && t.CreditDebitIndicator == model.Credit:
			filtered = append(filtered, t)
		case debits && t.CreditDebitIndicator == model.Debit:
			filtered = append(filtered, t)
		}
	}
	return filtered
}
