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

package redactor

import "github.com/wso2/ob-consent-enforcement/internal/accountdata/model"

// Permission names granted on account access consents.
const (
	ReadAccountsBasic           = "ReadAccountsBasic"
	ReadAccountsDetail          = "ReadAccountsDetail"
	ReadBalances                = "ReadBalances"
	ReadBeneficiariesBasic      = "ReadBeneficiariesBasic"
	ReadBeneficiariesDetail     = "ReadBeneficiariesDetail"
	ReadTransactionsBasic       = "ReadTransactionsBasic"
	ReadTransactionsDetail      = "ReadTransactionsDetail"
	ReadTransactionsCredits     = "ReadTransactionsCredits"
	ReadTransactionsDebits      = "ReadTransactionsDebits"
	ReadStandingOrdersBasic     = "ReadStandingOrdersBasic"
	ReadStandingOrdersDetail    = "ReadStandingOrdersDetail"
	ReadScheduledPaymentsBasic  = "ReadScheduledPaymentsBasic"
	ReadScheduledPaymentsDetail = "ReadScheduledPaymentsDetail"
	ReadStatementsBasic         = "ReadStatementsBasic"
	ReadStatementsDetail        = "ReadStatementsDetail"
	ReadPAN                     = "ReadPAN"
)

// Tier is the Basic/Detail permission pair of a resource class. Classes without a split have
// the same permission in both fields.
type Tier struct {
	Basic  string
	Detail string
}

var tiers = map[model.ResourceClass]Tier{
	model.ClassAccounts:          {ReadAccountsBasic, ReadAccountsDetail},
	model.ClassBalances:          {ReadBalances, ReadBalances},
	model.ClassTransactions:      {ReadTransactionsBasic, ReadTransactionsDetail},
	model.ClassBeneficiaries:     {ReadBeneficiariesBasic, ReadBeneficiariesDetail},
	model.ClassStandingOrders:    {ReadStandingOrdersBasic, ReadStandingOrdersDetail},
	model.ClassScheduledPayments: {ReadScheduledPaymentsBasic, ReadScheduledPaymentsDetail},
	model.ClassStatements:        {ReadStatementsBasic, ReadStatementsDetail},
}

// TierOf returns the permission pair governing class.
func TierOf(class model.ResourceClass) (Tier, bool) {
	t, ok := tiers[class]
	return t, ok
}

// PermissionSet is an unordered set of granted permissions.
type PermissionSet map[string]struct{}

// NewPermissionSet builds a set from a consent's permission list.
func NewPermissionSet(permissions ...string) PermissionSet {
	set := make(PermissionSet, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether p is granted.
func (s PermissionSet) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// CanRead reports whether either tier of class is granted.
func (s PermissionSet) CanRead(class model.ResourceClass) bool {
	t, ok := TierOf(class)
	if !ok {
		return false
	}
	return s.Has(t.Basic) || s.Has(t.Detail)
}
