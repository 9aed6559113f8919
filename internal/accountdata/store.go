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

package accountdata

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

// MappingStatusActive marks an account the user approved for a consent.
const MappingStatusActive = "active"

// DBQuery objects for account data operations
var (
	QueryListConsentAccounts = dbmodel.DBQuery{
		ID: "LIST_CONSENT_ACCOUNTS",
		Query: "SELECT ACCOUNT_ID FROM OB_CONSENT_ACCOUNT_MAPPING " +
			"WHERE CONSENT_ID = ? AND MAPPING_STATUS = ? ORDER BY ACCOUNT_ID",
	}

	QueryListAccountResources = dbmodel.DBQuery{
		ID: "LIST_ACCOUNT_RESOURCES",
		Query: "SELECT RESOURCE_ID, ACCOUNT_ID, RESOURCE_TYPE, DOCUMENT, UPDATED_TIME FROM OB_ACCOUNT_RESOURCE " +
			"WHERE RESOURCE_TYPE = ? AND ACCOUNT_ID IN (?) ORDER BY ACCOUNT_ID, RESOURCE_ID",
	}
)

// accountDataStore reads account resources and the accounts a consent was authorised for
type accountDataStore interface {
	ListConsentAccounts(ctx context.Context, consentID string) ([]string, error)
	ListResources(ctx context.Context, class model.ResourceClass, accountIDs []string) ([]model.AccountResource, error)
}

type store struct {
	db *database.DB
}

func newAccountDataStore(db *database.DB) accountDataStore {
	return &store{db: db}
}

// ListConsentAccounts returns the account IDs approved for the consent
func (s *store) ListConsentAccounts(ctx context.Context, consentID string) ([]string, error) {
	var accountIDs []string
	if err := s.db.SelectContext(ctx, &accountIDs, QueryListConsentAccounts.GetQuery(), consentID, MappingStatusActive); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", QueryListConsentAccounts.GetID(), err)
	}
	return accountIDs, nil
}

// ListResources returns the documents of class held by any of accountIDs
func (s *store) ListResources(ctx context.Context, class model.ResourceClass, accountIDs []string) ([]model.AccountResource, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(QueryListAccountResources.GetQuery(), string(class), accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", QueryListAccountResources.GetID(), err)
	}

	var resources []model.AccountResource
	if err := s.db.SelectContext(ctx, &resources, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", QueryListAccountResources.GetID(), err)
	}
	return resources, nil
}
