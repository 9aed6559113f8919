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
	"encoding/json"
	"slices"
	"time"

	"github.com/wso2/ob-consent-enforcement/internal/accountdata/model"
	"github.com/wso2/ob-consent-enforcement/internal/accountdata/redactor"
	"github.com/wso2/ob-consent-enforcement/internal/consent"
	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
	"github.com/wso2/ob-consent-enforcement/internal/system/metrics"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

// AccountDataService serves account information through the permission redactor.
// accountID may be empty to read across every account linked to the consent.
type AccountDataService interface {
	GetAccounts(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Account, *serviceerror.ServiceError)
	GetBalances(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Balance, *serviceerror.ServiceError)
	GetTransactions(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Transaction, *serviceerror.ServiceError)
	GetBeneficiaries(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Beneficiary, *serviceerror.ServiceError)
	GetStandingOrders(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.StandingOrder, *serviceerror.ServiceError)
	GetScheduledPayments(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.ScheduledPayment, *serviceerror.ServiceError)
	GetStatements(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Statement, *serviceerror.ServiceError)
}

type accountDataService struct {
	store    accountDataStore
	consents consent.ConsentService
	redactor *redactor.Redactor
	now      func() time.Time
	logger   *log.Logger
	metrics  *metrics.Metrics
}

func newAccountDataService(store accountDataStore, consents consent.ConsentService, r *redactor.Redactor) AccountDataService {
	return &accountDataService{
		store:    store,
		consents: consents,
		redactor: r,
		now:      time.Now,
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AccountDataService")),
		metrics:  metrics.Get(),
	}
}

func (s *accountDataService) GetAccounts(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Account, *serviceerror.ServiceError) {
	return readResources[*model.Account](ctx, s, consentID, apiClientID, accountID, model.ClassAccounts)
}

func (s *accountDataService) GetBalances(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Balance, *serviceerror.ServiceError) {
	return readResources[*model.Balance](ctx, s, consentID, apiClientID, accountID, model.ClassBalances)
}

// GetTransactions also drops the entries whose direction the consent does not release.
func (s *accountDataService) GetTransactions(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Transaction, *serviceerror.ServiceError) {
	perms, svcErr := s.authorize(ctx, consentID, apiClientID, model.ClassTransactions)
	if svcErr != nil {
		return nil, svcErr
	}
	transactions, svcErr := load[*model.Transaction](ctx, s, consentID, accountID, model.ClassTransactions)
	if svcErr != nil {
		return nil, svcErr
	}
	transactions = redactor.FilterTransactions(transactions, perms)
	return redactAndCount(s, transactions, perms), nil
}

func (s *accountDataService) GetBeneficiaries(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Beneficiary, *serviceerror.ServiceError) {
	return readResources[*model.Beneficiary](ctx, s, consentID, apiClientID, accountID, model.ClassBeneficiaries)
}

func (s *accountDataService) GetStandingOrders(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.StandingOrder, *serviceerror.ServiceError) {
	return readResources[*model.StandingOrder](ctx, s, consentID, apiClientID, accountID, model.ClassStandingOrders)
}

func (s *accountDataService) GetScheduledPayments(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.ScheduledPayment, *serviceerror.ServiceError) {
	return readResources[*model.ScheduledPayment](ctx, s, consentID, apiClientID, accountID, model.ClassScheduledPayments)
}

func (s *accountDataService) GetStatements(ctx context.Context, consentID, apiClientID, accountID string) ([]*model.Statement, *serviceerror.ServiceError) {
	return readResources[*model.Statement](ctx, s, consentID, apiClientID, accountID, model.ClassStatements)
}

func readResources[T redactor.Record](ctx context.Context, s *accountDataService, consentID, apiClientID, accountID string,
	class model.ResourceClass) ([]T, *serviceerror.ServiceError) {
	perms, svcErr := s.authorize(ctx, consentID, apiClientID, class)
	if svcErr != nil {
		return nil, svcErr
	}
	records, svcErr := load[T](ctx, s, consentID, accountID, class)
	if svcErr != nil {
		return nil, svcErr
	}
	return redactAndCount(s, records, perms), nil
}

func redactAndCount[T redactor.Record](s *accountDataService, records []T, perms redactor.PermissionSet) []T {
	records = redactor.RedactAll(s.redactor, records, perms)
	if len(records) > 0 {
		s.metrics.RedactedRecords.WithLabelValues(string(records[0].Class())).Add(float64(len(records)))
	}
	return records
}

// authorize checks that the consent is a live account access consent granting class and
// returns its permissions.
func (s *accountDataService) authorize(ctx context.Context, consentID, apiClientID string,
	class model.ResourceClass) (redactor.PermissionSet, *serviceerror.ServiceError) {
	logger := s.logger.WithContext(ctx)

	c, err := s.consents.GetConsent(ctx, consentID, apiClientID)
	if err != nil {
		svcErr := consent.ServiceErrorFor(err)
		if svcErr.Type == serviceerror.ServerErrorType {
			logger.Error("Failed to fetch consent", log.String("consent_id", consentID), log.Error(err))
		}
		return nil, svcErr
	}

	if c.Type != consentmodel.TypeAccounts {
		return nil, serviceerror.CustomServiceError(serviceerror.ForbiddenError, ErrNotAccountConsent.Error())
	}
	if c.Status != consentmodel.StatusAuthorised {
		return nil, serviceerror.CustomServiceError(serviceerror.ConsentStateError,
			"consent status is "+c.Status)
	}
	if utils.IsExpired(c.ExpirationTime, s.now()) {
		return nil, serviceerror.CustomServiceError(serviceerror.ConsentStateError, "consent has expired")
	}

	perms := redactor.NewPermissionSet(c.Permissions...)
	if !perms.CanRead(class) {
		logger.Warn("Consent lacks permission for resource",
			log.String("consent_id", consentID), log.String("resource", string(class)))
		return nil, serviceerror.CustomServiceError(serviceerror.ForbiddenError, ErrPermissionDenied.Error())
	}
	return perms, nil
}

// load decodes the class documents of the accounts the consent covers, optionally narrowed to accountID.
func load[T redactor.Record](ctx context.Context, s *accountDataService, consentID, accountID string,
	class model.ResourceClass) ([]T, *serviceerror.ServiceError) {
	logger := s.logger.WithContext(ctx)

	accountIDs, err := s.store.ListConsentAccounts(ctx, consentID)
	if err != nil {
		logger.Error("Failed to list consent accounts", log.String("consent_id", consentID), log.Error(err))
		return nil, &serviceerror.DatabaseError
	}
	if accountID != "" {
		if !slices.Contains(accountIDs, accountID) {
			return nil, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, ErrAccountNotFound.Error())
		}
		accountIDs = []string{accountID}
	}

	rows, err := s.store.ListResources(ctx, class, accountIDs)
	if err != nil {
		logger.Error("Failed to list account resources", log.String("resource", string(class)), log.Error(err))
		return nil, &serviceerror.DatabaseError
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		if row.Document.IsEmpty() {
			logger.Warn("Skipping empty account resource", log.String("resource_id", row.ResourceID))
			continue
		}
		var record T
		if err := json.Unmarshal(row.Document, &record); err != nil {
			logger.Error("Stored account resource is not valid JSON",
				log.String("resource_id", row.ResourceID), log.Error(err))
			return nil, &serviceerror.InternalServerError
		}
		records = append(records, record)
	}
	return records, nil
}
