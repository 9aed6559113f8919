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

package consent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

const consentColumns = "CONSENT_ID, CLIENT_ID, CONSENT_TYPE, CURRENT_STATUS, INITIATION, RISK, " +
	"CONTROL_PARAMETERS, PERMISSIONS, EXPIRATION_TIME, FILE_TYPE, FILE_HASH, NUMBER_OF_TRANSACTIONS, " +
	"CONTROL_SUM, CREATED_TIME, UPDATED_TIME"

// DBQuery objects for consent operations
var (
	QueryGetConsentByID = dbmodel.DBQuery{
		ID:    "GET_CONSENT_BY_ID",
		Query: "SELECT " + consentColumns + " FROM OB_CONSENT WHERE CONSENT_ID = ?",
	}

	QueryTransitionConsentStatus = dbmodel.DBQuery{
		ID:    "TRANSITION_CONSENT_STATUS",
		Query: "UPDATE OB_CONSENT SET CURRENT_STATUS = ?, UPDATED_TIME = ? WHERE CONSENT_ID = ? AND CURRENT_STATUS = ?",
	}

	QueryCreateConsentFile = dbmodel.DBQuery{
		ID:    "CREATE_CONSENT_FILE",
		Query: "INSERT INTO OB_CONSENT_FILE (CONSENT_ID, FILE_CONTENT, FILE_TYPE, CREATED_TIME) VALUES (?, ?, ?, ?)",
	}

	QueryTouchConsentInStatus = dbmodel.DBQuery{
		ID:    "TOUCH_CONSENT_IN_STATUS",
		Query: "UPDATE OB_CONSENT SET UPDATED_TIME = ? WHERE CONSENT_ID = ? AND CURRENT_STATUS = ?",
	}

	QueryGetConsentFile = dbmodel.DBQuery{
		ID:    "GET_CONSENT_FILE",
		Query: "SELECT CONSENT_ID, FILE_CONTENT, FILE_TYPE, CREATED_TIME FROM OB_CONSENT_FILE WHERE CONSENT_ID = ?",
	}
)

// consentStore defines the persistence operations the consent service needs
type consentStore interface {
	GetByID(ctx context.Context, consentID string) (*model.Consent, error)
	TransitionStatus(ctx context.Context, consentID, from, to string, updatedTime int64) (bool, error)
	CreateFile(ctx context.Context, file *model.ConsentFile) error
	GetFile(ctx context.Context, consentID string) (*model.ConsentFile, error)
}

// store implements the consentStore interface
type store struct {
	db *database.DB
}

// newConsentStore creates a new consent store
func newConsentStore(db *database.DB) consentStore {
	return &store{db: db}
}

// GetByID returns nil when the consent does not exist
func (s *store) GetByID(ctx context.Context, consentID string) (*model.Consent, error) {
	var row model.ConsentRow
	err := s.db.GetContext(ctx, &row, QueryGetConsentByID.GetQuery(), consentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consent: %w", err)
	}
	return row.ToConsent()
}

// TransitionStatus moves the consent from one status to another. It reports false when the
// consent was not in the expected status.
func (s *store) TransitionStatus(ctx context.Context, consentID, from, to string, updatedTime int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, QueryTransitionConsentStatus.GetQuery(), to, updatedTime, consentID, from)
	if err != nil {
		return false, fmt.Errorf("failed to update consent status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

// CreateFile stores the uploaded file. The consent row must still be awaiting authorisation when
// the file is written; both statements run in one transaction. A second upload for the same
// consent violates the primary key.
func (s *store) CreateFile(ctx context.Context, file *model.ConsentFile) error {
	return s.db.WithTransaction(ctx, func(tx *database.Tx) error {
		result, err := tx.ExecContext(ctx, QueryTouchConsentInStatus.GetQuery(),
			file.CreatedTime, file.ConsentID, model.StatusAwaitingAuthorisation)
		if err != nil {
			return fmt.Errorf("failed to lock consent for file upload: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected != 1 {
			return fmt.Errorf("%w: consent %s is no longer awaiting authorisation",
				ErrInvalidStateTransition, file.ConsentID)
		}

		_, err = tx.ExecContext(ctx, QueryCreateConsentFile.GetQuery(),
			file.ConsentID, file.FileContent, file.FileType, file.CreatedTime)
		if err != nil {
			if database.IsDuplicateKeyError(err) {
				return ErrFileAlreadyUploaded
			}
			return fmt.Errorf("failed to upload consent file: %w", err)
		}
		return nil
	})
}

// GetFile returns nil when no file was uploaded
func (s *store) GetFile(ctx context.Context, consentID string) (*model.ConsentFile, error) {
	var file model.ConsentFile
	err := s.db.GetContext(ctx, &file, QueryGetConsentFile.GetQuery(), consentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consent file: %w", err)
	}
	return &file, nil
}
