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

package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

const submissionColumns = "SUBMISSION_ID, CONSENT_ID, CLIENT_ID, PRODUCT, IDEMPOTENCY_KEY, " +
	"IDEMPOTENCY_KEY_EXPIRATION, DEDUP_KEY, PAYLOAD, PAYLOAD_HASH, STATUS, TRANSACTION_ID, CREATED_TIME, UPDATED_TIME"

// DBQuery objects for submission operations
var (
	QueryCreateSubmission = dbmodel.DBQuery{
		ID: "CREATE_SUBMISSION",
		Query: "INSERT INTO OB_PAYMENT_SUBMISSION (" + submissionColumns + ") " +
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
	}

	QueryGetSubmissionByID = dbmodel.DBQuery{
		ID:    "GET_SUBMISSION_BY_ID",
		Query: "SELECT " + submissionColumns + " FROM OB_PAYMENT_SUBMISSION WHERE SUBMISSION_ID = ?",
	}

	QueryGetSubmissionByDedupKey = dbmodel.DBQuery{
		ID: "GET_SUBMISSION_BY_DEDUP_KEY",
		Query: "SELECT " + submissionColumns + " FROM OB_PAYMENT_SUBMISSION " +
			"WHERE CONSENT_ID = ? AND CLIENT_ID = ? AND DEDUP_KEY = ?",
	}

	QueryRetireDedupKey = dbmodel.DBQuery{
		ID: "RETIRE_DEDUP_KEY",
		Query: "UPDATE OB_PAYMENT_SUBMISSION SET DEDUP_KEY = NULL, UPDATED_TIME = ? " +
			"WHERE SUBMISSION_ID = ? AND DEDUP_KEY = ?",
	}

	QueryListSubmissionsByConsent = dbmodel.DBQuery{
		ID: "LIST_SUBMISSIONS_BY_CONSENT",
		Query: "SELECT " + submissionColumns + " FROM OB_PAYMENT_SUBMISSION " +
			"WHERE CONSENT_ID = ? AND CREATED_TIME >= ? ORDER BY CREATED_TIME",
	}
)

// SubmissionStore persists submissions with a unique (CONSENT_ID, CLIENT_ID, DEDUP_KEY) constraint.
type SubmissionStore interface {
	GetByID(ctx context.Context, submissionID string) (*model.Submission, error)
	GetByDedupKey(ctx context.Context, consentID, apiClientID, dedupKey string) (*model.Submission, error)
	Insert(ctx context.Context, submission *model.Submission) error
	RetireDedupKey(ctx context.Context, submissionID, dedupKey string, updatedTime int64) error
	ListByConsent(ctx context.Context, consentID string, since int64) ([]*model.Submission, error)
}

type store struct {
	db *database.DB
}

// NewStore creates the MySQL submission store.
func NewStore(db *database.DB) SubmissionStore {
	return &store{db: db}
}

// GetByID returns nil when the submission does not exist
func (s *store) GetByID(ctx context.Context, submissionID string) (*model.Submission, error) {
	return s.getOne(ctx, QueryGetSubmissionByID, submissionID)
}

// GetByDedupKey returns nil when no submission holds the key
func (s *store) GetByDedupKey(ctx context.Context, consentID, apiClientID, dedupKey string) (*model.Submission, error) {
	return s.getOne(ctx, QueryGetSubmissionByDedupKey, consentID, apiClientID, dedupKey)
}

func (s *store) getOne(ctx context.Context, query dbmodel.DBQuery, args ...interface{}) (*model.Submission, error) {
	var row model.SubmissionRow
	if err := s.db.GetContext(ctx, &row, query.GetQuery(), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute %s: %w", query.GetID(), err)
	}
	return row.ToSubmission(), nil
}

// Insert stores a new submission. A unique constraint violation is reported as ErrDuplicateSubmission.
func (s *store) Insert(ctx context.Context, submission *model.Submission) error {
	dedupKey := sql.NullString{String: submission.DedupKey, Valid: submission.DedupKey != ""}
	_, err := s.db.ExecContext(ctx, QueryCreateSubmission.GetQuery(),
		submission.ID, submission.ConsentID, submission.APIClientID, submission.Product,
		submission.IdempotencyKey, submission.IdempotencyKeyExpiration, dedupKey,
		dbmodel.JSON(submission.Payload), submission.PayloadHash, submission.Status,
		submission.TransactionID, submission.CreatedTime, submission.UpdatedTime)
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to execute %s: %w", QueryCreateSubmission.GetID(), err)
	}
	return nil
}

// RetireDedupKey releases the key held by an expired submission
func (s *store) RetireDedupKey(ctx context.Context, submissionID, dedupKey string, updatedTime int64) error {
	if _, err := s.db.ExecContext(ctx, QueryRetireDedupKey.GetQuery(), updatedTime, submissionID, dedupKey); err != nil {
		return fmt.Errorf("failed to execute %s: %w", QueryRetireDedupKey.GetID(), err)
	}
	return nil
}

// ListByConsent returns the submissions of a consent created at or after since, oldest first
func (s *store) ListByConsent(ctx context.Context, consentID string, since int64) ([]*model.Submission, error) {
	var rows []model.SubmissionRow
	if err := s.db.SelectContext(ctx, &rows, QueryListSubmissionsByConsent.GetQuery(), consentID, since); err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", QueryListSubmissionsByConsent.GetID(), err)
	}
	submissions := make([]*model.Submission, 0, len(rows))
	for i := range rows {
		submissions = append(submissions, rows[i].ToSubmission())
	}
	return submissions, nil
}
