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

// Package model defines persisted payment submissions.
package model

import (
	"database/sql"
	"encoding/json"

	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

// Submission statuses.
const (
	StatusAcceptedSettlementInProcess = "AcceptedSettlementInProcess"
	StatusPending                     = "Pending"
	StatusInitiationPending           = "InitiationPending"
)

// Submission is one accepted payment instruction.
type Submission struct {
	ID                       string          `json:"id"`
	ConsentID                string          `json:"consentId"`
	APIClientID              string          `json:"apiClientId"`
	Product                  string          `json:"product"`
	IdempotencyKey           string          `json:"idempotencyKey"`
	IdempotencyKeyExpiration int64           `json:"idempotencyKeyExpiration"`
	Payload                  json.RawMessage `json:"payload"`
	PayloadHash              string          `json:"payloadHash"`
	Status                   string          `json:"status"`
	TransactionID            string          `json:"transactionId"`
	DedupKey                 string          `json:"dedupKey,omitempty"`
	CreatedTime              int64           `json:"createdTime"`
	UpdatedTime              int64           `json:"updatedTime"`
}

// KeyExpired reports whether replay detection for the submission's key has lapsed at nowMillis.
func (s *Submission) KeyExpired(nowMillis int64) bool {
	return s.IdempotencyKeyExpiration != 0 && s.IdempotencyKeyExpiration <= nowMillis
}

// SubmissionRow is the OB_PAYMENT_SUBMISSION database row. DEDUP_KEY is cleared when an expired
// key is retired so the key can be reused.
type SubmissionRow struct {
	SubmissionID             string         `db:"SUBMISSION_ID"`
	ConsentID                string         `db:"CONSENT_ID"`
	ClientID                 string         `db:"CLIENT_ID"`
	Product                  string         `db:"PRODUCT"`
	IdempotencyKey           string         `db:"IDEMPOTENCY_KEY"`
	IdempotencyKeyExpiration int64          `db:"IDEMPOTENCY_KEY_EXPIRATION"`
	DedupKey                 sql.NullString `db:"DEDUP_KEY"`
	Payload                  dbmodel.JSON   `db:"PAYLOAD"`
	PayloadHash              string         `db:"PAYLOAD_HASH"`
	Status                   string         `db:"STATUS"`
	TransactionID            string         `db:"TRANSACTION_ID"`
	CreatedTime              int64          `db:"CREATED_TIME"`
	UpdatedTime              int64          `db:"UPDATED_TIME"`
}

// ToSubmission converts the database row into the domain entity.
func (r *SubmissionRow) ToSubmission() *Submission {
	return &Submission{
		ID:                       r.SubmissionID,
		ConsentID:                r.ConsentID,
		APIClientID:              r.ClientID,
		Product:                  r.Product,
		IdempotencyKey:           r.IdempotencyKey,
		IdempotencyKeyExpiration: r.IdempotencyKeyExpiration,
		Payload:                  json.RawMessage(r.Payload),
		PayloadHash:              r.PayloadHash,
		Status:                   r.Status,
		TransactionID:            r.TransactionID,
		DedupKey:                 r.DedupKey.String,
		CreatedTime:              r.CreatedTime,
		UpdatedTime:              r.UpdatedTime,
	}
}
