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

// Package model defines the consent entities read by the enforcement engine.
package model

import (
	"database/sql"
	"encoding/json"
	"fmt"

	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

// Consent statuses.
const (
	StatusAwaitingAuthorisation = "AwaitingAuthorisation"
	StatusAuthorised            = "Authorised"
	StatusRejected              = "Rejected"
	StatusConsumed              = "Consumed"
	StatusRevoked               = "Revoked"
)

// Consent types. Payment types match the product path segment.
const (
	TypeDomesticPayment          = "domestic-payments"
	TypeDomesticScheduledPayment = "domestic-scheduled-payments"
	TypeDomesticStandingOrder    = "domestic-standing-orders"
	TypeInternationalPayment     = "international-payments"
	TypeFilePayment              = "file-payments"
	TypeDomesticVRP              = "domestic-vrps"
	TypeAccounts                 = "accounts"
)

// FileMetadata is the integrity data declared when a file payment consent is created.
type FileMetadata struct {
	FileType             string `json:"FileType"`
	FileHash             string `json:"FileHash"`
	NumberOfTransactions string `json:"NumberOfTransactions,omitempty"`
	ControlSum           string `json:"ControlSum,omitempty"`
}

// Consent is a previously authorised mandate. The engine treats it as read only apart from
// status consumption.
type Consent struct {
	ID                string
	APIClientID       string
	Type              string
	Status            string
	Initiation        json.RawMessage
	Risk              json.RawMessage
	ControlParameters json.RawMessage
	Permissions       []string
	// ExpirationTime is epoch millis; zero means the consent does not expire.
	ExpirationTime int64
	FileMetadata   *FileMetadata
	CreatedTime    int64
	UpdatedTime    int64
}

// ConsentRow is the OB_CONSENT database row.
type ConsentRow struct {
	ConsentID            string         `db:"CONSENT_ID"`
	ClientID             string         `db:"CLIENT_ID"`
	ConsentType          string         `db:"CONSENT_TYPE"`
	CurrentStatus        string         `db:"CURRENT_STATUS"`
	Initiation           dbmodel.JSON   `db:"INITIATION"`
	Risk                 dbmodel.JSON   `db:"RISK"`
	ControlParameters    dbmodel.JSON   `db:"CONTROL_PARAMETERS"`
	Permissions          dbmodel.JSON   `db:"PERMISSIONS"`
	ExpirationTime       sql.NullInt64  `db:"EXPIRATION_TIME"`
	FileType             sql.NullString `db:"FILE_TYPE"`
	FileHash             sql.NullString `db:"FILE_HASH"`
	NumberOfTransactions sql.NullString `db:"NUMBER_OF_TRANSACTIONS"`
	ControlSum           sql.NullString `db:"CONTROL_SUM"`
	CreatedTime          int64          `db:"CREATED_TIME"`
	UpdatedTime          int64          `db:"UPDATED_TIME"`
}

// ToConsent converts the database row into the domain entity.
func (r *ConsentRow) ToConsent() (*Consent, error) {
	consent := &Consent{
		ID:                r.ConsentID,
		APIClientID:       r.ClientID,
		Type:              r.ConsentType,
		Status:            r.CurrentStatus,
		Initiation:        json.RawMessage(r.Initiation),
		Risk:              json.RawMessage(r.Risk),
		ControlParameters: json.RawMessage(r.ControlParameters),
		CreatedTime:       r.CreatedTime,
		UpdatedTime:       r.UpdatedTime,
	}
	if r.ExpirationTime.Valid {
		consent.ExpirationTime = r.ExpirationTime.Int64
	}
	if !r.Permissions.IsEmpty() {
		if err := json.Unmarshal(r.Permissions, &consent.Permissions); err != nil {
			return nil, fmt.Errorf("failed to decode permissions of consent %s: %w", r.ConsentID, err)
		}
	}
	if r.FileHash.Valid {
		consent.FileMetadata = &FileMetadata{
			FileType:             r.FileType.String,
			FileHash:             r.FileHash.String,
			NumberOfTransactions: r.NumberOfTransactions.String,
			ControlSum:           r.ControlSum.String,
		}
	}
	return consent, nil
}

// ConsentFile is an uploaded bulk payment file.
type ConsentFile struct {
	ConsentID   string `db:"CONSENT_ID"`
	FileContent []byte `db:"FILE_CONTENT"`
	FileType    string `db:"FILE_TYPE"`
	CreatedTime int64  `db:"CREATED_TIME"`
}
