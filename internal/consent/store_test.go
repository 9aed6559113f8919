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
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/system/database"
)

func newMockStore(t *testing.T) (consentStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return newConsentStore(database.Wrap(sqlDB, "mysql")), mock
}

func consentColumnNames() []string {
	return []string{"CONSENT_ID", "CLIENT_ID", "CONSENT_TYPE", "CURRENT_STATUS", "INITIATION", "RISK",
		"CONTROL_PARAMETERS", "PERMISSIONS", "EXPIRATION_TIME", "FILE_TYPE", "FILE_HASH",
		"NUMBER_OF_TRANSACTIONS", "CONTROL_SUM", "CREATED_TIME", "UPDATED_TIME"}
}

func TestStore_GetByID_MapsRow(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(consentColumnNames()).AddRow(
		"c-1", "client-1", model.TypeFilePayment, model.StatusAuthorised,
		[]byte(`{"FileType":"UK.OBIE.PaymentInitiation.3.1"}`), []byte(`{}`), nil,
		[]byte(`["ReadAccountsBasic","ReadPAN"]`), int64(1700000000000),
		"UK.OBIE.PaymentInitiation.3.1", "aGFzaA==", "2", "30.00", int64(1), int64(2))
	mock.ExpectQuery(regexp.QuoteMeta(QueryGetConsentByID.Query)).WithArgs("c-1").WillReturnRows(rows)

	consent, err := s.GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	require.NotNil(t, consent)

	assert.Equal(t, "client-1", consent.APIClientID)
	assert.Equal(t, model.StatusAuthorised, consent.Status)
	assert.JSONEq(t, `{"FileType":"UK.OBIE.PaymentInitiation.3.1"}`, string(consent.Initiation))
	assert.Nil(t, consent.ControlParameters)
	assert.Equal(t, []string{"ReadAccountsBasic", "ReadPAN"}, consent.Permissions)
	assert.Equal(t, int64(1700000000000), consent.ExpirationTime)
	require.NotNil(t, consent.FileMetadata)
	assert.Equal(t, "aGFzaA==", consent.FileMetadata.FileHash)
	assert.Equal(t, "30.00", consent.FileMetadata.ControlSum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetByID_NotFoundReturnsNil(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(QueryGetConsentByID.Query)).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(consentColumnNames()))

	consent, err := s.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, consent)
}

func TestStore_TransitionStatus_ReportsLostRace(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta(QueryTransitionConsentStatus.Query)).
		WithArgs(model.StatusConsumed, int64(10), "c-1", model.StatusAuthorised).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.TransitionStatus(context.Background(), "c-1", model.StatusAuthorised, model.StatusConsumed, 10)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func expectTouch(mock sqlmock.Sqlmock, affected int64) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(QueryTouchConsentInStatus.Query)).
		WithArgs(int64(5), "c-1", model.StatusAwaitingAuthorisation).
		WillReturnResult(sqlmock.NewResult(0, affected))
}

func TestStore_CreateFile_Commits(t *testing.T) {
	s, mock := newMockStore(t)
	expectTouch(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(QueryCreateConsentFile.Query)).
		WithArgs("c-1", []byte("x"), "json", int64(5)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.CreateFile(context.Background(),
		&model.ConsentFile{ConsentID: "c-1", FileContent: []byte("x"), FileType: "json", CreatedTime: 5})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateFile_ConsentMovedOnIsRolledBack(t *testing.T) {
	s, mock := newMockStore(t)
	expectTouch(mock, 0)
	mock.ExpectRollback()

	err := s.CreateFile(context.Background(), &model.ConsentFile{ConsentID: "c-1", CreatedTime: 5})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateFile_DuplicateIsAlreadyUploaded(t *testing.T) {
	s, mock := newMockStore(t)
	expectTouch(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(QueryCreateConsentFile.Query)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	err := s.CreateFile(context.Background(),
		&model.ConsentFile{ConsentID: "c-1", FileContent: []byte("x"), CreatedTime: 5})
	assert.ErrorIs(t, err, ErrFileAlreadyUploaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateFile_WrapsOtherErrors(t *testing.T) {
	s, mock := newMockStore(t)
	expectTouch(mock, 1)
	mock.ExpectExec(regexp.QuoteMeta(QueryCreateConsentFile.Query)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := s.CreateFile(context.Background(), &model.ConsentFile{ConsentID: "c-1", CreatedTime: 5})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFileAlreadyUploaded)
	assert.Contains(t, err.Error(), "connection reset")
}
