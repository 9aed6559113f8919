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

import (
	dbmodel "github.com/wso2/ob-consent-enforcement/internal/system/database/model"
)

// AccountResource is a row of OB_ACCOUNT_RESOURCE: one resource document of an account.
type AccountResource struct {
	ResourceID   string       `db:"RESOURCE_ID"`
	AccountID    string       `db:"ACCOUNT_ID"`
	ResourceType string       `db:"RESOURCE_TYPE"`
	Document     dbmodel.JSON `db:"DOCUMENT"`
	UpdatedTime  int64        `db:"UPDATED_TIME"`
}

// ResponseLinks carries the self and paging links of a read response.
type ResponseLinks struct {
	Self  string `json:"Self"`
	First string `json:"First,omitempty"`
	Prev  string `json:"Prev,omitempty"`
	Next  string `json:"Next,omitempty"`
	Last  string `json:"Last,omitempty"`
}

// ResponseMeta carries paging metadata of a read response.
type ResponseMeta struct {
	TotalPages int `json:"TotalPages"`
}

// ReadResponse is the envelope of account information read responses.
type ReadResponse struct {
	Data  map[string]interface{} `json:"Data"`
	Links ResponseLinks          `json:"Links"`
	Meta  ResponseMeta           `json:"Meta"`
}
