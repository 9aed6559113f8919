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

import "encoding/json"

// SubmissionResponseData describes a created payment.
type SubmissionResponseData struct {
	SubmissionID         string          `json:"PaymentId"`
	ConsentID            string          `json:"ConsentId"`
	Status               string          `json:"Status"`
	TransactionID        string          `json:"TransactionId,omitempty"`
	CreationDateTime     string          `json:"CreationDateTime"`
	StatusUpdateDateTime string          `json:"StatusUpdateDateTime"`
	Request              json.RawMessage `json:"Request"`
}

// Links holds the self link of a response.
type Links struct {
	Self string `json:"Self"`
}

// SubmissionResponse is returned for created and replayed submissions alike.
type SubmissionResponse struct {
	Data  SubmissionResponseData `json:"Data"`
	Links Links                  `json:"Links"`
	Meta  struct{}               `json:"Meta"`
}
