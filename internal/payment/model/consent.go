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
	"encoding/json"
	"fmt"

	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
)

// PaymentConsent is a stored consent decoded into the initiation type I and control parameter
// type C of one payment product.
type PaymentConsent[I, C any] struct {
	consent           *consentmodel.Consent
	initiation        I
	controlParameters *C
}

// DecodeConsent decodes the product specific parts of a stored consent.
func DecodeConsent[I, C any](consent *consentmodel.Consent) (*PaymentConsent[I, C], error) {
	decoded := &PaymentConsent[I, C]{consent: consent}
	if len(consent.Initiation) > 0 {
		if err := json.Unmarshal(consent.Initiation, &decoded.initiation); err != nil {
			return nil, fmt.Errorf("failed to decode initiation of consent %s: %w", consent.ID, err)
		}
	}
	if len(consent.ControlParameters) > 0 && string(consent.ControlParameters) != "null" {
		var params C
		if err := json.Unmarshal(consent.ControlParameters, &params); err != nil {
			return nil, fmt.Errorf("failed to decode control parameters of consent %s: %w", consent.ID, err)
		}
		decoded.controlParameters = &params
	}
	return decoded, nil
}

func (c *PaymentConsent[I, C]) GetID() string { return c.consent.ID }
func (c *PaymentConsent[I, C]) GetStatus() string { return c.consent.Status }
func (c *PaymentConsent[I, C]) GetInitiation() I { return c.initiation }
func (c *PaymentConsent[I, C]) GetRisk() json.RawMessage { return c.consent.Risk }
func (c *PaymentConsent[I, C]) GetControlParameters() *C { return c.controlParameters }
func (c *PaymentConsent[I, C]) GetExpirationTime() int64 { return c.consent.ExpirationTime }
func (c *PaymentConsent[I, C]) GetCreatedTime() int64 { return c.consent.CreatedTime }
func (c *PaymentConsent[I, C]) GetFileMetadata() *consentmodel.FileMetadata { return c.consent.FileMetadata }
