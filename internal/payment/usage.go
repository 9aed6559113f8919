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

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"time"

	"github.com/wso2/ob-consent-enforcement/internal/consent"
	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/fileparser"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/validator"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
)

// vrpPeriodicUsage sums the instructed amounts of the consent's earlier payments falling in the
// current window of each periodic limit. Consent aligned windows are anchored at
// ValidFromDateTime, or the consent creation time when it is absent.
func vrpPeriodicUsage(ctx context.Context, s *paymentService, c *consentmodel.Consent,
	params *model.VRPControlParameters) (validator.PeriodicUsage, error) {
	if len(params.PeriodicLimits) == 0 {
		return nil, nil
	}

	now := s.now()
	anchor := time.UnixMilli(c.CreatedTime)
	if params.ValidFromDateTime != "" {
		if from, err := time.Parse(time.RFC3339, params.ValidFromDateTime); err == nil {
			anchor = from
		}
	}

	starts := make(map[validator.PeriodKey]time.Time, len(params.PeriodicLimits))
	earliest := now
	for _, limit := range params.PeriodicLimits {
		key := validator.PeriodKey{PeriodType: limit.PeriodType, PeriodAlignment: limit.PeriodAlignment}
		start, err := validator.PeriodStart(limit.PeriodType, limit.PeriodAlignment, now, anchor)
		if err != nil {
			s.logger.WithContext(ctx).Warn("Ignoring periodic limit with unsupported period",
				log.String("consent_id", c.ID), log.Error(err))
			continue
		}
		starts[key] = start
		if start.Before(earliest) {
			earliest = start
		}
	}
	if len(starts) == 0 {
		return nil, nil
	}

	submissions, err := s.coordinator.ListByConsent(ctx, c.ID, earliest)
	if err != nil {
		return nil, err
	}

	usage := make(validator.PeriodicUsage, len(starts))
	for _, submission := range submissions {
		var request model.VRPSubmissionRequest
		if err := json.Unmarshal(submission.Payload, &request); err != nil {
			continue
		}
		instructed := request.Data.Instruction.InstructedAmount
		value, ok := fileparser.ParseDecimal(instructed.Amount)
		if !ok {
			continue
		}
		created := time.UnixMilli(submission.CreatedTime)

		counted := make(map[validator.PeriodKey]bool, len(starts))
		for _, limit := range params.PeriodicLimits {
			key := validator.PeriodKey{PeriodType: limit.PeriodType, PeriodAlignment: limit.PeriodAlignment}
			start, ok := starts[key]
			if !ok || counted[key] || created.Before(start) || instructed.Currency != limit.Currency {
				continue
			}
			if usage[key] == nil {
				usage[key] = new(big.Rat)
			}
			usage[key].Add(usage[key], value)
			counted[key] = true
		}
	}
	return usage, nil
}

// requireUploadedFile reports a file payment whose consent has no uploaded file.
func requireUploadedFile(ctx context.Context, s *paymentService, c *consentmodel.Consent, apiClientID string,
	result *validator.Result) error {
	if _, err := s.consents.GetFile(ctx, c.ID, apiClientID); err != nil {
		if errors.Is(err, consent.ErrFileNotFound) {
			result.Add(codes.FieldMissing, "no payment file has been uploaded for the consent", "Data.Initiation.FileHash")
			return nil
		}
		return err
	}
	return nil
}
