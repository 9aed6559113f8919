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
	"fmt"
	"time"

	"github.com/wso2/ob-consent-enforcement/internal/consent"
	consentmodel "github.com/wso2/ob-consent-enforcement/internal/consent/model"
	"github.com/wso2/ob-consent-enforcement/internal/idempotency"
	idempotencymodel "github.com/wso2/ob-consent-enforcement/internal/idempotency/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
	"github.com/wso2/ob-consent-enforcement/internal/payment/validator"
	"github.com/wso2/ob-consent-enforcement/internal/system/constants"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/serviceerror"
	"github.com/wso2/ob-consent-enforcement/internal/system/log"
	"github.com/wso2/ob-consent-enforcement/internal/system/metrics"
	"github.com/wso2/ob-consent-enforcement/internal/system/utils"
)

// PaymentService validates and records payment submissions.
type PaymentService interface {
	// ValidateSubmission reconciles a submission with its consent without recording it.
	ValidateSubmission(ctx context.Context, product string, request json.RawMessage, apiClientID string) (*validator.Result, error)
	// CreateSubmission records a submission once per idempotency key. The flag is true when an
	// earlier identical submission was returned instead.
	CreateSubmission(ctx context.Context, product, apiClientID, idempotencyKey string,
		payload json.RawMessage) (*model.SubmissionResponse, bool, *serviceerror.ServiceError)
	GetSubmission(ctx context.Context, product, submissionID, apiClientID string) (*model.SubmissionResponse, *serviceerror.ServiceError)
	// UploadFile validates and stores the payment file of a file payment consent.
	UploadFile(ctx context.Context, consentID, apiClientID string, content []byte) *serviceerror.ServiceError
}

type paymentService struct {
	products     map[string]productBinding
	consents     consent.ConsentService
	coordinator  *idempotency.Coordinator
	files        *validator.FileValidator
	maxKeyLength int
	now          func() time.Time
	logger       *log.Logger
	metrics      *metrics.Metrics
}

func newPaymentService(consents consent.ConsentService, coordinator *idempotency.Coordinator,
	files *validator.FileValidator, maxKeyLength int) *paymentService {
	return &paymentService{
		products:     defaultBindings(),
		consents:     consents,
		coordinator:  coordinator,
		files:        files,
		maxKeyLength: maxKeyLength,
		now:          time.Now,
		logger:       log.GetLogger().With(log.String(log.LoggerKeyComponentName, "PaymentService")),
		metrics:      metrics.Get(),
	}
}

func (s *paymentService) ValidateSubmission(ctx context.Context, product string, request json.RawMessage,
	apiClientID string) (*validator.Result, error) {
	b, ok := s.products[product]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, product)
	}
	result, err := b.Validate(ctx, s, request, apiClientID)
	if err != nil {
		return nil, err
	}
	for _, code := range result.Codes() {
		s.metrics.ValidationFailures.WithLabelValues(product, code).Inc()
	}
	return result, nil
}

func (s *paymentService) CreateSubmission(ctx context.Context, product, apiClientID, idempotencyKey string,
	payload json.RawMessage) (*model.SubmissionResponse, bool, *serviceerror.ServiceError) {
	logger := s.logger.WithContext(ctx)

	b, ok := s.products[product]
	if !ok {
		return nil, false, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError,
			fmt.Sprintf("unsupported payment product %s", product))
	}
	if idempotencyKey != "" || b.Mode() == idempotency.PerIdempotencyKey {
		if err := utils.ValidateIdempotencyKey(idempotencyKey, s.maxKeyLength); err != nil {
			return nil, false, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, err.Error())
		}
	}

	consentID, err := peekConsentID(payload)
	if err != nil {
		return nil, false, serviceerror.CustomServiceError(serviceerror.InvalidRequestError, err.Error())
	}

	key := idempotency.Key{ConsentID: consentID, APIClientID: apiClientID, IdempotencyKey: idempotencyKey, Mode: b.Mode()}
	submission, replayed, err := s.coordinator.FindOrCreate(ctx, key, payload, func(ctx context.Context) (*idempotencymodel.Submission, error) {
		result, err := s.ValidateSubmission(ctx, product, payload, apiClientID)
		if err != nil {
			return nil, err
		}
		if !result.Valid() {
			return nil, &ValidationFailedError{Result: result}
		}
		return &idempotencymodel.Submission{
			Product:       product,
			Status:        idempotencymodel.StatusAcceptedSettlementInProcess,
			TransactionID: utils.GenerateUUID(),
		}, nil
	})
	if err != nil {
		svcErr := s.toServiceError(ctx, err)
		s.metrics.Submissions.WithLabelValues(product, outcomeFor(svcErr)).Inc()
		return nil, false, svcErr
	}

	if replayed {
		logger.Debug("Returning existing submission for repeated request",
			log.String("submission_id", submission.ID), log.String("consent_id", consentID))
		s.metrics.Submissions.WithLabelValues(product, metrics.OutcomeReplayed).Inc()
		return toResponse(submission), true, nil
	}

	if b.Mode() == idempotency.PerConsent {
		if err := s.consents.Consume(ctx, consentID, apiClientID); err != nil {
			logger.Error("Submission recorded but consent could not be consumed",
				log.String("submission_id", submission.ID), log.String("consent_id", consentID), log.Error(err))
		}
	}

	logger.Debug("Payment submission created",
		log.String("submission_id", submission.ID), log.String("product", product))
	s.metrics.Submissions.WithLabelValues(product, metrics.OutcomeCreated).Inc()
	return toResponse(submission), false, nil
}

func (s *paymentService) GetSubmission(ctx context.Context, product, submissionID,
	apiClientID string) (*model.SubmissionResponse, *serviceerror.ServiceError) {
	submission, err := s.coordinator.GetByID(ctx, submissionID)
	if err != nil {
		s.logger.WithContext(ctx).Error("Failed to read submission",
			log.String("submission_id", submissionID), log.Error(err))
		return nil, &serviceerror.DatabaseError
	}
	if submission == nil || submission.APIClientID != apiClientID || submission.Product != product {
		return nil, serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError,
			fmt.Sprintf("payment %s not found", submissionID))
	}
	return toResponse(submission), nil
}

func (s *paymentService) UploadFile(ctx context.Context, consentID, apiClientID string, content []byte) *serviceerror.ServiceError {
	logger := s.logger.WithContext(ctx)

	c, err := s.consents.GetConsent(ctx, consentID, apiClientID)
	if err != nil {
		return s.toServiceError(ctx, err)
	}
	if c.Type != consentmodel.TypeFilePayment {
		return serviceerror.CustomServiceError(serviceerror.InvalidRequestError, ErrConsentTypeMismatch.Error())
	}
	if c.Status != consentmodel.StatusAwaitingAuthorisation {
		return serviceerror.CustomServiceError(serviceerror.ConsentStateError,
			fmt.Sprintf("file upload is not permitted in status %s", c.Status))
	}
	if c.FileMetadata == nil {
		return serviceerror.CustomServiceError(serviceerror.InvalidRequestError,
			"consent does not declare file metadata")
	}

	meta := c.FileMetadata
	result := s.files.ValidateFile(content, meta.FileType, meta.FileHash, meta.NumberOfTransactions, meta.ControlSum)
	if !result.Valid() {
		for _, code := range result.Codes() {
			s.metrics.ValidationFailures.WithLabelValues(consentmodel.TypeFilePayment, code).Inc()
		}
		logger.Warn("Uploaded payment file does not match the consent",
			log.String("consent_id", consentID), log.Any("codes", result.Codes()))
		return validationServiceError(result)
	}

	if err := s.consents.SaveFile(ctx, consentID, apiClientID, meta.FileType, content); err != nil {
		return s.toServiceError(ctx, err)
	}
	logger.Debug("Payment file stored", log.String("consent_id", consentID), log.Int("size", len(content)))
	return nil
}

// toServiceError maps errors from validation, the coordinator and the consent store.
func (s *paymentService) toServiceError(ctx context.Context, err error) *serviceerror.ServiceError {
	var failed *ValidationFailedError
	switch {
	case errors.As(err, &failed):
		return validationServiceError(failed.Result)
	case errors.Is(err, idempotency.ErrIdempotencyConflict):
		return serviceerror.CustomServiceError(serviceerror.IdempotencyConflictError, err.Error())
	case errors.Is(err, idempotency.ErrInvalidPayload), errors.Is(err, idempotency.ErrMissingKey),
		errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrConsentTypeMismatch):
		return serviceerror.CustomServiceError(serviceerror.InvalidRequestError, err.Error())
	case errors.Is(err, ErrUnknownProduct):
		return serviceerror.CustomServiceError(serviceerror.ResourceNotFoundError, err.Error())
	}

	svcErr := consent.ServiceErrorFor(err)
	if svcErr.Type == serviceerror.ServerErrorType {
		s.logger.WithContext(ctx).Error("Payment request failed", log.Error(err))
	}
	return svcErr
}

// validationServiceError renders a failed result. A consent that cannot be executed is reported
// as a consent state error; every entry is carried as a detail either way.
func validationServiceError(result *validator.Result) *serviceerror.ServiceError {
	details := make([]serviceerror.ErrorDetail, 0, len(result.Entries))
	for _, e := range result.Entries {
		details = append(details, serviceerror.ErrorDetail{Code: e.Code, Message: e.Message, Path: e.FieldPath})
	}

	base := serviceerror.ValidationError
	if result.Has(codes.ConsentStateInvalid) || result.Has(codes.ConsentExpired) {
		base = serviceerror.ConsentStateError
	}
	return serviceerror.WithDetails(base, result.Entries[0].Message, details)
}

func outcomeFor(svcErr *serviceerror.ServiceError) string {
	switch {
	case svcErr.Code == serviceerror.IdempotencyConflictError.Code:
		return metrics.OutcomeConflict
	case svcErr.Type == serviceerror.ClientErrorType:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}

func peekConsentID(payload json.RawMessage) (string, error) {
	var envelope struct {
		Data struct {
			ConsentID string `json:"ConsentId"`
		} `json:"Data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return "", fmt.Errorf("request body is not valid JSON: %v", err)
	}
	if err := utils.ValidateConsentID(envelope.Data.ConsentID); err != nil {
		return "", fmt.Errorf("invalid Data.ConsentId: %v", err)
	}
	return envelope.Data.ConsentID, nil
}

// toResponse renders the stored request in canonical form so replays from the store match the
// first response byte for byte.
func toResponse(s *idempotencymodel.Submission) *model.SubmissionResponse {
	request := s.Payload
	if canonical, err := validator.CanonicalJSON(s.Payload); err == nil {
		request = canonical
	}
	response := &model.SubmissionResponse{
		Data: model.SubmissionResponseData{
			SubmissionID:         s.ID,
			ConsentID:            s.ConsentID,
			Status:               s.Status,
			TransactionID:        s.TransactionID,
			CreationDateTime:     utils.FormatTime(utils.MillisToTime(s.CreatedTime)),
			StatusUpdateDateTime: utils.FormatTime(utils.MillisToTime(s.UpdatedTime)),
			Request:              request,
		},
	}
	response.Links.Self = fmt.Sprintf("%s/%s/%s", constants.APIBasePath, s.Product, s.ID)
	return response
}
