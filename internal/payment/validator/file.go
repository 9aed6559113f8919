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

package validator

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/wso2/ob-consent-enforcement/internal/payment/fileparser"
	"github.com/wso2/ob-consent-enforcement/internal/system/error/codes"
)

const (
	pathFileHash             = "Data.Initiation.FileHash"
	pathFileType             = "Data.Initiation.FileType"
	pathNumberOfTransactions = "Data.Initiation.NumberOfTransactions"
	pathControlSum           = "Data.Initiation.ControlSum"
)

// FileHash returns the base64 encoded SHA-256 digest of content.
func FileHash(content []byte) string {
	sum := sha256.Sum256(content)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// FileValidator checks uploaded payment files against the metadata declared in their consent.
type FileValidator struct {
	parsers *fileparser.Registry
}

// NewFileValidator creates a file validator using parsers to read file content.
func NewFileValidator(parsers *fileparser.Registry) *FileValidator {
	return &FileValidator{parsers: parsers}
}

// ValidateFile compares the hash, transaction count and control sum of content with the declared
// values. A hash mismatch does not prevent the totals from being checked. Empty declared totals
// are not compared.
func (v *FileValidator) ValidateFile(content []byte, fileType, declaredHash, declaredCount, declaredSum string) *Result {
	result := NewResult()

	if actual := FileHash(content); actual != declaredHash {
		result.Add(codes.FileHashMismatch,
			fmt.Sprintf("file hash %s does not match declared hash %s", actual, declaredHash), pathFileHash)
	}

	parser, ok := v.parsers.Get(fileType)
	if !ok {
		result.Add(codes.UnsupportedFileType, fmt.Sprintf("file type %q is not supported", fileType), pathFileType)
		return result
	}

	summary, err := parser.Parse(content)
	if err != nil {
		message := "file could not be parsed"
		if errors.Is(err, fileparser.ErrMalformedFile) {
			message = err.Error()
		}
		result.Add(codes.FileParseFailed, message, pathFileType)
		return result
	}

	if declaredCount != "" {
		declared, err := strconv.Atoi(strings.TrimSpace(declaredCount))
		if err != nil || declared != summary.NumberOfTransactions {
			result.Add(codes.FileTransactionCountMismatch,
				fmt.Sprintf("file contains %d transactions but %q were declared", summary.NumberOfTransactions, declaredCount),
				pathNumberOfTransactions)
		}
	}

	if declaredSum != "" {
		declared, ok := fileparser.ParseDecimal(strings.TrimSpace(declaredSum))
		if !ok || declared.Cmp(summary.ControlSum) != 0 {
			result.Add(codes.FileControlSumMismatch,
				fmt.Sprintf("file control sum %s does not match declared control sum %q",
					formatDecimal(summary.ControlSum), declaredSum),
				pathControlSum)
		}
	}

	return result
}

// formatDecimal renders r with as many fraction digits as it needs. Sums of decimal strings
// always terminate.
func formatDecimal(r *big.Rat) string {
	if r.IsInt() {
		return r.RatString()
	}
	for prec := 1; prec < 64; prec++ {
		s := r.FloatString(prec)
		if v, ok := new(big.Rat).SetString(s); ok && v.Cmp(r) == 0 {
			return s
		}
	}
	return r.FloatString(64)
}
