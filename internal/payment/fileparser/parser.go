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

// Package fileparser decodes bulk payment files into the totals used for integrity checks.
package fileparser

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// Supported file types.
const (
	FileTypeJSON     = "UK.OBIE.PaymentInitiation.3.1"
	FileTypePain0001 = "UK.OBIE.pain.001.001.08"
)

// ErrMalformedFile is wrapped by every parse failure.
var ErrMalformedFile = errors.New("malformed payment file")

// Summary holds the totals extracted from a file.
type Summary struct {
	NumberOfTransactions int
	ControlSum           *big.Rat
}

// Parser extracts a Summary from the raw content of one file format.
type Parser interface {
	Parse(content []byte) (*Summary, error)
}

// Registry maps file types to parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// NewRegistry returns a registry holding the built in parsers.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.Register(FileTypeJSON, &jsonParser{})
	r.Register(FileTypePain0001, &painParser{})
	return r
}

// Register adds or replaces the parser for fileType.
func (r *Registry) Register(fileType string, parser Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[fileType] = parser
}

// Get returns the parser for fileType.
func (r *Registry) Get(fileType string) (Parser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[fileType]
	return p, ok
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedFile, fmt.Sprintf(format, args...))
}

// ParseDecimal parses an unsigned decimal amount of any precision.
func ParseDecimal(s string) (*big.Rat, bool) {
	if !decimalPattern.MatchString(s) {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(s)
	return r, ok
}
