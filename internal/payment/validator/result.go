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

// Package validator reconciles payment submissions with the consent they claim to execute.
package validator

import "strings"

// Entry is a single validation failure.
type Entry struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	FieldPath string `json:"path,omitempty"`
}

// Result accumulates validation failures in the order they were found.
type Result struct {
	Entries []Entry `json:"errors,omitempty"`
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{}
}

// Valid reports whether no failure was recorded.
func (r *Result) Valid() bool {
	return len(r.Entries) == 0
}

// Add records a failure. Multiple field paths are joined into one entry.
func (r *Result) Add(code, message string, fieldPaths ...string) {
	r.Entries = append(r.Entries, Entry{
		Code:      code,
		Message:   message,
		FieldPath: strings.Join(fieldPaths, ", "),
	})
}

// Merge appends the failures of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Entries = append(r.Entries, other.Entries...)
}

// Codes returns the failure codes in order.
func (r *Result) Codes() []string {
	codes := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		codes = append(codes, e.Code)
	}
	return codes
}

// Has reports whether a failure with code was recorded.
func (r *Result) Has(code string) bool {
	for _, e := range r.Entries {
		if e.Code == code {
			return true
		}
	}
	return false
}
