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

package utils

import (
	"fmt"
	"strconv"
)

// DefaultPageSize is the number of records returned per page of a read response.
const DefaultPageSize = 100

// Page is a 1-indexed window over a result set.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads the page query parameter. An empty value selects the first page.
func ParsePage(value string, size int) (Page, error) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if value == "" {
		return Page{Number: 1, Size: size}, nil
	}
	number, err := strconv.Atoi(value)
	if err != nil || number < 1 {
		return Page{}, fmt.Errorf("page must be a positive integer")
	}
	return Page{Number: number, Size: size}, nil
}

// TotalPages returns the number of pages needed for total records. An empty result has one page.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}

// Bounds returns the slice bounds of the page within total records. ok is false when the page
// lies beyond the last one.
func (p Page) Bounds(total int) (start, end int, ok bool) {
	if p.Number > p.TotalPages(total) {
		return 0, 0, false
	}
	start = (p.Number - 1) * p.Size
	end = start + p.Size
	if end > total {
		end = total
	}
	return start, end, true
}

// HasNext reports whether a page follows p.
func (p Page) HasNext(total int) bool {
	return p.Number < p.TotalPages(total)
}

// HasPrevious reports whether a page precedes p.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}
