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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateConsentID(t *testing.T) {
	assert.NoError(t, ValidateConsentID("c-1"))
	assert.EqualError(t, ValidateConsentID("  "), "consent ID is required")
	assert.Error(t, ValidateConsentID(strings.Repeat("a", 256)))
}

func TestValidateIdempotencyKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "valid", key: "key-1"},
		{name: "at limit", key: strings.Repeat("k", 40)},
		{name: "empty", key: "", wantErr: true},
		{name: "too long", key: strings.Repeat("k", 41), wantErr: true},
		{name: "whitespace", key: "key 1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdempotencyKey(tt.key, 40)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsExpired(0, now))
	assert.True(t, IsExpired(now.UnixMilli(), now))
	assert.False(t, IsExpired(now.Add(time.Millisecond).UnixMilli(), now))
	assert.Equal(t, "2024-06-01T12:00:00Z", FormatTime(MillisToTime(TimeToMillis(now))))
}
