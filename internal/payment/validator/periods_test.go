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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
)

func TestPeriodStart_Calendar(t *testing.T) {
	// Thursday
	now := time.Date(2024, 8, 22, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		periodType string
		expected   time.Time
	}{
		{model.PeriodTypeDay, time.Date(2024, 8, 22, 0, 0, 0, 0, time.UTC)},
		{model.PeriodTypeWeek, time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC)},
		{model.PeriodTypeFortnight, time.Date(2024, 8, 16, 0, 0, 0, 0, time.UTC)},
		{model.PeriodTypeMonth, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)},
		{model.PeriodTypeHalfYear, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{model.PeriodTypeYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.periodType, func(t *testing.T) {
			start, err := PeriodStart(tt.periodType, model.PeriodAlignmentCalendar, now, time.Time{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, start)
		})
	}
}

func TestPeriodStart_CalendarWeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, 8, 25, 23, 0, 0, 0, time.UTC)
	start, err := PeriodStart(model.PeriodTypeWeek, model.PeriodAlignmentCalendar, sunday, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC), start)
}

func TestPeriodStart_Consent(t *testing.T) {
	anchor := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	start, err := PeriodStart(model.PeriodTypeDay, model.PeriodAlignmentConsent, time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC), anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC), start)

	start, err = PeriodStart(model.PeriodTypeWeek, model.PeriodAlignmentConsent, time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC), anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC), start)

	start, err = PeriodStart(model.PeriodTypeYear, model.PeriodAlignmentConsent, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), anchor)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC), start)

	start, err = PeriodStart(model.PeriodTypeMonth, model.PeriodAlignmentConsent, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), anchor)
	require.NoError(t, err)
	assert.Equal(t, anchor, start)
}

func TestPeriodStart_ConsentMonthEndAnchor(t *testing.T) {
	anchor := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		periodType string
		now        time.Time
		expected   time.Time
	}{
		{"early March stays in February window", model.PeriodTypeMonth,
			time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{"February window starts on last day", model.PeriodTypeMonth,
			time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{"before anchor time on the 31st", model.PeriodTypeMonth,
			time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC), time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)},
		{"after anchor time on the 31st", model.PeriodTypeMonth,
			time.Date(2024, 3, 31, 11, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)},
		{"April has 30 days", model.PeriodTypeMonth,
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC)},
		{"half year into a leap February", model.PeriodTypeHalfYear,
			time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := PeriodStart(tt.periodType, model.PeriodAlignmentConsent, tt.now, anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, start)
			assert.False(t, start.After(tt.now))
		})
	}
}

func TestPeriodStart_Unsupported(t *testing.T) {
	_, err := PeriodStart("Decade", model.PeriodAlignmentCalendar, time.Now(), time.Time{})
	assert.Error(t, err)

	_, err = PeriodStart(model.PeriodTypeDay, "Lunar", time.Now(), time.Time{})
	assert.Error(t, err)
}
