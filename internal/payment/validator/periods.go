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
	"fmt"
	"time"

	"github.com/wso2/ob-consent-enforcement/internal/payment/model"
)

// PeriodStart returns the start of the periodic limit window containing now. Calendar windows
// start at UTC midnight on the first day of the week (Monday), fortnight (1st or 16th), month,
// half year or year. Consent windows repeat every period from anchor.
func PeriodStart(periodType, periodAlignment string, now, anchor time.Time) (time.Time, error) {
	now = now.UTC()
	switch periodAlignment {
	case model.PeriodAlignmentCalendar:
		return calendarPeriodStart(periodType, now)
	case model.PeriodAlignmentConsent:
		return consentPeriodStart(periodType, now, anchor.UTC())
	default:
		return time.Time{}, fmt.Errorf("unsupported period alignment %q", periodAlignment)
	}
}

func calendarPeriodStart(periodType string, now time.Time) (time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch periodType {
	case model.PeriodTypeDay:
		return midnight, nil
	case model.PeriodTypeWeek:
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), nil
	case model.PeriodTypeFortnight:
		day := 1
		if now.Day() > 15 {
			day = 16
		}
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC), nil
	case model.PeriodTypeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	case model.PeriodTypeHalfYear:
		month := time.January
		if now.Month() >= time.July {
			month = time.July
		}
		return time.Date(now.Year(), month, 1, 0, 0, 0, 0, time.UTC), nil
	case model.PeriodTypeYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported period type %q", periodType)
	}
}

func consentPeriodStart(periodType string, now, anchor time.Time) (time.Time, error) {
	if now.Before(anchor) {
		return anchor, nil
	}

	var days, months int
	switch periodType {
	case model.PeriodTypeDay:
		days = 1
	case model.PeriodTypeWeek:
		days = 7
	case model.PeriodTypeFortnight:
		days = 14
	case model.PeriodTypeMonth:
		months = 1
	case model.PeriodTypeHalfYear:
		months = 6
	case model.PeriodTypeYear:
		months = 12
	default:
		return time.Time{}, fmt.Errorf("unsupported period type %q", periodType)
	}

	if days > 0 {
		period := time.Duration(days) * 24 * time.Hour
		elapsed := now.Sub(anchor) / period
		return anchor.Add(elapsed * period), nil
	}

	elapsedMonths := (now.Year()-anchor.Year())*12 + int(now.Month()-anchor.Month())
	n := elapsedMonths / months
	start := addMonthsClamped(anchor, n*months)
	for n > 0 && start.After(now) {
		n--
		start = addMonthsClamped(anchor, n*months)
	}
	return start, nil
}

// addMonthsClamped adds months to t keeping the day within the target month, so a 31st anchor
// falls on the last day of shorter months.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return first.AddDate(0, 0, day-1)
}
