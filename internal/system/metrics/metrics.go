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

// Package metrics exposes the engine's prometheus collectors.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values for submissions.
const (
	OutcomeCreated  = "created"
	OutcomeReplayed = "replayed"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the collectors the engine updates.
type Metrics struct {
	registry *prometheus.Registry

	ValidationFailures *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	ReplayCacheLookups *prometheus.CounterVec
	RedactedRecords    *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// New creates a fresh set of collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ob_consent",
			Name:      "validation_failures_total",
			Help:      "Validation entries produced by consent request validation, by product and code.",
		}, []string{"product", "code"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ob_consent",
			Name:      "submissions_total",
			Help:      "Payment submissions handled, by product and outcome.",
		}, []string{"product", "outcome"}),
		ReplayCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ob_consent",
			Name:      "replay_cache_lookups_total",
			Help:      "Idempotency replay cache lookups, by result.",
		}, []string{"result"}),
		RedactedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ob_consent",
			Name:      "redacted_records_total",
			Help:      "Account data records passed through the permission redactor, by resource class.",
		}, []string{"resource"}),
	}
	reg.MustRegister(m.ValidationFailures, m.Submissions, m.ReplayCacheLookups, m.RedactedRecords)
	return m
}

// Get returns the process wide metrics.
func Get() *Metrics {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
