// Copyright 2026 The Kavorites Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics holds the prometheus collectors for the HTTP surface and
// the cluster scan, plus the handler instrumentation glue.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "kavorites_http_requests_total",
	Help: "Count of all HTTP requests",
}, []string{"code", "method"})

var httpRequestsDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kavorites_http_request_duration_seconds",
		Help:    "A histogram of latencies for requests.",
		Buckets: []float64{.005, .01, .025, .05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"method", "route"},
)

var (
	// ScansTotal counts cluster ingress scans, successful or not.
	ScansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kavorites_scans_total",
		Help: "Count of cluster ingress scans",
	})

	// ScanFailuresTotal counts scans that failed to list namespaces.
	ScanFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kavorites_scan_failures_total",
		Help: "Count of scans aborted by a namespace listing failure",
	})

	// NamespaceSkipsTotal counts namespaces skipped mid-scan because their
	// ingress listing failed.
	NamespaceSkipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kavorites_namespace_skips_total",
		Help: "Count of namespaces skipped because their ingress listing failed",
	})
)

// Register registers all kavorites collectors with the default prometheus
// registry. Call it once at startup.
func Register() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestsDuration)
	prometheus.MustRegister(ScansTotal)
	prometheus.MustRegister(ScanFailuresTotal)
	prometheus.MustRegister(NamespaceSkipsTotal)
}

// InstrumentHandler wraps the passed handler with prometheus duration and
// counter tracking under the given route label.
func InstrumentHandler(route string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		promhttp.InstrumentHandlerCounter(httpRequestsTotal, next).ServeHTTP(w, r)
		httpRequestsDuration.With(prometheus.Labels{"route": route, "method": r.Method}).Observe(time.Since(start).Seconds())
	}
}
