/*
Copyright 2025 The rulesolver Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics exposes Prometheus instrumentation for solve activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rulesolver_solves_total",
		Help: "Number of solve attempts partitioned by terminal status.",
	}, []string{"status"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rulesolver_solve_duration_seconds",
		Help:    "Wall-clock duration of solve attempts.",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveSolve records the outcome and duration of one solve attempt.
func ObserveSolve(status string, elapsed time.Duration) {
	solvesTotal.WithLabelValues(status).Inc()
	solveDuration.Observe(elapsed.Seconds())
}
