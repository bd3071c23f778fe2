// Copyright 2024-2026 The gce-deleter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultAccepted        = "accepted"
	ResultInvalidArgument = "invalid_argument"
	ResultNotFound        = "not_found"
	ResultClientError     = "client_error"
)

// Registry gce-deleterのメトリクスを保持するレジストリ
var Registry = prometheus.NewRegistry()

var (
	requests = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "gce_deleter_requests_total",
		Help: "The total number of delete requests",
	}, []string{"resource_type", "result"})

	durations = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gce_deleter_request_duration_seconds",
		Help:    "Duration of delete requests to the Compute Engine API",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource_type"})
)

// InitRequestCount resourceTypeのカウンタを0で初期化する
func InitRequestCount(resourceType string) {
	for _, result := range []string{ResultAccepted, ResultInvalidArgument, ResultNotFound, ResultClientError} {
		requests.WithLabelValues(resourceType, result)
	}
}

// ObserveRequest gce_deleter_requests_totalをインクリメントし、処理時間を記録する
func ObserveRequest(resourceType, result string, elapsed time.Duration) {
	requests.WithLabelValues(resourceType, result).Inc()
	durations.WithLabelValues(resourceType).Observe(elapsed.Seconds())
}

// WriteToTextfile node_exporterのtextfile collector向けにメトリクスをファイルへ書き出す
func WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
