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

package defaults

import "time"

const (
	ConfigPath = "gce-deleter.yaml" // コンフィギュレーションのデフォルトファイルパス

	// ComputeEndpoint Compute Engine APIのデフォルトのベースURL
	ComputeEndpoint = "https://compute.googleapis.com/compute/v1/"

	ExporterTextfile = "gce_deleter.prom" // メトリクスを書き出すファイルのデフォルトパス

	RequestTimeout = 2 * time.Minute // 1回の削除リクエストに許容する時間
)

// MaxUserAgentSuffixLength GCE_DELETER_APPEND_USER_AGENTに指定可能な最大長
const MaxUserAgentSuffixLength = 1024
