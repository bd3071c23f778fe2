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

package version

import "fmt"

var (
	// Version app version
	Version = "0.1.0"
	// Revision git commit short commit hash
	Revision = "xxxxxx" // set on build by goreleaser
)

// FullVersion バージョン+リビジョンを返す
func FullVersion() string {
	return fmt.Sprintf("%s, build %s", Version, Revision)
}
