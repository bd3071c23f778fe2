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

package config

import "github.com/gcedeploy/gce-deleter/defaults"

// ExporterConfig メトリクス出力の設定
//
// gce-deleterは常駐しないため、node_exporterのtextfile collectorが読み取るファイルへ書き出す
type ExporterConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile" validate:"omitempty,filepath"`
}

// TextfilePath Textfileが空の場合はデフォルト値(defaults.ExporterTextfile)を、そうでなければTextfileを返す
func (c *ExporterConfig) TextfilePath() string {
	if c.Textfile == "" {
		return defaults.ExporterTextfile
	}
	return c.Textfile
}
