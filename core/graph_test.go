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

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraph_Tree(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		enabled  []string
		disabled []string
	}{
		{
			name:    "default",
			config:  &Config{},
			enabled: []string{"autoscaler (zonal)", "instance-group-manager (zonal)", "instance-group (zonal)", "instance (zonal)"},
		},
		{
			name: "disabled",
			config: &Config{
				DeletersConfig: &DeletersConfig{
					Deleters: map[string]*DeleterConfig{
						"instance": {Disabled: true},
					},
				},
			},
			enabled:  []string{"autoscaler (zonal)", "instance-group-manager (zonal)", "instance-group (zonal)"},
			disabled: []string{"instance (zonal)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGraph(tt.config).Tree()
			lines := strings.Split(strings.TrimSpace(got), "\n")
			require.True(t, strings.HasPrefix(lines[0], "gce-deleter v"))

			section := ""
			actual := map[string][]string{}
			for _, line := range lines[1:] {
				label := strings.TrimLeft(line, "│├└─ ")
				if label == "enabled" || label == "disabled" {
					section = label
					continue
				}
				actual[section] = append(actual[section], label)
			}
			require.Equal(t, tt.enabled, actual["enabled"])
			require.Equal(t, tt.disabled, actual["disabled"])
		})
	}
}
