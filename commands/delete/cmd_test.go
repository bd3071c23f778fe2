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

package delete

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/test"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fake *test.FakeCompute, textfile string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gce-deleter.yaml")
	body := fmt.Sprintf(`
google:
  project: %s
  endpoint: %s
  without_authentication: true
exporter_config:
  enabled: true
  textfile: %s
`, test.Project, fake.Endpoint(), textfile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func setParam(t *testing.T, p *parameter) {
	t.Helper()
	original := param
	param = p
	t.Cleanup(func() { param = original })
}

func TestRun(t *testing.T) {
	fake := test.NewFakeCompute(t)
	fake.SetStatus("projects/proj-1/zones/us-central1-a/instances/missing", http.StatusNotFound)
	textfile := filepath.Join(t.TempDir(), "gce_deleter.prom")
	configPath := writeConfig(t, fake, textfile)

	tests := []struct {
		name         string
		param        *parameter
		resourceType string
		resource     string
		wantPath     string
		wantOutput   []string
		wantErr      error
	}{
		{
			name:         "default project",
			param:        &parameter{ConfigPath: configPath, Zone: test.Zone, Credentials: &config.StringOrFilePath{}},
			resourceType: "autoscaler",
			resource:     "my-autoscaler",
			wantPath:     "projects/proj-1/zones/us-central1-a/autoscalers/my-autoscaler",
			wantOutput: []string{
				"resource_type: autoscaler",
				"project: proj-1",
				"name: my-autoscaler",
				"operation: operation-1700000000000-fake",
				"status: PENDING",
			},
		},
		{
			name:         "explicit project",
			param:        &parameter{ConfigPath: configPath, Project: "proj-2", Zone: test.Zone, Credentials: &config.StringOrFilePath{}},
			resourceType: "instance-group",
			resource:     "my-group",
			wantPath:     "projects/proj-2/zones/us-central1-a/instanceGroups/my-group",
			wantOutput:   []string{"resource_type: instance-group", "project: proj-2"},
		},
		{
			name:         "not found",
			param:        &parameter{ConfigPath: configPath, Zone: test.Zone, Credentials: &config.StringOrFilePath{}},
			resourceType: "instance",
			resource:     "missing",
			wantPath:     "projects/proj-1/zones/us-central1-a/instances/missing",
			wantErr:      deleters.ErrNotFound,
		},
		{
			name:         "missing zone",
			param:        &parameter{ConfigPath: configPath, Credentials: &config.StringOrFilePath{}},
			resourceType: "instance",
			resource:     "x",
			wantErr:      deleters.ErrInvalidArgument,
		},
		{
			name:         "unsupported type",
			param:        &parameter{ConfigPath: configPath, Zone: test.Zone, Credentials: &config.StringOrFilePath{}},
			resourceType: "disk",
			resource:     "x",
			wantErr:      deleters.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setParam(t, tt.param)
			before := len(fake.Requests())
			out := &bytes.Buffer{}

			err := run(context.Background(), out, tt.resourceType, tt.resource)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, out.String())
			} else {
				require.NoError(t, err)
				for _, line := range tt.wantOutput {
					require.Contains(t, out.String(), line)
				}
			}

			requests := fake.Requests()[before:]
			if tt.wantPath == "" {
				require.Empty(t, requests)
			} else {
				require.Equal(t, []test.Request{{Method: http.MethodDelete, Path: tt.wantPath}}, requests)
			}

			metrics, err := os.ReadFile(textfile)
			require.NoError(t, err)
			require.Contains(t, string(metrics), "gce_deleter_requests_total")
		})
	}
}
