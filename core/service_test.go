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
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/test"
	"github.com/stretchr/testify/require"
)

func TestService_Delete(t *testing.T) {
	fake := test.NewFakeCompute(t)
	fake.SetStatus("projects/proj-1/zones/us-central1-a/instanceGroupManagers/missing", http.StatusNotFound)

	service, err := NewServiceFromConfig(context.Background(), testConfig(t, fake, ""), time.Minute, test.Logger)
	require.NoError(t, err)
	require.Equal(t, []string{"autoscaler", "instance-group-manager", "instance-group", "instance"}, service.ResourceTypes())

	tests := []struct {
		name         string
		resourceType string
		id           deleters.ResourceID
		wantPath     string
		wantErr      error
	}{
		{
			name:         "autoscaler",
			resourceType: "autoscaler",
			id:           deleters.ResourceID{Project: "proj-1", Zone: "us-central1-a", Name: "my-autoscaler"},
			wantPath:     "projects/proj-1/zones/us-central1-a/autoscalers/my-autoscaler",
		},
		{
			name:         "instance group manager not found",
			resourceType: "instance-group-manager",
			id:           deleters.ResourceID{Project: "proj-1", Zone: "us-central1-a", Name: "missing"},
			wantPath:     "projects/proj-1/zones/us-central1-a/instanceGroupManagers/missing",
			wantErr:      deleters.ErrNotFound,
		},
		{
			name:         "invalid argument",
			resourceType: "autoscaler",
			id:           deleters.ResourceID{Project: "", Zone: "us-central1-a", Name: "x"},
			wantErr:      deleters.ErrInvalidArgument,
		},
		{
			name:         "unsupported resource type",
			resourceType: "region-autoscaler",
			id:           deleters.ResourceID{Project: "proj-1", Zone: "us-central1-a", Name: "x"},
			wantErr:      deleters.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(fake.Requests())

			op, err := service.Delete(context.Background(), tt.resourceType, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, op)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.id, op.Resource)
			}

			requests := fake.Requests()[before:]
			if tt.wantPath == "" {
				require.Empty(t, requests)
				return
			}
			require.Equal(t, []test.Request{{Method: http.MethodDelete, Path: tt.wantPath}}, requests)
		})
	}
}

func TestNewService_duplicatedName(t *testing.T) {
	fake := test.NewFakeCompute(t)
	ds := BuiltinDeleters(fake.Service(t))

	service := NewService(append(ds, ds[0]), 0, nil)
	require.Len(t, service.ResourceTypes(), len(ds))

	d, ok := service.Deleter("autoscaler")
	require.True(t, ok)
	require.Equal(t, "autoscaler", d.Name())
}
