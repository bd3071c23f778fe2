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

package deleters_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/deleters/autoscaler"
	"github.com/gcedeploy/gce-deleter/deleters/instance"
	"github.com/gcedeploy/gce-deleter/deleters/instancegroup"
	"github.com/gcedeploy/gce-deleter/deleters/instancegroupmanager"
	"github.com/gcedeploy/gce-deleter/test"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/compute/v1"
)

func TestResourceDeleters(t *testing.T) {
	tests := []struct {
		newFn      func(*compute.Service) deleters.ResourceDeleter
		name       string
		collection string
	}{
		{
			newFn:      func(c *compute.Service) deleters.ResourceDeleter { return autoscaler.New(c) },
			name:       "autoscaler",
			collection: "autoscalers",
		},
		{
			newFn:      func(c *compute.Service) deleters.ResourceDeleter { return instancegroupmanager.New(c) },
			name:       "instance-group-manager",
			collection: "instanceGroupManagers",
		},
		{
			newFn:      func(c *compute.Service) deleters.ResourceDeleter { return instancegroup.New(c) },
			name:       "instance-group",
			collection: "instanceGroups",
		},
		{
			newFn:      func(c *compute.Service) deleters.ResourceDeleter { return instance.New(c) },
			name:       "instance",
			collection: "instances",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := test.NewFakeCompute(t)
			deleter := tt.newFn(fake.Service(t))
			require.Equal(t, tt.name, deleter.Name())
			require.NotEmpty(t, deleter.Version())

			id := deleters.ResourceID{Project: test.Project, Zone: test.Zone, Name: "target-1"}
			op, err := deleter.Delete(context.Background(), id)
			require.NoError(t, err)
			require.Equal(t, id, op.Resource)
			require.Equal(t, tt.name, op.ResourceType)

			path := "projects/proj-1/zones/us-central1-a/" + tt.collection + "/target-1"
			require.Equal(t, []test.Request{{Method: http.MethodDelete, Path: path}}, fake.Requests())

			fake.SetStatus(path, http.StatusNotFound)
			_, err = deleter.Delete(context.Background(), id)
			require.True(t, deleters.IsNotFound(err))

			_, err = deleter.Delete(context.Background(), deleters.ResourceID{Zone: test.Zone, Name: "target-1"})
			require.True(t, deleters.IsInvalidArgument(err))
			require.Len(t, fake.Requests(), 2)
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &deleters.Error{
		Kind:         deleters.ErrClient,
		ResourceType: "autoscaler",
		Resource:     deleters.ResourceID{Project: "proj-1", Zone: "us-central1-a", Name: "my-autoscaler"},
		Err:          cause,
	}

	require.Equal(t,
		"deleting autoscaler {Project:proj-1, Zone:us-central1-a, Name:my-autoscaler} failed: client error: connection refused",
		err.Error(),
	)
	require.True(t, errors.Is(err, deleters.ErrClient))
	require.True(t, errors.Is(err, cause))
	require.False(t, errors.Is(err, deleters.ErrNotFound))
}

func TestResourceID(t *testing.T) {
	id := deleters.ResourceID{Project: "proj-1", Zone: "us-central1-a", Name: "my-autoscaler"}
	require.NoError(t, id.Validate())
	require.Equal(t, "us-central1", id.Region())

	err := deleters.ResourceID{Project: "", Zone: "us-central1-a", Name: "x"}.Validate()
	require.True(t, deleters.IsInvalidArgument(err))
	require.Contains(t, err.Error(), "project: required")
}

func TestOperation_Err(t *testing.T) {
	op := &deleters.Operation{
		Name:   "operation-1",
		Status: "DONE",
		Raw: &compute.Operation{
			Error: &compute.OperationError{
				Errors: []*compute.OperationErrorErrors{
					{Code: "RESOURCE_IN_USE_BY_ANOTHER_RESOURCE", Message: "in use"},
				},
			},
		},
	}
	require.True(t, op.Done())
	require.EqualError(t, op.Err(), "operation operation-1 failed: RESOURCE_IN_USE_BY_ANOTHER_RESOURCE: in use")
}
