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

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	Project string `name:"project" validate:"required,gce_project"`
	Zone    string `yaml:"zone" validate:"required,gce_zone"`
	Name    string `validate:"required,gce_name"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name   string
		in     *target
		errors []string
	}{
		{
			name: "valid",
			in:   &target{Project: "proj-1", Zone: "us-central1-a", Name: "my-autoscaler"},
		},
		{
			name: "numeric resource id",
			in:   &target{Project: "google.com:proj-1", Zone: "europe-west4-b", Name: "1234567890123"},
		},
		{
			name: "empty",
			in:   &target{},
			errors: []string{
				"project: required",
				"zone: required",
				"Name: required",
			},
		},
		{
			name: "malformed",
			in:   &target{Project: "P", Zone: "us-central1", Name: "My_Autoscaler"},
			errors: []string{
				`project: invalid project id: "P"`,
				`zone: invalid zone: "us-central1"`,
				`Name: invalid resource name: "My_Autoscaler"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := StructWithMultiError(tt.in)
			var got []string
			for _, err := range errs {
				var vErr *Error
				require.True(t, errors.As(err, &vErr))
				got = append(got, err.Error())
			}
			require.Equal(t, tt.errors, got)

			if len(tt.errors) == 0 {
				require.NoError(t, Struct(tt.in))
			} else {
				require.Error(t, Struct(tt.in))
			}
		})
	}
}

func TestIsZone(t *testing.T) {
	cases := map[string]bool{
		"us-central1-a":             true,
		"europe-west4-b":            true,
		"northamerica-northeast1-c": true,
		"us-central1":               false,
		"us-central1-":              false,
		"US-CENTRAL1-A":             false,
		"":                          false,
	}
	for zone, want := range cases {
		require.Equal(t, want, IsZone(zone), zone)
	}
}

func TestRegionOf(t *testing.T) {
	require.Equal(t, "us-central1", RegionOf("us-central1-a"))
	require.Equal(t, "", RegionOf("us-central1"))
}
