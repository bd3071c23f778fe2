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

package flags

import (
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/spf13/cobra"
)

type strictModeFlags struct {
	Strict bool `name:"--strict"`
}

var strictMode = &strictModeFlags{}

func SetStrictModeFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&strictMode.Strict, "strict", "", strictMode.Strict, "Refuse to fall back to Application Default Credentials when no credentials are configured")
}

func ValidateStrictModeFlags(*cobra.Command, []string) error {
	return validate.Struct(strictMode)
}

func StrictMode() bool {
	return strictMode.Strict
}
