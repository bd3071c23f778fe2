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

package types

import (
	"context"
	"fmt"
	"io"

	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/core"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "types [flags]...",
	Short: "list resource types that can be deleted",
	PreRunE: func(*cobra.Command, []string) error {
		return validate.Struct(param)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

type parameter struct {
	ConfigPath string `name:"--config" validate:"omitempty,file"`
}

var param = &parameter{}

func init() {
	Command.Flags().StringVar(&param.ConfigPath, "config", param.ConfigPath, "File path of configuration of gce-deleter")
}

func run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := core.NewConfigFromPath(config.NewLoadConfigContext(ctx, false), param.ConfigPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "\n"+core.NewGraph(c).Tree())
	return err
}
