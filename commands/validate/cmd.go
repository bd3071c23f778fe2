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
	"context"
	"fmt"
	"io"

	"github.com/gcedeploy/gce-deleter/commands/flags"
	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/core"
	"github.com/gcedeploy/gce-deleter/defaults"
	deleterotel "github.com/gcedeploy/gce-deleter/otel"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/sacloud/go-otelsetup"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
)

var Command = &cobra.Command{
	Use:   "validate [flags]...",
	Short: "validate gce-deleter's configuration",
	PreRunE: flags.ValidateMultiFunc(true,
		func(*cobra.Command, []string) error {
			return validate.Struct(param)
		},
		flags.ValidateStrictModeFlags,
	),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

type parameter struct {
	ConfigPath string `name:"--config" validate:"required,file"`
}

var param = &parameter{
	ConfigPath: defaults.ConfigPath,
}

func init() {
	Command.Flags().StringVar(&param.ConfigPath, "config", param.ConfigPath, "File path of configuration of gce-deleter")
	flags.SetStrictModeFlag(Command)
}

func run(parent context.Context, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, span := deleterotel.Tracer().Start(otelsetup.ContextForTrace(parent), "commands/validate#run",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	c, err := core.NewConfigFromPath(config.NewLoadConfigContext(ctx, flags.StrictMode()), param.ConfigPath)
	if err != nil {
		return err
	}
	if err := c.Validate(ctx); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, "OK")
	return err
}
