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
	"context"
	"fmt"
	"io"

	"github.com/gcedeploy/gce-deleter/commands/flags"
	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/core"
	"github.com/gcedeploy/gce-deleter/defaults"
	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/log"
	"github.com/gcedeploy/gce-deleter/metrics"
	deleterotel "github.com/gcedeploy/gce-deleter/otel"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/goccy/go-yaml"
	"github.com/sacloud/go-otelsetup"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var Command = &cobra.Command{
	Use:   "delete <resource-type> <name> [flags]...",
	Short: "issue a delete request for a Compute Engine resource and print the pending operation",
	Args:  cobra.ExactArgs(2),
	PreRunE: flags.ValidateMultiFunc(true,
		func(*cobra.Command, []string) error {
			return validate.Struct(param)
		},
		flags.ValidateStrictModeFlags,
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout(), args[0], args[1])
	},
}

// parameter project/zone/nameの検証はResourceDeleter側で行う
type parameter struct {
	ConfigPath  string                   `name:"--config" validate:"omitempty,file"`
	Project     string                   `name:"--project"`
	Zone        string                   `name:"--zone"`
	Credentials *config.StringOrFilePath `name:"--credentials"`
}

var param = &parameter{
	Credentials: &config.StringOrFilePath{},
}

func init() {
	Command.Flags().StringVar(&param.ConfigPath, "config", param.ConfigPath, "File path of configuration of gce-deleter")
	Command.Flags().StringVarP(&param.Project, "project", "", param.Project, "Project ID of the target resource. If omitted, google.project in the configuration is used")
	Command.Flags().StringVarP(&param.Zone, "zone", "", param.Zone, "Zone of the target resource (e.g. us-central1-a)")
	Command.Flags().Var(param.Credentials, "credentials", "Service account key JSON or file path. Overrides google.credentials in the configuration")
	flags.SetStrictModeFlag(Command)
}

// output 削除リクエストの結果として標準出力に書き出す内容
type output struct {
	ResourceType string `yaml:"resource_type"`
	Project      string `yaml:"project"`
	Zone         string `yaml:"zone"`
	Name         string `yaml:"name"`
	Operation    string `yaml:"operation"`
	Status       string `yaml:"status"`
	SelfLink     string `yaml:"self_link,omitempty"`
	TargetLink   string `yaml:"target_link,omitempty"`
}

func run(parent context.Context, out io.Writer, resourceType, name string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, span := deleterotel.Tracer().Start(otelsetup.ContextForTrace(parent), "commands/delete#run",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gce-deleter.resource_type", resourceType),
			attribute.String("gce-deleter.name", name),
		),
	)
	defer span.End()

	logger := flags.NewLogger().With("from", "cli")

	c, err := core.NewConfigFromPath(config.NewLoadConfigContext(ctx, flags.StrictMode()), param.ConfigPath)
	if err != nil {
		return err
	}
	if !param.Credentials.Empty() {
		c.Google.Credentials = param.Credentials
	}

	op, err := deleteResource(ctx, c, logger, resourceType, name)
	if c.ExporterEnabled() {
		if exportErr := metrics.WriteToTextfile(c.ExporterConfig.TextfilePath()); exportErr != nil {
			logger.Warn("error", exportErr) //nolint:errcheck
		}
	}
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&output{
		ResourceType: op.ResourceType,
		Project:      op.Resource.Project,
		Zone:         op.Resource.Zone,
		Name:         op.Resource.Name,
		Operation:    op.Name,
		Status:       op.Status,
		SelfLink:     op.SelfLink,
		TargetLink:   op.TargetLink,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}

func deleteResource(ctx context.Context, c *core.Config, logger *log.Logger, resourceType, name string) (*deleters.Operation, error) {
	service, err := core.NewServiceFromConfig(ctx, c, defaults.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}
	return service.Delete(ctx, resourceType, c.ResourceID(param.Project, param.Zone, name))
}
