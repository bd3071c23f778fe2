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

package commands

import (
	"context"
	"errors"
	"log"
	"os"

	cmdDelete "github.com/gcedeploy/gce-deleter/commands/delete"
	"github.com/gcedeploy/gce-deleter/commands/flags"
	"github.com/gcedeploy/gce-deleter/commands/types"
	"github.com/gcedeploy/gce-deleter/commands/validate"
	cmdVersion "github.com/gcedeploy/gce-deleter/commands/version"
	"github.com/gcedeploy/gce-deleter/deleters"
	deleterotel "github.com/gcedeploy/gce-deleter/otel"
	"github.com/gcedeploy/gce-deleter/version"
	"github.com/sacloud/go-otelsetup"
	"github.com/spf13/cobra"
)

const (
	ExitCodeError           = 1
	ExitCodeInvalidArgument = 2
	ExitCodeNotFound        = 3
)

var rootCmd = &cobra.Command{
	Use:               "gce-deleter",
	Short:             "gce-deleter issues delete requests for Compute Engine resources",
	PersistentPreRunE: flags.ValidateLogFlags,
	SilenceUsage:      true,
	SilenceErrors:     false,
	Version:           "v" + version.Version,
}

var subCommands = []*cobra.Command{
	cmdDelete.Command,
	validate.Command,
	types.Command,
	cmdVersion.Command,
}

func init() {
	flags.SetLogFlags(rootCmd)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(subCommands...)
}

func Execute() {
	if err := execute(); err != nil {
		os.Exit(ExitCode(err))
	}
}

// ExitCode errに対応する終了コードを返す
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, deleters.ErrInvalidArgument):
		return ExitCodeInvalidArgument
	case errors.Is(err, deleters.ErrNotFound):
		return ExitCodeNotFound
	default:
		return ExitCodeError
	}
}

func execute() (err error) {
	// initialize otel SDK
	otelShutdown, err := otelsetup.Init(context.Background(), deleterotel.AppName, version.Version)
	if err != nil {
		log.Println("Error in initializing OTel SDK: " + err.Error())
		return err
	}
	defer func() {
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			log.Println("Error in shutting down OTel SDK: " + shutdownErr.Error())
			err = errors.Join(err, shutdownErr)
		}
	}()

	return rootCmd.Execute()
}
