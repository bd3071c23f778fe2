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
	"fmt"
	"os"
	"strings"

	"github.com/gcedeploy/gce-deleter/log"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/spf13/cobra"
)

type logFlags struct {
	LogLevel  string `name:"--log-level" validate:"required"`
	LogFormat string `name:"--log-format" validate:"required,oneof=logfmt json"`
}

var logs = &logFlags{
	LogLevel:  "info",
	LogFormat: "logfmt",
}

func SetLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&logs.LogLevel, "log-level", "", logs.LogLevel, fmt.Sprintf("Level of logging to be output. options: [ %s ]", levelOptions()))
	cmd.PersistentFlags().StringVarP(&logs.LogFormat, "log-format", "", logs.LogFormat, "Format of logging to be output. options: [ logfmt | json ]")
}

func ValidateLogFlags(*cobra.Command, []string) error {
	if err := validate.Struct(logs); err != nil {
		return err
	}
	if _, err := log.ParseLevel(logs.LogLevel); err != nil {
		return validate.Errorf("--log-level: %s", err)
	}
	return nil
}

func levelOptions() string {
	var options []string
	for _, l := range log.Levels {
		options = append(options, string(l))
	}
	return strings.Join(options, " | ")
}

func NewLogger() *log.Logger {
	return log.NewLogger(&log.LoggerOption{
		Writer:    os.Stderr,
		JSON:      logs.LogFormat == "json",
		TimeStamp: true,
		Caller:    false,
		Level:     log.Level(logs.LogLevel),
	})
}
