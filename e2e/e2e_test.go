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

//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gcedeploy/gce-deleter/test"
)

const (
	receivedMarker = `deleter=autoscaler status=received`
	acceptedMarker = `deleter=autoscaler status=accepted operation=operation-1700000000000-fake`
	notFoundMarker = `deleter=instance status=not_found`
	operationLine  = `operation: operation-1700000000000-fake`
)

var e2eTestTimeout = 1 * time.Minute

// runDeleter gce-deleterコマンドを実行し、終了コードを返す
//
// gce-deleterコマンドはPATH上に存在している必要がある
func runDeleter(t *testing.T, output *Output, args ...string) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), e2eTestTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "gce-deleter", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatal(err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.Fatal(err)
	}
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		output.CollectOutputs("[stdout]", stdout)
	}()
	go func() {
		defer wg.Done()
		output.CollectOutputs("[stderr]", stderr)
	}()
	wg.Wait()

	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		output.FatalWithStderrOutputs(t, err)
		return -1
	}
}

func writeConfig(t *testing.T, fake *test.FakeCompute) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gce-deleter.yaml")
	body := fmt.Sprintf("google:\n  project: %s\n  endpoint: %s\n  without_authentication: true\n", test.Project, fake.Endpoint())
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestE2E(t *testing.T) {
	fake := test.NewFakeCompute(t)
	fake.SetStatus("projects/proj-1/zones/us-central1-a/instances/missing", http.StatusNotFound)
	configPath := writeConfig(t, fake)

	t.Run("validate", func(t *testing.T) {
		output := &Output{}
		if code := runDeleter(t, output, "validate", "--config", configPath); code != 0 {
			output.FatalWithStderrOutputs(t, "validate exited with", code)
		}
		if !output.IsMarkerExistInOutputs("OK") {
			output.FatalWithStderrOutputs(t, "OK is not printed")
		}
	})

	t.Run("delete autoscaler", func(t *testing.T) {
		output := &Output{}
		code := runDeleter(t, output, "delete", "autoscaler", "my-autoscaler", "--zone", test.Zone, "--config", configPath)
		if code != 0 {
			output.FatalWithStderrOutputs(t, "delete exited with", code)
		}
		for _, marker := range []string{receivedMarker, acceptedMarker, operationLine} {
			if !output.IsMarkerExistInOutputs(marker) {
				output.FatalWithStderrOutputs(t, "marker not found:", marker)
			}
		}
	})

	t.Run("delete missing instance", func(t *testing.T) {
		output := &Output{}
		code := runDeleter(t, output, "delete", "instance", "missing", "--zone", test.Zone, "--config", configPath)
		if code != 3 {
			output.FatalWithStderrOutputs(t, "unexpected exit code:", code)
		}
		if !output.IsMarkerExistInOutputs(notFoundMarker) {
			output.FatalWithStderrOutputs(t, "marker not found:", notFoundMarker)
		}
	})

	t.Run("delete with empty zone", func(t *testing.T) {
		output := &Output{}
		code := runDeleter(t, output, "delete", "autoscaler", "x", "--config", configPath)
		if code != 2 {
			output.FatalWithStderrOutputs(t, "unexpected exit code:", code)
		}
	})
}
