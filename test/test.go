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

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gcedeploy/gce-deleter/log"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

var (
	Project = "proj-1"
	Zone    = "us-central1-a"

	Logger = log.NewLogger(&log.LoggerOption{
		Writer:    os.Stderr,
		JSON:      false,
		TimeStamp: true,
		Caller:    true,
		Level:     log.LevelDebug,
	})
)

// Request FakeComputeが受け付けたリクエスト
type Request struct {
	Method string
	Path   string // /compute/v1/を除いたパス
}

// FakeCompute Compute Engine APIのRESTエンドポイントを模したhttptestサーバ
//
// DELETEリクエストに対してPENDING状態のcompute#operationを、projects/{project}へのGETに対してプロジェクトを返す
type FakeCompute struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []Request
	statuses map[string]int
}

// NewFakeCompute FakeComputeを起動する。テスト終了時に停止される
func NewFakeCompute(t *testing.T) *FakeCompute {
	t.Helper()
	f := &FakeCompute{statuses: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Server.Close)
	return f
}

// Endpoint クライアントに指定するベースURL
func (f *FakeCompute) Endpoint() string {
	return f.Server.URL + "/compute/v1/"
}

// Service FakeComputeに接続するcompute.Serviceを返す
func (f *FakeCompute) Service(t *testing.T) *compute.Service {
	t.Helper()
	svc, err := compute.NewService(context.Background(),
		option.WithEndpoint(f.Endpoint()),
		option.WithoutAuthentication(),
		option.WithHTTPClient(f.Server.Client()),
	)
	if err != nil {
		t.Fatal(err)
	}
	return svc
}

// SetStatus pathへのリクエストに対し、指定のステータスコードのエラーを返すようにする
func (f *FakeCompute) SetStatus(path string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[path] = code
}

// Requests 受け付けたリクエストのリストを返す
func (f *FakeCompute) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request{}, f.requests...)
}

func (f *FakeCompute) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/compute/v1/")

	f.mu.Lock()
	f.requests = append(f.requests, Request{Method: r.Method, Path: path})
	code, hasStatus := f.statuses[path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if hasStatus {
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"error": map[string]interface{}{
				"code":    code,
				"message": fmt.Sprintf("%s: %s", http.StatusText(code), path),
				"errors": []map[string]interface{}{
					{"domain": "global", "reason": reason(code), "message": http.StatusText(code)},
				},
			},
		})
		return
	}

	parts := strings.Split(path, "/")
	if r.Method == http.MethodGet && len(parts) == 2 && parts[0] == "projects" {
		json.NewEncoder(w).Encode(map[string]interface{}{"name": parts[1]}) //nolint:errcheck
		return
	}
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// projects/{project}/zones/{zone}/{collection}/{name}
	zone := ""
	if len(parts) >= 4 {
		zone = strings.Join(parts[:4], "/")
	}
	json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
		"kind":          "compute#operation",
		"id":            "4417512640341412431",
		"name":          "operation-1700000000000-fake",
		"operationType": "delete",
		"status":        "PENDING",
		"progress":      0,
		"zone":          f.Endpoint() + zone,
		"targetLink":    f.Endpoint() + path,
		"selfLink":      f.Endpoint() + zone + "/operations/operation-1700000000000-fake",
	})
}

func reason(code int) string {
	switch code {
	case http.StatusNotFound:
		return "notFound"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusUnauthorized:
		return "authError"
	}
	return "backendError"
}
