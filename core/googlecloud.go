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

package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/defaults"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/gcedeploy/gce-deleter/version"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleCloud Compute Engine APIへの接続設定
type GoogleCloud struct {
	// Credentials サービスアカウントキー(JSON文字列 or ファイルパス)
	Credentials *config.StringOrFilePath `yaml:"credentials"`
	// Project --project省略時に利用するプロジェクトID
	Project string `yaml:"project" validate:"omitempty,gce_project"`
	// Endpoint APIのベースURL、省略時はdefaults.ComputeEndpoint
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`
	// WithoutAuthentication trueの場合は認証を行わない(エミュレータなどへの接続用)
	WithoutAuthentication bool `yaml:"without_authentication"`

	strictMode bool
	service    *compute.Service
	initOnce   sync.Once
	initError  error
}

// ComputeService シングルトンなCompute Engine APIクライアントを返す
//
// Credentialsが空の場合はApplication Default Credentialsを利用する。ただしstrictモードではエラーとなる
func (gc *GoogleCloud) ComputeService(ctx context.Context) (*compute.Service, error) {
	gc.initOnce.Do(func() {
		if len(os.Getenv("GCE_DELETER_APPEND_USER_AGENT")) > defaults.MaxUserAgentSuffixLength {
			gc.initError = fmt.Errorf("GCE_DELETER_APPEND_USER_AGENT is too long: max=%d", defaults.MaxUserAgentSuffixLength)
			return
		}

		opts := []option.ClientOption{
			option.WithUserAgent(gc.userAgent()),
		}
		switch {
		case gc.WithoutAuthentication:
			opts = append(opts, option.WithoutAuthentication())
		case gc.Credentials != nil && !gc.Credentials.Empty():
			opts = append(opts, option.WithCredentialsJSON(gc.Credentials.Bytes()))
		case gc.strictMode:
			gc.initError = validate.Errorf("credentials: required in strict mode")
			return
		}
		opts = append(opts, option.WithEndpoint(gc.endpoint()))

		gc.service, gc.initError = compute.NewService(ctx, opts...)
	})
	return gc.service, gc.initError
}

func (gc *GoogleCloud) endpoint() string {
	if gc.Endpoint != "" {
		return gc.Endpoint
	}
	return defaults.ComputeEndpoint
}

func (gc *GoogleCloud) userAgent() string {
	return fmt.Sprintf(
		"gcedeploy/gce-deleter/v%s (%s/%s; +https://github.com/gcedeploy/gce-deleter) %s",
		version.Version,
		runtime.GOOS,
		runtime.GOARCH,
		os.Getenv("GCE_DELETER_APPEND_USER_AGENT"),
	)
}

// Validate APIクライアントが構築できること、Projectが指定されている場合はそのプロジェクトを参照できることを確認する
func (gc *GoogleCloud) Validate(ctx context.Context) error {
	svc, err := gc.ComputeService(ctx)
	if err != nil {
		return fmt.Errorf("initializing API Client failed: %w", err)
	}
	if gc.Project == "" {
		return nil
	}

	if _, err := svc.Projects.Get(gc.Project).Fields("name").Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
				return validate.Errorf("reading project %q failed: %s", gc.Project, apiErr.Message)
			}
		}
		return fmt.Errorf("reading project %q failed: unknown error: %w", gc.Project, err)
	}
	return nil
}
