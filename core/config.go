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
	"fmt"
	"io"
	"os"

	"github.com/gcedeploy/gce-deleter/config"
	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/deleters/builtins"
	"github.com/gcedeploy/gce-deleter/log"
	"github.com/gcedeploy/gce-deleter/validate"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
)

// Config gce-deleterの起動時に与えられるコンフィギュレーションを保持する
type Config struct {
	Google         *GoogleCloud           `yaml:"google"`          // Compute Engine APIへの接続設定
	DeletersConfig *DeletersConfig        `yaml:"deleters_config"` // ビルトインのResourceDeleterの設定
	ExporterConfig *config.ExporterConfig `yaml:"exporter_config"` // メトリクス出力の設定
}

// NewConfigFromPath 指定のファイルパスからコンフィギュレーションを読み取ってConfigを作成する
//
// filePathが空の場合はデフォルト値を持つConfigを返す
func NewConfigFromPath(ctx context.Context, filePath string) (*Config, error) {
	if filePath == "" {
		return LoadConfig(ctx, nil)
	}

	reader, err := os.Open(filePath)
	if err != nil {
		return nil, errwrap.Wrapf(fmt.Sprintf("opening configuration file failed: %s error: {{err}}", filePath), err)
	}
	defer reader.Close()

	return LoadConfig(ctx, reader)
}

// LoadConfig readerからコンフィギュレーションを読み取ってConfigを作成する
//
// ctxがstrictモードの場合、Application Default Credentialsへのフォールバックを行わない
func LoadConfig(ctx context.Context, reader io.Reader) (*Config, error) {
	c := &Config{}
	if reader != nil {
		if err := c.load(reader); err != nil {
			return nil, err
		}
	}
	if c.Google == nil {
		c.Google = &GoogleCloud{}
	}
	c.Google.strictMode = config.StrictMode(ctx)
	return c, nil
}

func (c *Config) load(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return errwrap.Wrapf("loading configuration failed: {{err}}", err)
	}
	if err := yaml.UnmarshalWithOptions(data, c, yaml.Strict()); err != nil {
		return fmt.Errorf("%s", yaml.FormatError(err, false, true))
	}
	return nil
}

// ResourceID 引数からResourceIDを組み立てる。projectが空の場合はgoogle.projectの値を利用する
func (c *Config) ResourceID(project, zone, name string) deleters.ResourceID {
	if project == "" && c.Google != nil {
		project = c.Google.Project
	}
	return deleters.ResourceID{Project: project, Zone: zone, Name: name}
}

// Deleters 有効なビルトインResourceDeleterのリストを返す
//
// 各ResourceDeleterはAPIクライアントが注入され、ログ出力/メトリクスを担当するbuiltins.Deleterでラップされた状態で返される
func (c *Config) Deleters(ctx context.Context, logger *log.Logger) ([]deleters.ResourceDeleter, error) {
	client, err := c.Google.ComputeService(ctx)
	if err != nil {
		return nil, err
	}

	var results []deleters.ResourceDeleter
	for _, d := range BuiltinDeleters(client) {
		if c.deleterDisabled(d.Name()) {
			continue
		}
		results = append(results, builtins.Wrap(d, logger))
	}
	return results, nil
}

func (c *Config) deleterDisabled(name string) bool {
	conf := c.DeletersConfig
	if conf == nil {
		return false
	}
	// 全体が無効にされているか?
	if conf.Disabled {
		return true
	}
	// 個別に無効にされているか?
	if v, ok := conf.Deleters[name]; ok && v != nil {
		return v.Disabled
	}
	return false
}

// ExporterEnabled メトリクスのファイル出力が有効か
func (c *Config) ExporterEnabled() bool {
	return c.ExporterConfig != nil && c.ExporterConfig.Enabled
}

// Validate 現在のConfig値のバリデーション
func (c *Config) Validate(ctx context.Context) error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	errors := &multierror.Error{}

	if err := c.Google.Validate(ctx); err != nil {
		errors = multierror.Append(errors, err)
	}
	if errs := c.DeletersConfig.Validate(ctx); len(errs) > 0 {
		errors = multierror.Append(errors, errs...)
	}

	enabled := 0
	for _, name := range BuiltinDeleterNames() {
		if !c.deleterDisabled(name) {
			enabled++
		}
	}
	if enabled == 0 {
		errors = multierror.Append(errors, fmt.Errorf("one or more deleters are required"))
	}

	return errors.ErrorOrNil()
}

// DeletersConfig ビルトインResourceDeleter全体の設定
type DeletersConfig struct {
	Disabled bool                      `yaml:"disabled"` // trueの場合全てのResourceDeleterを無効にする
	Deleters map[string]*DeleterConfig `yaml:"deleters"` // リソース種別ごとの設定、ResourceDeleter.Name()をキーにもつ
}

// Validate Deletersのキーが存在するリソース種別であることを確認する
func (c *DeletersConfig) Validate(context.Context) []error {
	if c == nil {
		return nil
	}
	errors := &multierror.Error{}
	names := BuiltinDeleterNames()
	for name := range c.Deleters {
		exist := false
		for _, n := range names {
			if n == name {
				exist = true
				break
			}
		}
		if !exist {
			errors = multierror.Append(errors, validate.Errorf("deleters_config: invalid key: %s", name))
		}
	}
	return errors.Errors
}

// DeleterConfig リソース種別ごとの設定
type DeleterConfig struct {
	Disabled bool `yaml:"disabled"`
}
