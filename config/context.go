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

package config

import "context"

type loadConfigKey struct{}

// LoadConfigOption コンフィグのロードオプション
type LoadConfigOption struct {
	// Strict trueの場合、Application Default Credentialsへのフォールバックを行わない
	Strict bool
}

// NewLoadConfigContext ロードオプションを保持するcontext.Contextを返す
func NewLoadConfigContext(ctx context.Context, strict bool) context.Context {
	return context.WithValue(ctx, loadConfigKey{}, &LoadConfigOption{Strict: strict})
}

// StrictMode ctxがstrictモードを指定されていればtrueを返す
func StrictMode(ctx context.Context) bool {
	if opt, ok := ctx.Value(loadConfigKey{}).(*LoadConfigOption); ok {
		return opt.Strict
	}
	return false
}
