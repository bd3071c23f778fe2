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

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*StringOrFilePath)(nil)

// StringOrFilePath 文字列 or ファイルパス
//
// サービスアカウントキーのJSONを直接記載するか、キーファイルのパスを指定するために利用する。
// ファイルパスを指定した場合、ファイルのデータがメモリ内に保持される
type StringOrFilePath struct {
	content    string
	isFilePath bool
}

func NewStringOrFilePath(s string) (*StringOrFilePath, error) {
	v := &StringOrFilePath{}
	if err := v.Set(s); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *StringOrFilePath) UnmarshalYAML(data []byte) error {
	var s string
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}
	return v.Set(s)
}

// Set pflag.Value実装
//
// sがファイルとして読み取れる場合はその内容を、そうでない場合はsそのものを保持する
func (v *StringOrFilePath) Set(s string) error {
	path, err := homedir.Expand(s)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		// ファイル不存在以外のエラー(権限不足など)も文字列として扱う
		v.content = s
		v.isFilePath = false
		return nil
	}
	v.content = string(content)
	v.isFilePath = true
	return nil
}

// Type pflag.Value実装
func (v *StringOrFilePath) Type() string {
	return "string-or-file"
}

// String Stringer実装
//
// ログなどへの出力を考慮し、内容ではなく種別のみを返す
func (v *StringOrFilePath) String() string {
	switch {
	case v == nil || v.Empty():
		return ""
	case v.isFilePath:
		return "(file)"
	default:
		return "(inline)"
	}
}

// Bytes 保持している内容を返す
func (v *StringOrFilePath) Bytes() []byte {
	return []byte(v.content)
}

// Empty vの文字列、またはvがファイルパスの場合はファイルの内容が空だった場合にtrueを返す
func (v *StringOrFilePath) Empty() bool {
	return v.content == ""
}

// IsFilePath vの文字列がファイルパスであるかの判定結果を返す
func (v *StringOrFilePath) IsFilePath() bool {
	return v.isFilePath
}
