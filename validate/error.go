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

import "fmt"

// Error バリデーションエラー
//
// 入力値の不備を示す。APIの呼び出し失敗などとは区別して扱う
type Error struct {
	message string
}

// Errorf 指定のフォーマットでバリデーションエラーを生成する
func Errorf(format string, args ...interface{}) error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Error error実装
func (e *Error) Error() string {
	return e.message
}
