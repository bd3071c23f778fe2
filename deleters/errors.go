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

package deleters

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrInvalidArgument 識別子が不正なためAPIを呼び出さなかった
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 削除対象のリソースが存在しない
	ErrNotFound = errors.New("not found")
	// ErrClient 認証エラーやネットワークエラーなどによりAPI呼び出しが失敗した
	ErrClient = errors.New("client error")
)

// Error 削除処理で発生したエラー
//
// KindはErrInvalidArgument/ErrNotFound/ErrClientのいずれか、Errは元のエラーを保持する
type Error struct {
	Kind         error
	ResourceType string
	Resource     ResourceID
	Err          error
}

func (e *Error) Error() string {
	target := e.ResourceType
	if target == "" {
		target = "resource"
	}
	return fmt.Sprintf("deleting %s %s failed: %s: %s", target, e.Resource, e.Kind, e.Err)
}

// Is errors.Is対応
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap errors.Unwrap対応
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound errがErrNotFoundであればtrueを返す
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument errがErrInvalidArgumentであればtrueを返す
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// classify APIからのエラーをErrNotFoundまたはErrClientに分類する
func classify(resourceType string, id ResourceID, err error) error {
	kind := ErrClient
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		kind = ErrNotFound
	}
	return &Error{Kind: kind, ResourceType: resourceType, Resource: id, Err: err}
}
