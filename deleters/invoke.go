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
	"context"
	"errors"

	"google.golang.org/api/compute/v1"
)

var errClientNotConfigured = errors.New("compute client is not configured")

// DeleteCallFunc Compute Engine APIの削除呼び出し1回分を表すfunc
type DeleteCallFunc func(ctx context.Context, client *compute.Service, id ResourceID) (*compute.Operation, error)

// ComputeClient Compute Engine APIクライアントを保持し、削除呼び出しの共通処理を提供する
//
// 各リソース種別の実装はこれを埋め込んで利用する
type ComputeClient struct {
	client *compute.Service
}

// NewComputeClient 注入されたクライアントを保持するComputeClientを返す
func NewComputeClient(client *compute.Service) ComputeClient {
	return ComputeClient{client: client}
}

// ComputeService 保持しているクライアントを返す
func (c *ComputeClient) ComputeService() *compute.Service {
	return c.client
}

// Invoke idのバリデーション後、callを1回だけ実行してOperationを返す
//
// バリデーションエラーの場合はcallを実行しない
func (c *ComputeClient) Invoke(ctx context.Context, resourceType string, id ResourceID, call DeleteCallFunc) (*Operation, error) {
	if err := id.Validate(); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.ResourceType = resourceType
		}
		return nil, err
	}
	if c.client == nil {
		return nil, &Error{Kind: ErrClient, ResourceType: resourceType, Resource: id, Err: errClientNotConfigured}
	}

	op, err := call(ctx, c.client, id)
	if err != nil {
		return nil, classify(resourceType, id, err)
	}
	if op == nil {
		return nil, &Error{Kind: ErrClient, ResourceType: resourceType, Resource: id, Err: errors.New("got empty operation")}
	}
	return newOperation(resourceType, id, op), nil
}
