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
	"fmt"

	"github.com/gcedeploy/gce-deleter/validate"
	"google.golang.org/api/compute/v1"
)

// ResourceDeleter リソース種別ごとの削除処理を表すインターフェース
//
// 実装は1回のDeleteにつき1回だけCompute Engine APIを呼び出す。リトライやオペレーションのポーリングは行わない
type ResourceDeleter interface {
	// Name リソース種別を表す短い名前を返す
	Name() string
	// Version バージョン情報を返す
	Version() string
	// Delete idで示されるリソースの削除をリクエストし、非同期オペレーションのハンドルを返す
	Delete(ctx context.Context, id ResourceID) (*Operation, error)
}

// ResourceID 削除対象のゾーンリソースを一意に示す識別子
type ResourceID struct {
	Project string `name:"project" validate:"required,gce_project"`
	Zone    string `name:"zone" validate:"required,gce_zone"`
	Name    string `name:"name" validate:"required,gce_name"`
}

// Validate 各フィールドのバリデーションを行う
//
// エラーはErrInvalidArgumentとしてerrors.Isで判定可能
func (id ResourceID) Validate() error {
	if err := validate.Struct(id); err != nil {
		return &Error{Kind: ErrInvalidArgument, Resource: id, Err: err}
	}
	return nil
}

// Region ゾーンが属するリージョン名を返す
func (id ResourceID) Region() string {
	return validate.RegionOf(id.Zone)
}

// String Stringer実装
func (id ResourceID) String() string {
	return fmt.Sprintf("{Project:%s, Zone:%s, Name:%s}", id.Project, id.Zone, id.Name)
}

// Operation Compute Engineが返した非同期オペレーションのハンドル
//
// 完了までのポーリングは呼び出し側の責務
type Operation struct {
	Resource     ResourceID // 削除をリクエストしたリソース
	ResourceType string     // ResourceDeleter.Name()の値
	Name         string
	Status       string // PENDING, RUNNING, DONE
	SelfLink     string
	TargetLink   string

	Raw *compute.Operation
}

func newOperation(resourceType string, id ResourceID, op *compute.Operation) *Operation {
	return &Operation{
		Resource:     id,
		ResourceType: resourceType,
		Name:         op.Name,
		Status:       op.Status,
		SelfLink:     op.SelfLink,
		TargetLink:   op.TargetLink,
		Raw:          op,
	}
}

// Done オペレーションがすでに完了しているかを返す
func (o *Operation) Done() bool {
	return o.Status == "DONE"
}

// Err 完了済みのオペレーションがエラーを保持していた場合にそれを返す
func (o *Operation) Err() error {
	if o.Raw == nil || o.Raw.Error == nil || len(o.Raw.Error.Errors) == 0 {
		return nil
	}
	first := o.Raw.Error.Errors[0]
	return fmt.Errorf("operation %s failed: %s: %s", o.Name, first.Code, first.Message)
}

// String Stringer実装
func (o *Operation) String() string {
	return fmt.Sprintf("{Name:%s, Status:%s, Type:%s, Resource:%s}", o.Name, o.Status, o.ResourceType, o.Resource)
}
