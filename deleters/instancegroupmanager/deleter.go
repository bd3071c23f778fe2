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

package instancegroupmanager

import (
	"context"

	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/version"
	"google.golang.org/api/compute/v1"
)

var _ deleters.ResourceDeleter = (*Deleter)(nil)

// Deleter マネージドインスタンスグループの削除を行うResourceDeleter実装
type Deleter struct {
	deleters.ComputeClient
}

// New 構築済みのCompute Engine APIクライアントを注入したDeleterを返す
func New(client *compute.Service) *Deleter {
	return &Deleter{ComputeClient: deleters.NewComputeClient(client)}
}

func (d *Deleter) Name() string {
	return "instance-group-manager"
}

func (d *Deleter) Version() string {
	return version.FullVersion()
}

// Delete InstanceGroupManagers.Deleteを1回呼び出す
//
// 配下のインスタンスも削除される。オートスケーラーが紐付いている場合は先にそれを削除しておく必要がある
func (d *Deleter) Delete(ctx context.Context, id deleters.ResourceID) (*deleters.Operation, error) {
	return d.Invoke(ctx, d.Name(), id, func(ctx context.Context, client *compute.Service, id deleters.ResourceID) (*compute.Operation, error) {
		return client.InstanceGroupManagers.Delete(id.Project, id.Zone, id.Name).Context(ctx).Do()
	})
}
