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
	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/deleters/autoscaler"
	"github.com/gcedeploy/gce-deleter/deleters/instance"
	"github.com/gcedeploy/gce-deleter/deleters/instancegroup"
	"github.com/gcedeploy/gce-deleter/deleters/instancegroupmanager"
	"google.golang.org/api/compute/v1"
)

// BuiltinDeleters clientを注入したビルトインResourceDeleterのリストを返す
//
// サーバグループの解体順(オートスケーラー -> インスタンスグループマネージャ -> ...)に並ぶ
func BuiltinDeleters(client *compute.Service) []deleters.ResourceDeleter {
	return []deleters.ResourceDeleter{
		autoscaler.New(client),
		instancegroupmanager.New(client),
		instancegroup.New(client),
		instance.New(client),
	}
}

// BuiltinDeleterNames ビルトインResourceDeleterの名前のリストを返す
func BuiltinDeleterNames() []string {
	var names []string
	for _, d := range BuiltinDeleters(nil) {
		names = append(names, d.Name())
	}
	return names
}
