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
	"time"

	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/log"
)

// Service リソース種別を指定して削除を行うためのサービス
type Service struct {
	deleters map[string]deleters.ResourceDeleter
	names    []string
	timeout  time.Duration
	logger   *log.Logger
}

// NewService 指定のResourceDeleterを持つServiceを返す
//
// timeoutが0以下の場合はタイムアウトを設定しない
func NewService(ds []deleters.ResourceDeleter, timeout time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s := &Service{
		deleters: make(map[string]deleters.ResourceDeleter),
		timeout:  timeout,
		logger:   logger,
	}
	for _, d := range ds {
		if _, exists := s.deleters[d.Name()]; exists {
			continue
		}
		s.deleters[d.Name()] = d
		s.names = append(s.names, d.Name())
	}
	return s
}

// NewServiceFromConfig Configで有効になっているResourceDeleterを持つServiceを返す
func NewServiceFromConfig(ctx context.Context, c *Config, timeout time.Duration, logger *log.Logger) (*Service, error) {
	ds, err := c.Deleters(ctx, logger)
	if err != nil {
		return nil, err
	}
	return NewService(ds, timeout, logger), nil
}

// ResourceTypes 削除可能なリソース種別のリストを返す
func (s *Service) ResourceTypes() []string {
	return append([]string{}, s.names...)
}

// Deleter 指定のリソース種別に対応するResourceDeleterを返す
func (s *Service) Deleter(resourceType string) (deleters.ResourceDeleter, bool) {
	d, ok := s.deleters[resourceType]
	return d, ok
}

// Delete resourceTypeに対応するResourceDeleterへ削除を委譲する
//
// 未対応または無効化されているリソース種別の場合はErrInvalidArgumentを返す
func (s *Service) Delete(ctx context.Context, resourceType string, id deleters.ResourceID) (*deleters.Operation, error) {
	d, ok := s.Deleter(resourceType)
	if !ok {
		err := &deleters.Error{
			Kind:         deleters.ErrInvalidArgument,
			ResourceType: resourceType,
			Resource:     id,
			Err:          fmt.Errorf("unsupported resource type: %q, supported types: %v", resourceType, s.names),
		}
		s.logger.Error("error", err) //nolint:errcheck
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return d.Delete(ctx, id)
}
