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

package builtins

import (
	"context"
	"errors"
	"time"

	"github.com/gcedeploy/gce-deleter/deleters"
	"github.com/gcedeploy/gce-deleter/log"
	"github.com/gcedeploy/gce-deleter/metrics"
	deleterotel "github.com/gcedeploy/gce-deleter/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ deleters.ResourceDeleter = (*Deleter)(nil)

// Deleter builtinのResourceDeleterをラップし、ログ出力/メトリクス/トレースを担当する
//
// 削除処理そのものは全てBuiltinに委譲する
type Deleter struct {
	Builtin deleters.ResourceDeleter
	Logger  *log.Logger
}

// Wrap builtinをラップしたDeleterを返す
func Wrap(builtin deleters.ResourceDeleter, logger *log.Logger) *Deleter {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	metrics.InitRequestCount(builtin.Name())
	return &Deleter{
		Builtin: builtin,
		Logger:  logger.With("deleter", builtin.Name()),
	}
}

func (d *Deleter) Name() string {
	return d.Builtin.Name()
}

func (d *Deleter) Version() string {
	return d.Builtin.Version()
}

func (d *Deleter) Delete(ctx context.Context, id deleters.ResourceID) (*deleters.Operation, error) {
	ctx, span := deleterotel.Tracer().Start(ctx, "deleters/"+d.Name()+"#Delete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gce.project", id.Project),
			attribute.String("gce.region", id.Region()),
			attribute.String("gce.zone", id.Zone),
			attribute.String("gce.resource_name", id.Name),
		),
	)
	defer span.End()

	// ログ出力はベストエフォート、削除結果には影響させない
	logger := d.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger.Info("status", "received")    //nolint:errcheck
	logger.Debug("request", id.String()) //nolint:errcheck

	started := time.Now()
	op, err := d.Builtin.Delete(ctx, id)
	metrics.ObserveRequest(d.Name(), result(err), time.Since(started))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("status", result(err), "error", err) //nolint:errcheck
		return op, err
	}

	span.SetAttributes(attribute.String("gce.operation", op.Name))
	logger.Info("status", metrics.ResultAccepted, "operation", op.Name, "operation_status", op.Status) //nolint:errcheck
	return op, nil
}

func result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultAccepted
	case errors.Is(err, deleters.ErrInvalidArgument):
		return metrics.ResultInvalidArgument
	case errors.Is(err, deleters.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultClientError
	}
}
