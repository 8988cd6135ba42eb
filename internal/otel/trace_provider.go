// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package otel

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/propagators/autoprop"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/config"
)

func initTraceProvider(
	conf *config.Configuration,
	res *resource.Resource,
	logger zerolog.Logger,
	lifecycle fx.Lifecycle,
) error {
	if !conf.Tracing.Enabled {
		logger.Info().Msg("OpenTelemetry tracing disabled.")

		return nil
	}

	exporters, err := newSpanExporters(context.Background())
	if err != nil {
		return err
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}

	for _, exporter := range exporters {
		if conf.Tracing.SpanProcessor == config.SpanProcessorSimple {
			opts = append(opts, trace.WithSyncer(exporter))
		} else {
			opts = append(opts, trace.WithBatcher(exporter))
		}
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(autoprop.NewTextMapPropagator())

	lifecycle.Append(fx.StopHook(tp.Shutdown))

	logger.Info().Int("_exporters", len(exporters)).Msg("OpenTelemetry tracing initialized.")

	return nil
}
