// Copyright 2026 The maclab Authors
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
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx"
)

// Module configures the OpenTelemetry SDK. Exporters and propagators follow
// the standard OTEL_* environment variables.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(newResource),
	fx.Invoke(
		initLogging,
		initTraceProvider,
		initMeterProvider,
	),
)

func initLogging(logger zerolog.Logger) {
	otel.SetLogger(zerologr.New(&logger))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn().Err(err).Msg("OpenTelemetry error")
	}))
}
