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

package logger

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// New makes the logger available to the handlers via zerolog.Ctx, enriched
// with the ids of the current span if there is one.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logCtx := logger.With()

			if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
				logCtx = logCtx.
					Str("_trace_id", spanCtx.TraceID().String()).
					Str("_span_id", spanCtx.SpanID().String())
			}

			next.ServeHTTP(rw, req.WithContext(logCtx.Logger().WithContext(ctx)))
		})
	}
}
