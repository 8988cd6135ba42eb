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

package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/accesslog"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1}, SpanID: trace.SpanID{2}, TraceFlags: trace.FlagsSampled,
	})

	for _, tc := range []struct {
		uc        string
		withTrace bool
	}{
		{uc: "without tracing"},
		{uc: "with tracing", withTrace: true},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var buf bytes.Buffer

			log := zerolog.New(&buf)
			handler := alice.New(accesslog.New(log), New(log)).
				ThenFunc(func(rw http.ResponseWriter, req *http.Request) {
					zerolog.Ctx(req.Context()).Info().Msg("test called")
					rw.WriteHeader(http.StatusAccepted)
				})

			req := httptest.NewRequest(http.MethodGet, "http://maclab.local/dashboard", nil)
			req.Header.Set("X-Request-ID", "42")

			if tc.withTrace {
				req = req.WithContext(trace.ContextWithSpanContext(req.Context(), spanCtx))
			}

			// WHEN
			handler.ServeHTTP(httptest.NewRecorder(), req)

			// THEN
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 3)

			events := make([]map[string]any, len(lines))
			for idx, line := range lines {
				require.NoError(t, json.Unmarshal([]byte(line), &events[idx]))
			}

			assert.Equal(t, "TX started", events[0]["message"])
			assert.Equal(t, "GET", events[0]["_http_method"])
			assert.Equal(t, "/dashboard", events[0]["_http_path"])
			assert.Equal(t, "maclab.local", events[0]["_http_host"])
			assert.Equal(t, "http", events[0]["_http_scheme"])
			assert.Equal(t, "42", events[0]["_http_x_request_id"])

			assert.Equal(t, "test called", events[1]["message"])

			assert.Equal(t, "TX finished", events[2]["message"])
			assert.InDelta(t, float64(http.StatusAccepted), events[2]["_http_status_code"], 0.001)
			assert.Contains(t, events[2], "_tx_duration_ms")
			assert.Contains(t, events[2], "_body_bytes_sent")

			if tc.withTrace {
				for _, event := range events {
					assert.Equal(t, spanCtx.TraceID().String(), event["_trace_id"])
					assert.Equal(t, spanCtx.SpanID().String(), event["_span_id"])
				}
			} else {
				for _, event := range events {
					assert.NotContains(t, event, "_trace_id")
				}
			}
		})
	}
}
