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

package dump

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
)

func TestDumpHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		logLevel zerolog.Level
		assert   func(t *testing.T, logs string)
	}{
		{
			uc:       "debug log level",
			logLevel: zerolog.DebugLevel,
			assert: func(t *testing.T, logs string) {
				t.Helper()

				assert.Empty(t, logs)
			},
		},
		{
			uc:       "trace log level",
			logLevel: zerolog.TraceLevel,
			assert: func(t *testing.T, logs string) {
				t.Helper()

				lines := strings.Split(strings.TrimSpace(logs), "\n")
				require.Len(t, lines, 2)

				var line1 map[string]any
				require.NoError(t, json.Unmarshal([]byte(lines[0]), &line1))
				assert.Equal(t, "trace", line1["level"])
				assert.Contains(t, line1["message"], `{"subject_id":12}`)

				var line2 map[string]any
				require.NoError(t, json.Unmarshal([]byte(lines[1]), &line2))
				assert.Equal(t, "trace", line2["level"])
				assert.Contains(t, line2["message"], "created")
				assert.InDelta(t, float64(http.StatusCreated), line2["_http_status_code"], 0)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var buf bytes.Buffer

			logger := zerolog.New(&buf).Level(tc.logLevel)

			handler := alice.New(
				func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
						next.ServeHTTP(rw, req.WithContext(logger.WithContext(req.Context())))
					})
				},
				New(),
			).ThenFunc(func(rw http.ResponseWriter, _ *http.Request) {
				rw.WriteHeader(http.StatusCreated)
				rw.Write([]byte("created")) //nolint:errcheck
			})

			req := httptest.NewRequest(http.MethodPost, "/links", strings.NewReader(`{"subject_id":12}`))
			rec := httptest.NewRecorder()

			// WHEN
			handler.ServeHTTP(rec, req)

			// THEN
			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "created", rec.Body.String())
			tc.assert(t, buf.String())
		})
	}
}
