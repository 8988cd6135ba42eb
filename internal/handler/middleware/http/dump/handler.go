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
	"net/http/httputil"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

// New logs requests and responses of the management service on trace level.
// For any other level the handler is a passthrough.
func New() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			logger := zerolog.Ctx(req.Context())

			if logger.GetLevel() != zerolog.TraceLevel {
				next.ServeHTTP(rw, req)

				return
			}

			if dump, err := httputil.DumpRequest(req, req.ContentLength != 0); err == nil {
				logger.Trace().Msgf("Request: %s", stringx.ToString(dump))
			} else {
				logger.Trace().Err(err).Msg("Failed dumping request")
			}

			var (
				status = http.StatusOK
				body   bytes.Buffer
			)

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				WriteHeader: func(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						status = code

						writeHeader(code)
					}
				},
				Write: func(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(data []byte) (int, error) {
						body.Write(data)

						return write(data)
					}
				},
			}), req)

			logger.Trace().
				Int("_http_status_code", status).
				Msgf("Response: %s", stringx.ToString(body.Bytes()))
		})
	}
}
