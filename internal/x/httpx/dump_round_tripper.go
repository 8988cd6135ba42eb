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

package httpx

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

// NewDumpRoundTripper wraps rt and dumps outbound requests and inbound
// responses to the context logger if it is configured with trace level.
func NewDumpRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return &dumpRoundTripper{t: rt}
}

type dumpRoundTripper struct {
	t http.RoundTripper
}

func (d *dumpRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := zerolog.Ctx(req.Context())
	if logger.GetLevel() != zerolog.TraceLevel {
		return d.t.RoundTrip(req)
	}

	if dump, err := httputil.DumpRequestOut(req,
		withBody(req.Header.Get("Content-Type"), req.ContentLength)); err != nil {
		logger.Trace().Err(err).Msg("Failed dumping out request")
	} else {
		logger.Trace().Msg("Outbound Request: \n" + stringx.ToString(dump))
	}

	resp, err := d.t.RoundTrip(req)
	if err != nil {
		logger.Trace().Err(err).Msg("Failed sending request")

		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp,
		withBody(resp.Header.Get("Content-Type"), resp.ContentLength)); err != nil {
		logger.Trace().Err(err).Msg("Failed dumping response")
	} else {
		logger.Trace().Msg("Inbound Response: \n" + stringx.ToString(dump))
	}

	return resp, nil
}

// streams are never dumped
func withBody(contentType string, length int64) bool {
	return length != 0 &&
		!strings.Contains(contentType, "stream") &&
		!strings.Contains(contentType, "application/x-ndjson")
}
