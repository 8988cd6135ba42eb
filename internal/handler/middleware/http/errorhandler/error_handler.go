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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/maclab"
)

type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

func New(opts ...Option) ErrorHandler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &errorHandler{opts: options}
}

type errorHandler struct {
	*opts
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, maclab.ErrCommunicationTimeout) || errors.Is(err, maclab.ErrCommunication):
		h.onCommunicationError(rw, req, err)
	case errors.Is(err, maclab.ErrValidation) || errors.Is(err, maclab.ErrArgument):
		h.onPreconditionError(rw, req, err)
	default:
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Internal error occurred")

		h.onInternalError(rw, req, err)
	}
}

func errorWriter(o *opts, code int) func(rw http.ResponseWriter, req *http.Request, err error) {
	return func(rw http.ResponseWriter, req *http.Request, err error) {
		var body []byte

		if o.verboseErrors {
			body, err = format(err)
			if err != nil {
				zerolog.Ctx(req.Context()).Warn().Err(err).Msg("Failed to encode error. No body is sent")
			}
		}

		if len(body) != 0 {
			rw.Header().Set("Content-Type", "application/json")
			rw.Header().Set("X-Content-Type-Options", "nosniff")
		}

		rw.WriteHeader(code)

		if len(body) != 0 {
			rw.Write(body) //nolint:errcheck
		}
	}
}

func format(err error) ([]byte, error) {
	var marshaler json.Marshaler
	if errors.As(err, &marshaler) {
		return marshaler.MarshalJSON()
	}

	return json.Marshal(map[string]string{"code": strcase.ToLowerCamel(err.Error())})
}
