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

package endpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/ybbus/httpretry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/httpx"
)

// Endpoint describes a single operation of a remote HTTP API.
type Endpoint struct {
	URL          string
	Method       string
	Timeout      time.Duration
	Retry        *Retry
	AuthStrategy AuthenticationStrategy
	Headers      map[string]string
}

type Retry struct {
	GiveUpAfter time.Duration
	MaxDelay    time.Duration
}

func (e Endpoint) CreateClient(peerName string) *http.Client {
	client := &http.Client{
		Timeout: e.Timeout,
		Transport: otelhttp.NewTransport(
			httpx.NewDumpRoundTripper(http.DefaultTransport),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return fmt.Sprintf("%s %s %s @%s", r.Proto, r.Method, r.URL.Path, peerName)
			})),
	}

	if e.Retry != nil {
		client = httpretry.NewCustomClient(
			client,
			httpretry.WithBackoffPolicy(
				httpretry.ExponentialBackoff(e.Retry.MaxDelay, e.Retry.GiveUpAfter, 0)))
	}

	return client
}

func (e Endpoint) CreateRequest(ctx context.Context, body io.Reader) (*http.Request, error) {
	logger := zerolog.Ctx(ctx)
	method := x.OrDefault(e.Method, http.MethodGet)

	logger.Debug().Str("_endpoint", e.URL).Str("_method", method).Msg("Creating request")

	req, err := http.NewRequestWithContext(ctx, method, e.URL, body)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(maclab.ErrInternal, "failed to create a request instance").
			CausedBy(err)
	}

	if e.AuthStrategy != nil {
		logger.Debug().Msg("Authenticating request")

		if err = e.AuthStrategy.Apply(ctx, req); err != nil {
			return nil, errorchain.
				NewWithMessage(maclab.ErrInternal, "failed to authenticate request").
				CausedBy(err)
		}
	}

	for name, value := range e.Headers {
		req.Header.Set(name, value)
	}

	return req, nil
}

type ResponseReader func(resp *http.Response) ([]byte, error)

// SendRequest sends a request with the given body to the endpoint and returns
// the raw response body. Transport failures and non 2xx responses are reported
// as communication errors.
func (e Endpoint) SendRequest(ctx context.Context, body io.Reader, reader ...ResponseReader) ([]byte, error) {
	req, err := e.CreateRequest(ctx, body)
	if err != nil {
		return nil, err
	}

	return e.Do(req, reader...)
}

// Do sends an already created request. Use it if further headers must be set
// after CreateRequest.
func (e Endpoint) Do(req *http.Request, reader ...ResponseReader) ([]byte, error) {
	resp, err := e.CreateClient(req.URL.Hostname()).Do(req)
	if err != nil {
		var clientErr *url.Error
		if errors.As(err, &clientErr) && clientErr.Timeout() {
			return nil, errorchain.New(maclab.ErrCommunicationTimeout).CausedBy(err)
		}

		return nil, errorchain.New(maclab.ErrCommunication).CausedBy(err)
	}

	defer resp.Body.Close()

	if len(reader) != 0 {
		return reader[0](resp)
	}

	return readResponse(resp)
}

func readResponse(resp *http.Response) ([]byte, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errorchain.
			NewWithMessagef(maclab.ErrCommunication, "unexpected response code: %v", resp.StatusCode)
	}

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(maclab.ErrCommunication, "failed to read response").
			CausedBy(err)
	}

	return rawData, nil
}
