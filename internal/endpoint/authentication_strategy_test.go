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
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/maclab"
)

func TestNewAuthenticationStrategy(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		typ    string
		config map[string]any
		assert func(t *testing.T, err error, as AuthenticationStrategy)
	}{
		{
			uc:     "basic auth with all required properties",
			typ:    "basic_auth",
			config: map[string]any{"user": "foo", "password": "bar"},
			assert: func(t *testing.T, err error, as AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &BasicAuthStrategy{}, as)

				bas := as.(*BasicAuthStrategy) // nolint: forcetypeassert
				assert.Equal(t, "foo", bas.User)
				assert.Equal(t, "bar", bas.Password)
			},
		},
		{
			uc:     "basic auth without user property",
			typ:    "basic_auth",
			config: map[string]any{"password": "bar"},
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "'user' property to be set")
			},
		},
		{
			uc:  "basic auth without config property",
			typ: "basic_auth",
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "'config' property to be set")
			},
		},
		{
			uc:     "api key with all required properties",
			typ:    "api_key",
			config: map[string]any{"name": "foo", "value": "bar", "in": "query"},
			assert: func(t *testing.T, err error, as AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &APIKeyStrategy{}, as)

				aks := as.(*APIKeyStrategy) // nolint: forcetypeassert
				assert.Equal(t, "foo", aks.Name)
				assert.Equal(t, "bar", aks.Value)
				assert.Equal(t, "query", aks.In)
			},
		},
		{
			uc:     "api key with unsupported in property",
			typ:    "api_key",
			config: map[string]any{"name": "foo", "value": "bar", "in": "foobar"},
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "to either 'header', 'cookie', or 'query'")
			},
		},
		{
			uc:     "api key without name and value properties",
			typ:    "api_key",
			config: map[string]any{"in": "header"},
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "'name' property to be set")
				assert.ErrorContains(t, err, "'value' property to be set")
			},
		},
		{
			uc:  "client credentials with all possible properties",
			typ: "client_credentials",
			config: map[string]any{
				"client_id":     "foo",
				"client_secret": "bar",
				"token_url":     "http://foobar.foo",
				"scopes":        []any{"foo", "bar"},
			},
			assert: func(t *testing.T, err error, as AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				require.IsType(t, &ClientCredentialsStrategy{}, as)

				ccs := as.(*ClientCredentialsStrategy) // nolint: forcetypeassert
				assert.Equal(t, "foo", ccs.ClientID)
				assert.Equal(t, "bar", ccs.ClientSecret)
				assert.Equal(t, "http://foobar.foo", ccs.TokenURL)
				assert.ElementsMatch(t, []string{"foo", "bar"}, ccs.Scopes)
			},
		},
		{
			uc:     "client credentials without token_url property",
			typ:    "client_credentials",
			config: map[string]any{"client_id": "foo", "client_secret": "bar"},
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "'token_url' property to be set")
			},
		},
		{
			uc:     "unsupported strategy",
			typ:    "oauth1",
			config: map[string]any{},
			assert: func(t *testing.T, err error, _ AuthenticationStrategy) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.ErrorContains(t, err, "unsupported authentication type")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			as, err := NewAuthenticationStrategy(tc.typ, tc.config)

			// THEN
			tc.assert(t, err, as)
		})
	}
}

func TestAPIKeyStrategyApply(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		in     string
		assert func(t *testing.T, err error, req *http.Request)
	}{
		{
			uc: "header",
			in: "header",
			assert: func(t *testing.T, err error, req *http.Request) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Bar", req.Header.Get("Foo"))
			},
		},
		{
			uc: "cookie",
			in: "cookie",
			assert: func(t *testing.T, err error, req *http.Request) {
				t.Helper()

				require.NoError(t, err)

				cookie, err := req.Cookie("Foo")
				require.NoError(t, err)
				assert.Equal(t, "Bar", cookie.Value)
			},
		},
		{
			uc: "query",
			in: "query",
			assert: func(t *testing.T, err error, req *http.Request) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Bar", req.URL.Query().Get("Foo"))
				assert.Equal(t, "baz", req.URL.Query().Get("bar"))
			},
		},
		{
			uc: "unsupported",
			in: "body",
			assert: func(t *testing.T, err error, _ *http.Request) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrConfiguration)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			req := &http.Request{
				Header: http.Header{},
				URL:    &url.URL{Scheme: "http", Host: "foo.bar", RawQuery: "bar=baz"},
			}
			s := APIKeyStrategy{Name: "Foo", Value: "Bar", In: tc.in}

			// WHEN
			err := s.Apply(context.Background(), req)

			// THEN
			tc.assert(t, err, req)
		})
	}
}

func TestBasicAuthStrategyApply(t *testing.T) {
	t.Parallel()

	// GIVEN
	req := &http.Request{Header: http.Header{}}
	s := BasicAuthStrategy{User: "foo", Password: "bar"}

	// WHEN
	err := s.Apply(context.Background(), req)

	// THEN
	require.NoError(t, err)

	user, password, ok := req.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "foo", user)
	assert.Equal(t, "bar", password)
}
