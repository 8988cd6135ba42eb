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

package config

import (
	"testing"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/validation"
)

func TestNewConfigurationWithDefaults(t *testing.T) {
	// GIVEN
	validator, err := validation.NewValidator()
	require.NoError(t, err)

	// WHEN
	conf, err := NewConfiguration("MACLABTEST_DEFAULTS_", "", validator)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, conf.Log.Level)
	assert.Equal(t, LogTextFormat, conf.Log.Format)
	assert.Equal(t, "https://lockup.pro/api", conf.API.BaseURL)
	assert.Equal(t, 10*time.Second, conf.API.Timeout)
	assert.Equal(t, "/subs", conf.API.Endpoints.Subjects)
	assert.Equal(t, "/linkedSubjects", conf.API.Endpoints.Links)
	assert.Equal(t, "/instructors", conf.API.Endpoints.Instructors)
	assert.Equal(t, "/linkedSubjects", conf.API.Endpoints.CreateLink)
	assert.Nil(t, conf.API.Retry)
	assert.Nil(t, conf.API.Auth)
	assert.Equal(t, time.Second, conf.Refresh.Interval)
	assert.Equal(t, ProfileStoreBlob, conf.Profile.Type)
	assert.Equal(t, "userData", conf.Profile.Key)
	assert.NotEmpty(t, conf.Profile.Blob.URL)
	assert.Equal(t, 16*bytesize.MB, conf.Cache.MaxMemory)
	assert.Equal(t, 4470, conf.Serve.Management.Port)
	assert.Equal(t, 5*time.Second, conf.Serve.Management.Timeout.Read)
	assert.Equal(t, 10*time.Second, conf.Serve.Management.Timeout.Write)
	assert.Equal(t, 120*time.Second, conf.Serve.Management.Timeout.Idle)
	assert.Nil(t, conf.Serve.Management.CORS)
	assert.True(t, conf.Serve.Management.Respond.Verbose)
	assert.Zero(t, conf.Serve.Management.Respond.With.CommunicationError.Code)
	assert.True(t, conf.Metrics.Enabled)
	assert.False(t, conf.Tracing.Enabled)
	assert.Equal(t, SpanProcessorBatch, conf.Tracing.SpanProcessor)
}

func TestNewConfigurationFromFileAndEnvironment(t *testing.T) {
	// GIVEN
	validator, err := validation.NewValidator()
	require.NoError(t, err)

	path := writeConfig(t, `
log:
  level: debug
  format: gelf
api:
  base_url: http://localhost:8080/api
  retry:
    give_up_after: 2s
    max_delay: 100ms
  auth:
    type: basic_auth
    config:
      user: foo
      password: ${MACLABTEST_PASSWORD}
refresh:
  interval: 3s
profile:
  type: redis
  redis:
    address: 127.0.0.1:6379
cache:
  max_memory: 1MB
serve:
  management:
    port: 9090
    respond:
      verbose: false
      with:
        communication_error:
          code: 504
`)

	t.Setenv("MACLABTEST_PASSWORD", "bar")
	t.Setenv("MACLABTEST_REFRESH_INTERVAL", "5s")
	t.Setenv("MACLABTEST_SERVE_MANAGEMENT_HOST", "127.0.0.1")

	// WHEN
	conf, err := NewConfiguration("MACLABTEST_", ConfigurationPath(path), validator)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
	assert.Equal(t, LogGelfFormat, conf.Log.Format)
	assert.Equal(t, "http://localhost:8080/api", conf.API.BaseURL)
	assert.Equal(t, "/subs", conf.API.Endpoints.Subjects)
	require.NotNil(t, conf.API.Retry)
	assert.Equal(t, 2*time.Second, conf.API.Retry.GiveUpAfter)
	assert.Equal(t, 100*time.Millisecond, conf.API.Retry.MaxDelay)
	require.NotNil(t, conf.API.Auth)
	assert.Equal(t, "basic_auth", conf.API.Auth.Type)
	assert.Equal(t, "bar", conf.API.Auth.Config["password"])
	assert.Equal(t, 5*time.Second, conf.Refresh.Interval)
	assert.Equal(t, ProfileStoreRedis, conf.Profile.Type)
	assert.Equal(t, "userData", conf.Profile.Key)
	assert.Equal(t, "127.0.0.1:6379", conf.Profile.Redis.Address)
	assert.Equal(t, bytesize.MB, conf.Cache.MaxMemory)
	assert.Equal(t, "127.0.0.1:9090", conf.Serve.Management.Address())
	assert.False(t, conf.Serve.Management.Respond.Verbose)
	assert.Equal(t, 504, conf.Serve.Management.Respond.With.CommunicationError.Code)
	assert.Zero(t, conf.Serve.Management.Respond.With.ArgumentError.Code)
}

func TestNewConfigurationFailsOnInvalidValues(t *testing.T) {
	// GIVEN
	validator, err := validation.NewValidator()
	require.NoError(t, err)

	t.Setenv("MACLABTEST_INVALID_REFRESH_INTERVAL", "0s")

	// WHEN
	_, err = NewConfiguration("MACLABTEST_INVALID_", "", validator)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, maclab.ErrConfiguration)
	assert.Contains(t, err.Error(), "'interval' must be greater than 0")
}

func TestAPIConfigResolve(t *testing.T) {
	t.Parallel()

	conf := APIConfig{BaseURL: "https://lockup.pro/api/"}

	assert.Equal(t, "https://lockup.pro/api/subs", conf.Resolve("/subs"))
	assert.Equal(t, "https://lockup.pro/api/subs", conf.Resolve("subs"))
	assert.Equal(t, "http://other.host/links", conf.Resolve("http://other.host/links"))
}
