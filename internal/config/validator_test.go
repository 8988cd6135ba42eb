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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/maclab"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestValidateConfigSchema(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		path   func(t *testing.T) string
		assert func(t *testing.T, err error)
	}{
		{
			uc:   "not existing file",
			path: func(t *testing.T) string { t.Helper(); return "foo.bar" },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.Contains(t, err.Error(), "read config")
			},
		},
		{
			uc:   "empty file",
			path: func(t *testing.T) string { t.Helper(); return writeConfig(t, "") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:   "invalid yaml",
			path: func(t *testing.T) string { t.Helper(); return writeConfig(t, "foobar") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, maclab.ErrConfiguration)
				assert.Contains(t, err.Error(), "parse config")
			},
		},
		{
			uc:   "unknown property",
			path: func(t *testing.T) string { t.Helper(); return writeConfig(t, "foo: bar") },
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, maclab.ErrConfiguration)
			},
		},
		{
			uc: "unsupported profile store",
			path: func(t *testing.T) string {
				t.Helper()

				return writeConfig(t, "profile:\n  type: sqlite\n")
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, maclab.ErrConfiguration)
			},
		},
		{
			uc: "valid configuration",
			path: func(t *testing.T) string {
				t.Helper()

				return writeConfig(t, `
log:
  level: debug
  format: gelf
api:
  base_url: https://lockup.pro/api
  timeout: 5s
  retry:
    give_up_after: 2s
    max_delay: 500ms
  auth:
    type: api_key
    config:
      in: header
      name: X-API-Key
      value: secret
refresh:
  interval: 2s
profile:
  type: redis
  key: userData
  redis:
    address: 127.0.0.1:6379
cache:
  max_memory: 8MB
serve:
  management:
    port: 8080
    cors:
      allowed_origins:
        - https://example.com
metrics:
  enabled: false
`)
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			err := ValidateConfigSchema(tc.path(t))

			// THEN
			tc.assert(t, err)
		})
	}
}
