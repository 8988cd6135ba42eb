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

package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/schedule"
)

func TestDecodeList(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		raw    string
		assert func(t *testing.T, err error, subjects []schedule.Subject)
	}{
		{
			uc:  "valid envelope",
			raw: `{"data":[{"id":1,"name":"Networks","start_time":"08:00"},{"id":2,"name":"Compilers"}]}`,
			assert: func(t *testing.T, err error, subjects []schedule.Subject) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, subjects, 2)
				assert.Equal(t, 1, subjects[0].ID)
				assert.Equal(t, "Networks", subjects[0].Name)
				assert.Equal(t, "08:00", subjects[0].StartTime)
				assert.Equal(t, "Compilers", subjects[1].Name)
			},
		},
		{
			uc:  "empty data",
			raw: `{"data":[]}`,
			assert: func(t *testing.T, err error, subjects []schedule.Subject) {
				t.Helper()

				require.NoError(t, err)
				assert.NotNil(t, subjects)
				assert.Empty(t, subjects)
			},
		},
		{
			uc:  "missing data",
			raw: `{"items":[]}`,
			assert: func(t *testing.T, err error, _ []schedule.Subject) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrCommunication)
				assert.Contains(t, err.Error(), "unexpected data format")
			},
		},
		{
			uc:  "data is not an array",
			raw: `{"data":{"id":1}}`,
			assert: func(t *testing.T, err error, _ []schedule.Subject) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrCommunication)
			},
		},
		{
			uc:  "malformed json",
			raw: `{"data":[`,
			assert: func(t *testing.T, err error, _ []schedule.Subject) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrCommunication)
			},
		},
		{
			uc:  "array items of wrong type",
			raw: `{"data":["foo"]}`,
			assert: func(t *testing.T, err error, _ []schedule.Subject) {
				t.Helper()

				require.ErrorIs(t, err, maclab.ErrCommunication)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			subjects, err := decodeList[schedule.Subject]([]byte(tc.raw))

			// THEN
			tc.assert(t, err, subjects)
		})
	}
}
