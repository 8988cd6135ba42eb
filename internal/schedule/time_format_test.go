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

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/maclab"
)

func TestFormatTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		value    string
		expected string
		err      bool
	}{
		{uc: "midnight hour", value: "00:30", expected: "12:30 AM"},
		{uc: "early afternoon", value: "13:00", expected: "1:00 PM"},
		{uc: "last minute of the day", value: "23:59", expected: "11:59 PM"},
		{uc: "noon", value: "12:00", expected: "12:00 PM"},
		{uc: "morning with leading zero", value: "08:05", expected: "8:05 AM"},
		{uc: "seconds are ignored", value: "14:45:00", expected: "2:45 PM"},
		{uc: "minutes are passed through", value: "9:7", expected: "9:7 AM"},
		{uc: "missing colon", value: "1300", err: true},
		{uc: "empty minutes", value: "13:", err: true},
		{uc: "hour out of range", value: "24:00", err: true},
		{uc: "not a number", value: "ab:00", err: true},
		{uc: "hour with plus sign", value: "+1:00", err: true},
		{uc: "hour with minus sign", value: "-1:00", err: true},
		{uc: "empty value", value: "", err: true},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			res, err := FormatTime(tc.value)

			// THEN
			if tc.err {
				require.Error(t, err)
				require.ErrorIs(t, err, maclab.ErrArgument)
				assert.Equal(t, tc.value, DisplayTime(tc.value))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
			assert.Equal(t, tc.expected, DisplayTime(tc.value))
		})
	}
}
