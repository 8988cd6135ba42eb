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

package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorValidateStruct(t *testing.T) {
	t.Parallel()

	type nested struct {
		Interval time.Duration `koanf:"interval" validate:"gt=0"`
	}

	type testStruct struct {
		Name    string `json:"name"     validate:"required"`
		Count   int    `mapstructure:"count" validate:"gt=0"`
		Kind    string `yaml:"kind"       validate:"omitempty,oneof=a b"`
		Address string `validate:"required_with=Kind"`
		Nested  nested `koanf:"nested"`
	}

	for _, tc := range []struct {
		uc     string
		value  testStruct
		assert func(t *testing.T, err error)
	}{
		{
			uc: "valid struct",
			value: testStruct{
				Name: "foo", Count: 1, Kind: "a", Address: "bar",
				Nested: nested{Interval: time.Second},
			},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc:    "all constraints violated",
			value: testStruct{Kind: "c"},
			assert: func(t *testing.T, err error) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "'name' is a required field")
				assert.Contains(t, err.Error(), "'count' must be greater than 0")
				assert.Contains(t, err.Error(), "'kind' must be one of [a b]")
				assert.Contains(t, err.Error(), "'Address' is a required field if Kind is set")
				assert.Contains(t, err.Error(), "'interval' must be greater than 0")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			validator, err := NewValidator()
			require.NoError(t, err)

			// WHEN
			err = validator.ValidateStruct(tc.value)

			// THEN
			tc.assert(t, err)
		})
	}
}
