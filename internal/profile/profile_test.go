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

package profile

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileKeepsUnknownAttributes(t *testing.T) {
	t.Parallel()

	// GIVEN
	raw := `{"id":7,"username":"jdoe","email":"jdoe@example.com","roles":["student"]}`

	// WHEN
	var profile Profile

	err := json.Unmarshal([]byte(raw), &profile)
	require.NoError(t, err)

	encoded, err := json.Marshal(profile)
	require.NoError(t, err)

	// THEN
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "jdoe", profile.Username)
	assert.Len(t, profile.Extra, 2)
	assert.JSONEq(t, raw, string(encoded))
}

func TestProfileDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jdoe", Profile{ID: 1, Username: "jdoe"}.DisplayName())
	assert.Equal(t, "User", Profile{}.DisplayName())
}
