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

package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGlobalFlags(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{}

	// WHEN
	RegisterGlobalFlags(cmd)

	// THEN
	configFlag := cmd.PersistentFlags().Lookup(Config)
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Empty(t, configFlag.DefValue)
	assert.NotEmpty(t, configFlag.Usage)

	envPrefixFlag := cmd.PersistentFlags().Lookup(EnvironmentConfigPrefix)
	require.NotNil(t, envPrefixFlag)
	assert.Empty(t, envPrefixFlag.Shorthand)
	assert.Equal(t, "MACLAB_", envPrefixFlag.DefValue)
	assert.NotEmpty(t, envPrefixFlag.Usage)
}

func TestRegisterOutputFlag(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := &cobra.Command{}

	// WHEN
	RegisterOutputFlag(cmd)

	// THEN
	outputFlag := cmd.Flags().Lookup(Output)
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "text", outputFlag.DefValue)
}
