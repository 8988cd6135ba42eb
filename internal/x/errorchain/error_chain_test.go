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

package errorchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

var (
	errTest1 = errors.New("test error 1")
	errTest2 = errors.New("test error 2")
)

func TestErrorChainNew(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.New(errTest1)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error(), err.Error())
	assert.Equal(t, errTest1.Error(), err.Message())
}

func TestErrorChainNewWithMessage(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessagef(errTest1, "%s%s", "foo", "bar")

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error()+": foobar", err.Error())
	assert.Equal(t, "foobar", err.Message())
}

func TestCreateErrorWithCause(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, errTest1)
	require.ErrorIs(t, err, errTest2)
	assert.Equal(t, errTest1.Error()+": foo: "+errTest2.Error(), err.Error())
	assert.ElementsMatch(t, []error{errTest1, errTest2}, err.Errors())
}

func TestErrorChainJSONMarshal(t *testing.T) {
	t.Parallel()

	// GIVEN
	testErr := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2)

	// WHEN
	res, err := testErr.MarshalJSON()

	// THEN
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"testError1","message":"foo"}`, string(res))
}
