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

package dashboard

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/refresh"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		value  string
		format Format
		err    bool
	}{
		{value: "", format: FormatText},
		{value: "TEXT", format: FormatText},
		{value: "json", format: FormatJSON},
		{value: "yml", format: FormatYAML},
		{value: "yaml", format: FormatYAML},
		{value: "xml", err: true},
	} {
		t.Run(tc.value, func(t *testing.T) {
			format, err := ParseFormat(tc.value)

			if tc.err {
				require.ErrorIs(t, err, maclab.ErrArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.format, format)
		})
	}
}

func testHome(t *testing.T, tab Tab) Home {
	t.Helper()

	refresher := newRefresher(t, newBackend(), staticProfile{usr: profile.Profile{ID: 7, Username: "maria"}})
	require.NoError(t, refresher.Refresh(context.Background()))

	return NewHome(refresher.Holder().State(), tab)
}

func TestPresenterRenderText(t *testing.T) {
	t.Parallel()

	presenter, err := NewPresenter()
	require.NoError(t, err)

	for _, tc := range []struct {
		uc     string
		view   func(t *testing.T) any
		assert func(t *testing.T, out string)
	}{
		{
			uc:   "loading home",
			view: func(_ *testing.T) any { return NewHome(refresh.NewHolder().State(), TabOverview) },
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "Welcome, User! (loading...)")
				assert.Contains(t, out, "No subjects linked yet.")
				assert.Contains(t, out, "No linked subjects found.")
				assert.NotContains(t, out, "Last updated")
			},
		},
		{
			uc:   "home overview",
			view: func(t *testing.T) any { t.Helper(); return testHome(t, TabOverview) },
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "Welcome, maria!")
				assert.Contains(t, out, "[10] CS310 Networks, section A, 8:00 AM - 9:30 AM")
				assert.Contains(t, out, "JDOE")
				assert.Contains(t, out, "ASMITH")
				assert.Contains(t, out, "[11] CS420 Compilers, section -, 1:00 PM - 2:30 PM")
				assert.Contains(t, out, "Last updated 2024-03-01 08:30:00 UTC")
				assert.NotContains(t, out, "People")
			},
		},
		{
			uc:   "home people",
			view: func(t *testing.T) any { t.Helper(); return testHome(t, TabPeople) },
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "jdoe (#100): 1 subject\n")
				assert.Contains(t, out, "asmith (#200): 1 subject\n")
				assert.NotContains(t, out, "Your Subjects")
			},
		},
		{
			uc: "link view",
			view: func(_ *testing.T) any {
				return LinkView{
					Available: []SubjectView{
						{ID: 11, Name: "Compilers", Code: "CS420", StartTime: "1:00 PM", EndTime: "2:30 PM"},
						{ID: 12, Name: "Databases", Code: "CS330", Section: "B", StartTime: "10:00 AM", EndTime: "11:30 AM"},
					},
					Selected:     &SubjectView{ID: 12},
					Notification: &Notification{Title: "Success", Message: "Schedule added successfully!"},
				}
			},
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "  [11] CS420 Compilers")
				assert.Contains(t, out, "* [12] CS330 Databases, section B")
				assert.Contains(t, out, "[Success] Schedule added successfully!")
			},
		},
		{
			uc:   "empty link view",
			view: func(_ *testing.T) any { return LinkView{} },
			assert: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "No subjects available.")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var buf bytes.Buffer

			// WHEN
			err := presenter.Render(&buf, FormatText, tc.view(t))

			// THEN
			require.NoError(t, err)
			tc.assert(t, buf.String())
		})
	}
}

func TestPresenterRenderTextUnsupportedView(t *testing.T) {
	t.Parallel()

	presenter, err := NewPresenter()
	require.NoError(t, err)

	var buf bytes.Buffer

	err = presenter.Render(&buf, FormatText, []int{1})

	require.ErrorIs(t, err, maclab.ErrArgument)
	assert.Empty(t, buf.String())
}

func TestPresenterRenderStructured(t *testing.T) {
	t.Parallel()

	presenter, err := NewPresenter()
	require.NoError(t, err)

	home := testHome(t, TabOverview)

	for _, tc := range []struct {
		uc     string
		format Format
		decode func(data []byte, v any) error
	}{
		{uc: "json", format: FormatJSON, decode: json.Unmarshal},
		{uc: "yaml", format: FormatYAML, decode: yaml.Unmarshal},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			var buf bytes.Buffer

			// WHEN
			err := presenter.Render(&buf, tc.format, home)

			// THEN
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, tc.decode(buf.Bytes(), &decoded))
			assert.Equal(t, "maria", decoded["welcome_name"])
			assert.Equal(t, "Overview", decoded["tab"])
			assert.Len(t, decoded["groups"], 2)
			assert.Len(t, decoded["matched"], 1)
		})
	}
}
