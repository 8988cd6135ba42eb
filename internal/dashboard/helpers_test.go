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
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/remote"
	"github.com/ccs-maclab/maclab/internal/schedule"
)

// backend is an in-memory stand in for the remote service.
type backend struct {
	mu       sync.Mutex
	lists    remote.Lists
	fetchErr error
	linkErr  error
	created  []schedule.Link
}

func newBackend() *backend {
	return &backend{
		lists: remote.Lists{
			Subjects: []schedule.Subject{
				{ID: 10, Name: "Networks", Code: "CS310", StartTime: "08:00", EndTime: "09:30", Section: "A"},
				{ID: 11, Name: "Compilers", Code: "CS420", StartTime: "13:00", EndTime: "14:30"},
				{ID: 12, Name: "Databases", Code: "CS330", StartTime: "10:00", EndTime: "11:30", Section: "B"},
			},
			Instructors: []schedule.Instructor{{ID: 100, Username: "jdoe"}, {ID: 200, Username: "asmith"}},
			Links: []schedule.Link{
				{UserID: 100, SubjectID: 10},
				{UserID: 7, SubjectID: 10},
				{UserID: 200, SubjectID: 11},
			},
			FetchedAt: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
		},
	}
}

func (b *backend) FetchAll(_ context.Context) (remote.Lists, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fetchErr != nil {
		return remote.Lists{}, b.fetchErr
	}

	lists := b.lists
	lists.Links = slices.Clone(b.lists.Links)

	return lists, nil
}

func (b *backend) CreateLink(_ context.Context, link schedule.Link) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.linkErr != nil {
		return b.linkErr
	}

	b.created = append(b.created, link)
	b.lists.Links = append(b.lists.Links, link)

	return nil
}

func (b *backend) Created() []schedule.Link {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.created)
}

type staticProfile struct {
	usr profile.Profile
	err error
}

func (s staticProfile) Load(_ context.Context) (profile.Profile, error) { return s.usr, s.err }

func newRefresher(t *testing.T, fetcher refresh.Fetcher, loader refresh.ProfileLoader) *refresh.Refresher {
	t.Helper()

	conf := &config.Configuration{Refresh: config.RefreshConfig{Interval: time.Minute}}

	refresher, err := refresh.NewRefresher(conf, fetcher, loader, prometheus.NewRegistry(), zerolog.Nop())
	require.NoError(t, err)

	return refresher
}
