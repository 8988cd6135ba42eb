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

package refresh

import (
	"time"

	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/remote"
	"github.com/ccs-maclab/maclab/internal/schedule"
)

// Snapshot is the outcome of a single successful refresh cycle.
type Snapshot struct {
	Sequence  uint64
	CycleID   string
	FetchedAt time.Time
	Profile   profile.Profile
	Lists     remote.Lists
	Grouping  schedule.Grouping
}

// UserLinks returns the links of the profile user.
func (s Snapshot) UserLinks() []schedule.Link {
	return schedule.LinksOf(s.Lists.Links, s.Profile.ID)
}

// AvailableSubjects returns the subjects the profile user is not linked to yet.
func (s Snapshot) AvailableSubjects() []schedule.Subject {
	return schedule.AvailableSubjects(s.Lists.Subjects, s.UserLinks())
}

func newSnapshot(seq uint64, cycleID string, usr profile.Profile, lists remote.Lists) Snapshot {
	return Snapshot{
		Sequence:  seq,
		CycleID:   cycleID,
		FetchedAt: lists.FetchedAt,
		Profile:   usr,
		Lists:     lists,
		Grouping: schedule.Join(
			lists.Subjects,
			lists.Instructors,
			schedule.LinksOf(lists.Links, usr.ID),
			lists.Links,
		),
	}
}
