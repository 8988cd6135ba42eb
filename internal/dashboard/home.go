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
	"strings"
	"time"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/schedule"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/slicex"
)

type Tab string

const (
	TabOverview Tab = "Overview"
	TabPeople   Tab = "People"
)

func ParseTab(value string) (Tab, error) {
	switch {
	case len(value) == 0, strings.EqualFold(value, string(TabOverview)):
		return TabOverview, nil
	case strings.EqualFold(value, string(TabPeople)):
		return TabPeople, nil
	default:
		return "", errorchain.NewWithMessagef(maclab.ErrArgument, "unknown tab '%s'", value)
	}
}

// Home is the state of the home screen.
type Home struct {
	WelcomeName  string        `json:"welcome_name"           yaml:"welcome_name"`
	Tab          Tab           `json:"tab"                    yaml:"tab"`
	Loading      bool          `json:"loading"                yaml:"loading"`
	Error        string        `json:"error,omitempty"        yaml:"error,omitempty"`
	Notification *Notification `json:"notification,omitempty" yaml:"notification,omitempty"`
	Groups       []GroupView   `json:"groups"                 yaml:"groups"`
	Matched      []SubjectView `json:"matched"                yaml:"matched"`
	People       []PersonView  `json:"people"                 yaml:"people"`
	Sequence     uint64        `json:"sequence"               yaml:"sequence"`
	FetchedAt    *time.Time    `json:"fetched_at,omitempty"   yaml:"fetched_at,omitempty"`
}

// NewHome builds the home screen state from the refresh state. The last
// successful snapshot stays visible if a later refresh failed.
func NewHome(state refresh.State, tab Tab) Home {
	home := Home{
		WelcomeName: profile.Profile{}.DisplayName(),
		Tab:         tab,
		Loading:     state.Loading,
		Groups:      []GroupView{},
		Matched:     []SubjectView{},
		People:      []PersonView{},
	}

	if state.Err != nil {
		notification := loadFailure(state.Err)

		home.Error = state.Err.Error()
		home.Notification = &notification
	}

	snapshot := state.Snapshot
	if snapshot == nil {
		return home
	}

	home.WelcomeName = snapshot.Profile.DisplayName()
	home.Sequence = snapshot.Sequence
	home.FetchedAt = &snapshot.FetchedAt
	home.Matched = newSubjectViews(snapshot.Grouping.Matched)

	groups := snapshot.Grouping.Groups(snapshot.Lists.Instructors)
	for _, group := range groups {
		home.Groups = append(home.Groups, GroupView{
			InstructorID:   group.InstructorID,
			InstructorName: group.InstructorName,
			Subjects:       newSubjectViews(group.Subjects),
		})
	}

	home.People = slicex.Map(snapshot.Lists.Instructors, func(instructor schedule.Instructor) PersonView {
		return PersonView{
			ID:       instructor.ID,
			Username: instructor.Username,
			Subjects: len(snapshot.Grouping.InstructorSubjects[instructor.ID]),
		}
	})

	return home
}
