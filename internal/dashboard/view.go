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
	"github.com/ccs-maclab/maclab/internal/schedule"
	"github.com/ccs-maclab/maclab/internal/x/slicex"
)

// SubjectView is a subject prepared for display. Times are rendered in
// 12-hour form if they are well-formed.
type SubjectView struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Code        string `json:"code"        yaml:"code"`
	StartTime   string `json:"start_time"  yaml:"start_time"`
	EndTime     string `json:"end_time"    yaml:"end_time"`
	Section     string `json:"section"     yaml:"section"`
	Description string `json:"description" yaml:"description"`
}

func newSubjectView(subject schedule.Subject) SubjectView {
	return SubjectView{
		ID:          subject.ID,
		Name:        subject.Name,
		Code:        subject.Code,
		StartTime:   schedule.DisplayTime(subject.StartTime),
		EndTime:     schedule.DisplayTime(subject.EndTime),
		Section:     subject.Section,
		Description: subject.Description,
	}
}

func newSubjectViews(subjects []schedule.Subject) []SubjectView {
	return slicex.Map(subjects, newSubjectView)
}

type GroupView struct {
	InstructorID   int           `json:"instructor_id"   yaml:"instructor_id"`
	InstructorName string        `json:"instructor_name" yaml:"instructor_name"`
	Subjects       []SubjectView `json:"subjects"        yaml:"subjects"`
}

type PersonView struct {
	ID       int    `json:"id"       yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Subjects int    `json:"subjects" yaml:"subjects"`
}
