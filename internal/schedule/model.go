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

// Subject is a class offered by the laboratory. Start and end times are
// wall-clock values in HH:MM form.
type Subject struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Code        string `json:"code"        yaml:"code"`
	StartTime   string `json:"start_time"  yaml:"start_time"`
	EndTime     string `json:"end_time"    yaml:"end_time"`
	Section     string `json:"section"     yaml:"section"`
	Description string `json:"description" yaml:"description"`
}

type Instructor struct {
	ID       int    `json:"id"       yaml:"id"`
	Username string `json:"username" yaml:"username"`
}

// Link associates a user with a subject. The same record kind is used for
// students enrolled in a subject and for instructors teaching it.
type Link struct {
	ID        int `json:"id,omitempty" yaml:"id,omitempty"`
	UserID    int `json:"user_id"      validate:"required,gt=0" yaml:"user_id"`
	SubjectID int `json:"subject_id"   validate:"required,gt=0" yaml:"subject_id"`
}

type SubjectWithInstructor struct {
	Subject        `yaml:",inline"`
	InstructorName string `json:"instructor_name" yaml:"instructor_name"`
}
