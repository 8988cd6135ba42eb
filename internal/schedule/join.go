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

import (
	"cmp"
	"slices"
)

const UnknownInstructor = "Unknown Instructor"

// Grouping is the result of a single join run. It is transient and rebuilt
// on every refresh.
type Grouping struct {
	// SubjectInstructor maps a subject id to the subject augmented with the
	// name of the first instructor found linked to it.
	SubjectInstructor map[int]SubjectWithInstructor
	// InstructorSubjects maps an instructor id to the subjects linked to it in
	// the order the links were encountered. Repeated links repeat the subject.
	InstructorSubjects map[int][]Subject
	// Matched holds the subjects linked to the current user in the order of
	// the subjects list.
	Matched []Subject
}

type InstructorGroup struct {
	InstructorID   int       `json:"instructor_id"   yaml:"instructor_id"`
	InstructorName string    `json:"instructor_name" yaml:"instructor_name"`
	Subjects       []Subject `json:"subjects"        yaml:"subjects"`
}

// Join groups subjects by instructor and filters the subjects the user is
// linked to. instructorLinks is scanned once; a link is taken into account
// only if both its subject and its user resolve to an entry in subjects and
// instructors respectively. Anything else is skipped silently.
func Join(subjects []Subject, instructors []Instructor, userLinks, instructorLinks []Link) Grouping {
	subjectIdx := indexSubjects(subjects)
	instructorIdx := indexInstructors(instructors)

	grouping := Grouping{
		SubjectInstructor:  make(map[int]SubjectWithInstructor),
		InstructorSubjects: make(map[int][]Subject),
	}

	for _, link := range instructorLinks {
		subject, ok := subjectIdx[link.SubjectID]
		if !ok {
			continue
		}

		instructor, ok := instructorIdx[link.UserID]
		if !ok {
			continue
		}

		if _, known := grouping.SubjectInstructor[subject.ID]; !known {
			grouping.SubjectInstructor[subject.ID] = SubjectWithInstructor{
				Subject:        subject,
				InstructorName: instructor.Username,
			}
		}

		grouping.InstructorSubjects[instructor.ID] = append(grouping.InstructorSubjects[instructor.ID], subject)
	}

	grouping.Matched = MatchedSubjects(subjects, userLinks)

	return grouping
}

// Groups turns the instructor to subjects mapping into a list ordered by
// instructor id.
func (g Grouping) Groups(instructors []Instructor) []InstructorGroup {
	instructorIdx := indexInstructors(instructors)
	groups := make([]InstructorGroup, 0, len(g.InstructorSubjects))

	for id, subjects := range g.InstructorSubjects {
		name := UnknownInstructor
		if instructor, ok := instructorIdx[id]; ok {
			name = instructor.Username
		}

		groups = append(groups, InstructorGroup{
			InstructorID:   id,
			InstructorName: name,
			Subjects:       subjects,
		})
	}

	slices.SortFunc(groups, func(a, b InstructorGroup) int { return cmp.Compare(a.InstructorID, b.InstructorID) })

	return groups
}

// duplicate ids resolve to the last occurrence.
func indexSubjects(subjects []Subject) map[int]Subject {
	idx := make(map[int]Subject, len(subjects))

	for _, subject := range subjects {
		idx[subject.ID] = subject
	}

	return idx
}

func indexInstructors(instructors []Instructor) map[int]Instructor {
	idx := make(map[int]Instructor, len(instructors))

	for _, instructor := range instructors {
		idx[instructor.ID] = instructor
	}

	return idx
}
