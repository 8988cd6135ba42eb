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
	"github.com/ccs-maclab/maclab/internal/x/slicex"
)

// LinksOf returns the links belonging to the given user.
func LinksOf(links []Link, userID int) []Link {
	return slicex.Filter(links, func(link Link) bool { return link.UserID == userID })
}

// LinkedSubjectIDs returns the set of subject ids referenced by links.
func LinkedSubjectIDs(links []Link) map[int]struct{} {
	ids := make(map[int]struct{}, len(links))

	for _, link := range links {
		ids[link.SubjectID] = struct{}{}
	}

	return ids
}

// MatchedSubjects returns the subjects referenced by userLinks in the order of
// subjects.
func MatchedSubjects(subjects []Subject, userLinks []Link) []Subject {
	ids := LinkedSubjectIDs(userLinks)

	return slicex.Filter(subjects, func(subject Subject) bool {
		_, linked := ids[subject.ID]

		return linked
	})
}

// AvailableSubjects returns the subjects not yet referenced by userLinks in
// the order of subjects.
func AvailableSubjects(subjects []Subject, userLinks []Link) []Subject {
	ids := LinkedSubjectIDs(userLinks)

	return slicex.Filter(subjects, func(subject Subject) bool {
		_, linked := ids[subject.ID]

		return !linked
	})
}

// FindSubject looks a subject up by its id.
func FindSubject(subjects []Subject, id int) (Subject, bool) {
	for _, subject := range subjects {
		if subject.ID == id {
			return subject, true
		}
	}

	return Subject{}, false
}
