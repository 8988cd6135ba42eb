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

// Selection is a single slot holding at most one chosen subject. Selecting a
// subject replaces whatever was selected before.
type Selection struct {
	subject *Subject
}

func (s *Selection) Select(subject Subject) { s.subject = &subject }

func (s *Selection) Clear() { s.subject = nil }

func (s *Selection) Selected() (Subject, bool) {
	if s.subject == nil {
		return Subject{}, false
	}

	return *s.subject, true
}

func (s *Selection) IsSelected(id int) bool { return s.subject != nil && s.subject.ID == id }
