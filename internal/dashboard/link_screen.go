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
	"sync"

	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/schedule"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type LinkCreator interface {
	CreateLink(ctx context.Context, link schedule.Link) error
}

type Refresher interface {
	Refresh(ctx context.Context) error
	Holder() *refresh.Holder
}

// LinkView is the state of the link screen.
type LinkView struct {
	Loading      bool          `json:"loading"                yaml:"loading"`
	Available    []SubjectView `json:"available"              yaml:"available"`
	Selected     *SubjectView  `json:"selected,omitempty"     yaml:"selected,omitempty"`
	Notification *Notification `json:"notification,omitempty" yaml:"notification,omitempty"`
}

// LinkScreen lets the signed-in user pick one of the subjects not linked to
// the user yet and link to it.
type LinkScreen struct {
	creator   LinkCreator
	refresher Refresher

	mu        sync.Mutex
	selection schedule.Selection
	notes     Notifications
}

func NewLinkScreen(creator LinkCreator, refresher Refresher) *LinkScreen {
	return &LinkScreen{creator: creator, refresher: refresher}
}

// Available returns the subjects the user can still link to, in the order
// the service returned them.
func (s *LinkScreen) Available() []schedule.Subject {
	snapshot := s.refresher.Holder().State().Snapshot
	if snapshot == nil {
		return []schedule.Subject{}
	}

	return snapshot.AvailableSubjects()
}

// Select replaces the current selection. Only available subjects can be
// selected.
func (s *LinkScreen) Select(subjectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectLocked(subjectID)
}

func (s *LinkScreen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Clear()
}

func (s *LinkScreen) Selected() (schedule.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selection.Selected()
}

func (s *LinkScreen) Notifications() *Notifications { return &s.notes }

// AddSchedule links the user to the selected subject and refreshes the
// screen afterwards. Without a selection nothing is sent.
func (s *LinkScreen) AddSchedule(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addScheduleLocked(ctx)
}

// Link selects the subject and adds it in one step.
func (s *LinkScreen) Link(ctx context.Context, subjectID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.selectLocked(subjectID); err != nil {
		s.notes.Show(addFailure(err))

		return err
	}

	return s.addScheduleLocked(ctx)
}

func (s *LinkScreen) View() LinkView {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.refresher.Holder().State()
	view := LinkView{
		Loading:   state.Loading,
		Available: newSubjectViews(s.Available()),
	}

	if subject, ok := s.selection.Selected(); ok {
		selected := newSubjectView(subject)
		view.Selected = &selected
	}

	if notification, ok := s.notes.Current(); ok {
		view.Notification = &notification
	} else if state.Err != nil {
		notification = loadFailure(state.Err)
		view.Notification = &notification
	}

	return view
}

func (s *LinkScreen) selectLocked(subjectID int) error {
	subject, ok := schedule.FindSubject(s.Available(), subjectID)
	if !ok {
		return errorchain.NewWithMessagef(maclab.ErrArgument,
			"subject %d is not available for linking", subjectID)
	}

	s.selection.Select(subject)

	return nil
}

func (s *LinkScreen) addScheduleLocked(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	subject, ok := s.selection.Selected()
	if !ok {
		s.notes.Show(Notification{Title: titleValidationError, Message: msgSelectSubject})

		return errorchain.NewWithMessage(maclab.ErrValidation, "no subject selected")
	}

	snapshot := s.refresher.Holder().State().Snapshot
	if snapshot == nil || snapshot.Profile.ID == 0 {
		s.notes.Show(Notification{Title: titleError, Message: msgAddFailed})

		return errorchain.NewWithMessage(maclab.ErrValidation, "no signed-in user").
			CausedBy(maclab.ErrNoProfile)
	}

	if err := s.creator.CreateLink(ctx, schedule.Link{
		UserID:    snapshot.Profile.ID,
		SubjectID: subject.ID,
	}); err != nil {
		logger.Warn().Err(err).Int("_subject_id", subject.ID).Msg("Failed to add schedule")
		s.notes.Show(addFailure(err))

		return err
	}

	s.notes.Show(Notification{Title: titleSuccess, Message: msgScheduleAdded})
	s.selection.Clear()

	if err := s.refresher.Refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to refresh after adding schedule")
	}

	return nil
}
