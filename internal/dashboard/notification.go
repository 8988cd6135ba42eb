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
	"errors"
	"sync"

	"github.com/ccs-maclab/maclab/internal/maclab"
)

const (
	titleError           = "Error"
	titleValidationError = "Validation Error"
	titleSuccess         = "Success"

	msgSelectSubject    = "Please select a subject."
	msgScheduleAdded    = "Schedule added successfully!"
	msgAddFailed        = "Failed to add schedule."
	msgLoadFailed       = "Failed to load subjects and linked subjects."
	msgUnexpectedFormat = "Failed to load subjects."
)

// Notification is a single dismissible message shown to the user.
type Notification struct {
	Title   string `json:"title"   yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

// Notifications holds at most one notification. A new one replaces the
// previous.
type Notifications struct {
	mu      sync.Mutex
	current *Notification
}

func (n *Notifications) Show(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = &notification
}

func (n *Notifications) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notification{}, false
	}

	return *n.current, true
}

func (n *Notifications) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = nil
}

// loadFailure maps the error of a failed refresh to the notification shown
// on the screens.
func loadFailure(err error) Notification {
	var chain interface{ Message() string }

	switch {
	case errors.As(err, &chain) && chain.Message() == "unexpected data format":
		return Notification{Title: titleError, Message: msgUnexpectedFormat}
	default:
		return Notification{Title: titleError, Message: msgLoadFailed}
	}
}

func addFailure(err error) Notification {
	if errors.Is(err, maclab.ErrValidation) {
		return Notification{Title: titleValidationError, Message: msgSelectSubject}
	}

	return Notification{Title: titleError, Message: msgAddFailed}
}
