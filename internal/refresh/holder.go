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
	"sync"
)

// State is what presenters see: the last applied snapshot (if any), the
// error of the newest failed cycle (if it is newer than the snapshot) and
// whether no cycle has completed yet.
type State struct {
	Snapshot *Snapshot
	Err      error
	Loading  bool
}

// Holder keeps the result of the newest cycle. Results of cycles started
// before the one currently applied are discarded.
type Holder struct {
	mu       sync.RWMutex
	applied  uint64
	snapshot *Snapshot
	errSeq   uint64
	err      error
}

func NewHolder() *Holder { return &Holder{} }

// Offer applies the snapshot if its sequence number is higher than the one
// of the currently applied snapshot and reports whether it did.
func (h *Holder) Offer(snapshot Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if snapshot.Sequence <= h.applied {
		return false
	}

	h.applied = snapshot.Sequence
	h.snapshot = &snapshot

	if h.errSeq < snapshot.Sequence {
		h.err = nil
	}

	return true
}

// Fail records the error of the cycle with the given sequence number unless
// a newer cycle has already completed. The applied snapshot is kept.
func (h *Holder) Fail(seq uint64, err error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if seq <= h.applied || seq <= h.errSeq {
		return false
	}

	h.errSeq = seq
	h.err = err

	return true
}

func (h *Holder) Applied() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.applied
}

func (h *Holder) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return State{
		Snapshot: h.snapshot,
		Err:      h.err,
		Loading:  h.snapshot == nil && h.err == nil,
	}
}
