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

package remote

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

// decodeList extracts the items from a {"data": [...]} envelope.
func decodeList[T any](raw []byte) ([]T, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorchain.NewWithMessage(maclab.ErrCommunication, "unexpected data format")
	}

	data := gjson.GetBytes(raw, "data")
	if !data.IsArray() {
		return nil, errorchain.NewWithMessage(maclab.ErrCommunication, "unexpected data format")
	}

	items := make([]T, 0, len(data.Array()))
	if err := json.Unmarshal(stringx.ToBytes(data.Raw), &items); err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrCommunication, "unexpected data format").
			CausedBy(err)
	}

	return items, nil
}
