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

package profile

import (
	"github.com/goccy/go-json"
)

const anonymousName = "User"

// Profile describes the signed-in user. Attributes other than id and
// username are kept as they were stored.
type Profile struct {
	ID       int
	Username string
	Extra    map[string]json.RawMessage
}

// DisplayName returns the username or a generic name for anonymous users.
func (p Profile) DisplayName() string {
	if len(p.Username) == 0 {
		return anonymousName
	}

	return p.Username
}

func (p Profile) MarshalJSON() ([]byte, error) {
	values := make(map[string]any, len(p.Extra)+2) // nolint: mnd
	for key, value := range p.Extra {
		values[key] = value
	}

	values["id"] = p.ID
	values["username"] = p.Username

	return json.Marshal(values)
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var known struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	}

	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	delete(all, "id")
	delete(all, "username")

	p.ID = known.ID
	p.Username = known.Username
	p.Extra = all

	return nil
}
