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
	"context"

	"github.com/goccy/go-json"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

// Store persists the profile of the signed-in user as an opaque document
// under a fixed key. Load returns an error wrapping maclab.ErrNoProfile if
// nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, profile Profile) error
	Close() error
}

func NewStore(ctx context.Context, conf config.ProfileConfig) (Store, error) {
	switch conf.Type {
	case config.ProfileStoreBlob:
		return newBlobStore(ctx, conf.Blob, conf.Key)
	case config.ProfileStoreRedis:
		return newRedisStore(conf.Redis, conf.Key)
	case config.ProfileStorePostgres:
		return newPostgresStore(ctx, conf.Postgres, conf.Key)
	default:
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"unsupported profile store type: '%s'", conf.Type)
	}
}

func decodeProfile(raw []byte) (Profile, error) {
	var profile Profile

	if err := json.Unmarshal(raw, &profile); err != nil {
		return Profile{}, errorchain.NewWithMessage(maclab.ErrInternal,
			"stored profile is malformed").CausedBy(err)
	}

	return profile, nil
}

func encodeProfile(profile Profile) ([]byte, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrInternal,
			"failed to marshal profile").CausedBy(err)
	}

	return raw, nil
}
