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

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/rueidisotel"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

type redisStore struct {
	c   rueidis.Client
	key string
}

func newRedisStore(conf config.RedisConfig, key string) (*redisStore, error) {
	if len(conf.Address) == 0 {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"redis profile store requires 'address' property to be set")
	}

	client, err := rueidisotel.NewClient(rueidis.ClientOption{
		ClientName:   "maclab",
		InitAddress:  []string{conf.Address},
		SelectDB:     conf.DB,
		Username:     conf.Username,
		Password:     conf.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"failed creating redis client").CausedBy(err)
	}

	return &redisStore{c: client, key: key}, nil
}

func (s *redisStore) Load(ctx context.Context) (Profile, error) {
	val, err := s.c.Do(ctx, s.c.B().Get().Key(s.key).Build()).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return Profile{}, maclab.ErrNoProfile
		}

		return Profile{}, errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to read profile").CausedBy(err)
	}

	return decodeProfile(stringx.ToBytes(val))
}

func (s *redisStore) Save(ctx context.Context, profile Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	if err = s.c.Do(ctx, s.c.B().Set().Key(s.key).Value(stringx.ToString(raw)).Build()).Error(); err != nil {
		return errorchain.NewWithMessage(maclab.ErrCommunication,
			"failed to write profile").CausedBy(err)
	}

	return nil
}

func (s *redisStore) Close() error {
	s.c.Close()

	return nil
}
