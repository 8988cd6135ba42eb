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

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/config"
)

// nolint: gochecknoglobals
var Module = fx.Provide(newStore)

func newStore(lifecycle fx.Lifecycle, conf *config.Configuration, logger zerolog.Logger) (Store, error) {
	logger.Debug().Str("_type", conf.Profile.Type).Msg("Opening profile store")

	store, err := NewStore(context.Background(), conf.Profile)
	if err != nil {
		return nil, err
	}

	lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Debug().Msg("Closing profile store")

			return store.Close()
		},
	})

	return store, nil
}
