// Copyright 2022 Dimitrij Drus <dadrus@gmx.de>
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

package cache

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/cache/memory"
	"github.com/ccs-maclab/maclab/internal/config"
)

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerCacheLifecycle),
)

func newCache(conf *config.Configuration, logger zerolog.Logger) Cache {
	logger.Debug().
		Uint64("_max_entries", conf.Cache.MaxEntries).
		Str("_max_memory", conf.Cache.MaxMemory.String()).
		Msg("Instantiating in memory cache")

	return memory.New(conf.Cache)
}

func registerCacheLifecycle(lifecycle fx.Lifecycle, logger zerolog.Logger, cch Cache) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Debug().Msg("Starting cache")

				return cch.Start(ctx)
			},
			OnStop: func(ctx context.Context) error {
				logger.Debug().Msg("Tearing down cache")

				return cch.Stop(ctx)
			},
		},
	)
}
