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

package logging

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/config"
)

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(func(conf *config.Configuration) zerolog.Logger { return NewLogger(conf.Log) }),
	fx.Invoke(func(logger zerolog.Logger, conf *config.Configuration) {
		logger.Info().
			Str("_api", conf.API.BaseURL).
			Dur("_refresh_interval", conf.Refresh.Interval).
			Str("_profile_store", conf.Profile.Type).
			Msg("Configuration loaded")
	}),
)
