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
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/remote"
)

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		func(client *remote.Client) Fetcher { return client },
		func(store profile.Store) ProfileLoader { return store },
		NewRefresher,
	),
)

// Polling starts the periodic refresh together with the application.
// nolint: gochecknoglobals
var Polling = fx.Invoke(func(lifecycle fx.Lifecycle, refresher *Refresher) {
	lifecycle.Append(fx.Hook{OnStart: refresher.Start, OnStop: refresher.Stop})
})
