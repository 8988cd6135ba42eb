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

package internal

import (
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/cache"
	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/logging"
	"github.com/ccs-maclab/maclab/internal/otel"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/prometheus"
	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/remote"
	"github.com/ccs-maclab/maclab/internal/validation"
)

// Module wires everything the commands share. Background polling and the
// management service are added by the serve command only.
// nolint: gochecknoglobals
var Module = fx.Options(
	validation.Module,
	config.Module,
	logging.Module,
	cache.Module,
	prometheus.Module,
	otel.Module,
	remote.Module,
	profile.Module,
	refresh.Module,
	dashboard.Module,
)
