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

package dashboard

import (
	"go.uber.org/fx"

	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/remote"
)

var Module = fx.Options(
	fx.Provide(
		func(client *remote.Client) LinkCreator { return client },
		func(refresher *refresh.Refresher) Refresher { return refresher },
		NewLinkScreen,
		NewPresenter,
	),
)
