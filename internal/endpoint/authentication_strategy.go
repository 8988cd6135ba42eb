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

package endpoint

import (
	"context"
	"net/http"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type AuthenticationStrategy interface {
	Apply(ctx context.Context, req *http.Request) error
}

// NewAuthenticationStrategy creates the strategy of the given type from its
// configuration properties. Supported types are basic_auth, api_key and
// client_credentials.
func NewAuthenticationStrategy(typ string, config map[string]any) (AuthenticationStrategy, error) {
	if config == nil {
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"%s strategy requires 'config' property to be set", typ)
	}

	switch typ {
	case "basic_auth":
		return decodeStrategy(config, &BasicAuthStrategy{})
	case "api_key":
		return decodeStrategy(config, &APIKeyStrategy{})
	case "client_credentials":
		return decodeStrategy(config, &ClientCredentialsStrategy{})
	default:
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"unsupported authentication type: '%s'", typ)
	}
}

type validatable interface {
	AuthenticationStrategy
	validate() error
}

func decodeStrategy[T validatable](config map[string]any, strategy T) (AuthenticationStrategy, error) {
	if err := mapstructure.Decode(config, strategy); err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"failed decoding authentication strategy").CausedBy(err)
	}

	if err := strategy.validate(); err != nil {
		return nil, err
	}

	return strategy, nil
}

func requiredProperty(strategy, name, value string) error {
	if len(value) != 0 {
		return nil
	}

	return errorchain.NewWithMessagef(maclab.ErrConfiguration,
		"%s strategy requires '%s' property to be set", strategy, name)
}
