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
	"errors"
	"net/http"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type APIKeyStrategy struct {
	In    string `mapstructure:"in"`
	Name  string `mapstructure:"name"`
	Value string `mapstructure:"value"`
}

func (c *APIKeyStrategy) Apply(_ context.Context, req *http.Request) error {
	switch c.In {
	case "cookie":
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	case "header":
		req.Header.Set(c.Name, c.Value)
	case "query":
		query := req.URL.Query()
		query.Set(c.Name, c.Value)
		req.URL.RawQuery = query.Encode()
	default:
		return errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"unsupported in value (%s) in api key auth strategy", c.In)
	}

	return nil
}

func (c *APIKeyStrategy) validate() error {
	if err := errors.Join(
		requiredProperty("api-key", "name", c.Name),
		requiredProperty("api-key", "value", c.Value),
		requiredProperty("api-key", "in", c.In),
	); err != nil {
		return err
	}

	if c.In != "header" && c.In != "cookie" && c.In != "query" {
		return errorchain.NewWithMessage(maclab.ErrConfiguration,
			"api-key strategy requires 'in' property to be set to either 'header', 'cookie', or 'query'")
	}

	return nil
}
