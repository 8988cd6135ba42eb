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

package config

import (
	"net/url"
	"strings"
	"time"
)

type APIConfig struct {
	BaseURL   string            `koanf:"base_url"  validate:"required,url"`
	Timeout   time.Duration     `koanf:"timeout"   validate:"gt=0"`
	Headers   map[string]string `koanf:"headers"`
	Retry     *RetryConfig      `koanf:"retry,omitempty"`
	Auth      *AuthConfig       `koanf:"auth,omitempty"`
	Endpoints EndpointsConfig   `koanf:"endpoints"`
}

type RetryConfig struct {
	GiveUpAfter time.Duration `koanf:"give_up_after" mapstructure:"give_up_after"`
	MaxDelay    time.Duration `koanf:"max_delay"     mapstructure:"max_delay"`
}

// AuthConfig is decoded into an authentication strategy by the endpoint
// package. Config holds the strategy specific settings.
type AuthConfig struct {
	Type   string         `koanf:"type"   validate:"required,oneof=basic_auth api_key client_credentials"`
	Config map[string]any `koanf:"config" validate:"required"`
}

type EndpointsConfig struct {
	Subjects    string `koanf:"subjects"    validate:"required"`
	Links       string `koanf:"links"       validate:"required"`
	Instructors string `koanf:"instructors" validate:"required"`
	CreateLink  string `koanf:"create_link" validate:"required"`
}

// Resolve makes the given endpoint path absolute with regard to BaseURL.
// Absolute URLs are returned unchanged.
func (c APIConfig) Resolve(path string) string {
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}

	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
