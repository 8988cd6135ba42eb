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

package config

import (
	"github.com/ccs-maclab/maclab/internal/config/parser"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/validation"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	API     APIConfig     `koanf:"api"`
	Refresh RefreshConfig `koanf:"refresh"`
	Profile ProfileConfig `koanf:"profile"`
	Cache   CacheConfig   `koanf:"cache"`
	Serve   ServeConfig   `koanf:"serve"`
	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(StringToByteSizeHookFunc()),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfigSchema),
	).Load(&result)
	if err != nil {
		return nil, err
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration, "invalid configuration").
			CausedBy(err)
	}

	return &result, nil
}
