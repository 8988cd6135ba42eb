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
	"bytes"
	"os"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/schema"
)

// ValidateConfigSchema checks the given configuration file against the
// embedded JSON schema.
func ValidateConfigSchema(configPath string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return errorchain.NewWithMessage(maclab.ErrConfiguration, "failed to read config").
			CausedBy(err)
	}

	var conf map[string]any

	if err = yaml.Unmarshal(raw, &conf); err != nil {
		return errorchain.NewWithMessage(maclab.ErrConfiguration, "failed to parse config").
			CausedBy(err)
	}

	if conf == nil {
		// empty file
		return nil
	}

	compiledSchema, err := compileSchema("config.schema.json", schema.ConfigSchema)
	if err != nil {
		return errorchain.NewWithMessage(maclab.ErrConfiguration, "failed to compile JSON schema").
			CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiledSchema.Validate(conf); err != nil {
		return errorchain.New(maclab.ErrConfiguration).CausedBy(err)
	}

	return nil
}

func compileSchema(url string, content []byte) (*jsonschema.Schema, error) {
	configSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(url, configSchema); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}
