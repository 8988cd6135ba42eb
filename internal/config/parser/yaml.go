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

package parser

import (
	"os"

	"github.com/drone/envsubst/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

// koanfFromYaml reads the file, substitutes ${VAR} references with values
// from the environment and parses the result as YAML.
func koanfFromYaml(configFile string) (*koanf.Koanf, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"failed to read config file %s", configFile).CausedBy(err)
	}

	content, err := envsubst.EvalEnv(stringx.ToString(raw))
	if err != nil {
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"failed to substitute environment variables in %s", configFile).CausedBy(err)
	}

	parser := koanf.New(".")

	if err = parser.Load(rawbytes.Provider(stringx.ToBytes(content)), yaml.Parser()); err != nil {
		return nil, errorchain.NewWithMessagef(maclab.ErrConfiguration,
			"failed to load yaml config from %s", configFile).CausedBy(err)
	}

	return parser, nil
}
