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
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

// toRealType lets the yaml parser guess the type of the given value.
func toRealType(val string) any {
	var parsed map[string]any

	yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}

// envKeyToPath maps e.g. API_BASE__URL to api.base_url. A single underscore
// separates levels, a double one is kept as a literal underscore.
func envKeyToPath(key, prefix string) string {
	tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, `\:\`, "_")
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return envKeyToPath(key, prefix), toRealType(val)
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return parser, nil
}
