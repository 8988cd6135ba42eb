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

// merge overlays src onto dest. Maps are merged key by key, anything else
// in src replaces the value in dest.
func merge(dest, src any) any {
	if dest == nil {
		return src
	}

	dstMap, dstIsMap := dest.(map[string]any)
	srcMap, srcIsMap := src.(map[string]any)

	if !dstIsMap || !srcIsMap {
		return src
	}

	for key, val := range srcMap {
		dstMap[key] = merge(dstMap[key], val)
	}

	return dstMap
}
