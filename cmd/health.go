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

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/cmd/flags"
	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/endpoint"
	"github.com/ccs-maclab/maclab/internal/handler/management"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

const (
	healthFlagEndpoint = "endpoint"
	healthTimeout      = 5 * time.Second
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newHealthCmd())
}

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of a running maclab service",
		Example: "maclab health -e http://127.0.0.1:4470",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			endpointURL, _ := cmd.Flags().GetString(healthFlagEndpoint)

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ep := endpoint.Endpoint{
				URL:     endpointURL + management.EndpointHealth,
				Timeout: healthTimeout,
				Headers: map[string]string{"Accept": "application/json"},
			}

			rawResp, err := ep.SendRequest(ctx, nil)
			if err != nil {
				return err
			}

			var structuredResponse map[string]any
			if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
				return errorchain.NewWithMessage(maclab.ErrCommunication, "failed to unmarshal response").
					CausedBy(err)
			}

			switch format {
			case dashboard.FormatJSON:
				fmt.Fprintln(cmd.OutOrStdout(), stringx.ToString(rawResp))
			case dashboard.FormatYAML:
				rawYaml, err := yaml.Marshal(structuredResponse)
				if err != nil {
					return err
				}

				fmt.Fprint(cmd.OutOrStdout(), stringx.ToString(rawYaml))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), structuredResponse["status"])
			}

			return nil
		},
	}

	cmd.Flags().StringP(healthFlagEndpoint, "e", "http://127.0.0.1:4470",
		"The base URL of the maclab management service.")
	flags.RegisterOutputFlag(cmd)

	return cmd
}
