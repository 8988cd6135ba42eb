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

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ccs-maclab/maclab/cmd/app"
	"github.com/ccs-maclab/maclab/cmd/flags"
	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
	"github.com/ccs-maclab/maclab/internal/x/stringx"
)

const (
	profileFlagID       = "id"
	profileFlagUsername = "username"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newProfileCmd())
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manages the signed-in user",
	}

	cmd.AddCommand(newProfileShowCmd(), newProfileSetCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Shows the signed-in user",
		Example: "maclab profile show -o json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			var store profile.Store

			return app.Exec(cmd, func(ctx context.Context) error {
				usr, err := store.Load(ctx)
				if err != nil {
					if errors.Is(err, maclab.ErrNoProfile) {
						cmd.PrintErrln("No user is signed in")
					}

					return err
				}

				return printProfile(cmd, format, usr)
			}, &store)
		},
	}

	flags.RegisterGlobalFlags(cmd)
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func newProfileSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Stores the signed-in user",
		Example: "maclab profile set --id 7 --username maria",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetInt(profileFlagID)
			username, _ := cmd.Flags().GetString(profileFlagUsername)

			if id <= 0 {
				return errorchain.NewWithMessage(maclab.ErrArgument, "'id' must be greater than 0")
			}

			var store profile.Store

			return app.Exec(cmd, func(ctx context.Context) error {
				usr, err := store.Load(ctx)
				if err != nil && !errors.Is(err, maclab.ErrNoProfile) {
					return err
				}

				usr.ID = id
				usr.Username = username

				if err = store.Save(ctx, usr); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")

				return nil
			}, &store)
		},
	}

	flags.RegisterGlobalFlags(cmd)
	cmd.Flags().Int(profileFlagID, 0, "The id of the user")
	cmd.Flags().String(profileFlagUsername, "", "The name of the user")

	return cmd
}

func printProfile(cmd *cobra.Command, format dashboard.Format, usr profile.Profile) error {
	switch format {
	case dashboard.FormatJSON:
		raw, err := json.Marshal(usr)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), stringx.ToString(raw))
	case dashboard.FormatYAML:
		raw, err := yaml.Marshal(map[string]any{"id": usr.ID, "username": usr.Username})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), stringx.ToString(raw))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\nUsername: %s\n", usr.ID, usr.DisplayName())
	}

	return nil
}
