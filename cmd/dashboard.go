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
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ccs-maclab/maclab/cmd/app"
	"github.com/ccs-maclab/maclab/cmd/flags"
	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/refresh"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newDashboardCmd(), newSubjectsCmd(), newLinkCmd())
}

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Short:   "Shows the home screen: your subjects and the subjects of every instructor",
		Example: "maclab dashboard --tab people -o json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tabValue, _ := cmd.Flags().GetString(flags.Tab)

			tab, err := dashboard.ParseTab(tabValue)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			var (
				refresher *refresh.Refresher
				presenter *dashboard.Presenter
				logger    zerolog.Logger
			)

			return app.Exec(cmd, func(ctx context.Context) error {
				refreshErr := refresher.Refresh(logger.WithContext(ctx))

				if err := presenter.Render(cmd.OutOrStdout(), format,
					dashboard.NewHome(refresher.Holder().State(), tab)); err != nil {
					return err
				}

				return refreshErr
			}, &refresher, &presenter, &logger)
		},
	}

	flags.RegisterGlobalFlags(cmd)
	flags.RegisterOutputFlag(cmd)
	cmd.Flags().String(flags.Tab, string(dashboard.TabOverview), `The tab to show. Can be "Overview" or "People".`)

	return cmd
}

func newSubjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subjects",
		Short:   "Lists the subjects you are not linked to yet",
		Example: "maclab subjects -o yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			var (
				refresher dashboard.Refresher
				screen    *dashboard.LinkScreen
				presenter *dashboard.Presenter
				logger    zerolog.Logger
			)

			return app.Exec(cmd, func(ctx context.Context) error {
				refreshErr := refresher.Refresh(logger.WithContext(ctx))

				if err := presenter.Render(cmd.OutOrStdout(), format, screen.View()); err != nil {
					return err
				}

				return refreshErr
			}, &refresher, &screen, &presenter, &logger)
		},
	}

	flags.RegisterGlobalFlags(cmd)
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "link SUBJECT_ID",
		Short:   "Links you to the given subject",
		Example: "maclab link 12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjectID, err := strconv.Atoi(args[0])
			if err != nil {
				return errorchain.NewWithMessagef(maclab.ErrArgument, "invalid subject id '%s'", args[0]).
					CausedBy(err)
			}

			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			var (
				refresher dashboard.Refresher
				screen    *dashboard.LinkScreen
				presenter *dashboard.Presenter
				logger    zerolog.Logger
			)

			return app.Exec(cmd, func(ctx context.Context) error {
				ctx = logger.WithContext(ctx)

				if err := refresher.Refresh(ctx); err != nil {
					return err
				}

				linkErr := screen.Link(ctx, subjectID)

				if err := presenter.Render(cmd.OutOrStdout(), format, screen.View()); err != nil {
					return err
				}

				return linkErr
			}, &refresher, &screen, &presenter, &logger)
		},
	}

	flags.RegisterGlobalFlags(cmd)
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func outputFormat(cmd *cobra.Command) (dashboard.Format, error) {
	value, _ := cmd.Flags().GetString(flags.Output)

	return dashboard.ParseFormat(value)
}
