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

package app

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ccs-maclab/maclab/cmd/flags"
	"github.com/ccs-maclab/maclab/internal"
	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/version"
)

// New creates the application for the given command. The configuration is
// read from the file and environment prefix given by the command flags.
func New(cmd *cobra.Command, mainModule ...fx.Option) (*fx.App, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	app := fx.New(
		fx.Supply(
			config.EnvVarPrefix(envPrefix),
			config.ConfigurationPath(configPath),
		),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
			return &eventLogger{l: logger}
		}),
		internal.Module,
		fx.Invoke(func(logger zerolog.Logger) {
			logger.Info().
				Str("_version", version.Version).
				Str("_cli", cli.String()).
				Msg("Starting maclab")
		}),
		fx.Options(mainModule...),
	)

	return app, app.Err()
}

// Exec starts an application populating the given targets, runs fn and stops
// the application again. It is meant for commands doing a single unit of work.
func Exec(cmd *cobra.Command, fn func(ctx context.Context) error, targets ...any) error {
	app, err := New(cmd, fx.Populate(targets...))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
	defer cancel()

	if err = app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer stopCancel()

	if err = app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}

	return runErr
}
