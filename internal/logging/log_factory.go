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

package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/config"
)

// NewLogger creates the application logger. Logs are always written to
// stderr so that command output on stdout stays machine readable.
func NewLogger(conf config.LoggingConfig) zerolog.Logger {
	return newLogger(os.Stderr, conf)
}

func newLogger(out io.Writer, conf config.LoggingConfig) zerolog.Logger {
	if conf.Format == config.LogGelfFormat {
		return newGelfLogger(out, conf.Level)
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = out != os.Stderr
		w.TimeFormat = time.RFC3339
	})).Level(conf.Level).With().Timestamp().Logger()
}
