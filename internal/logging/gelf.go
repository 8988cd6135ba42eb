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

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/version"
)

// syslog severities carried in the GELF level field
const (
	severityEmergency int8 = iota
	severityAlert
	severityCritical
	severityError
	severityWarning
	severityNotice
	severityInformational
	severityDebugging
)

// nolint: gochecknoglobals
var gelfSeverities = map[zerolog.Level]int8{
	zerolog.TraceLevel: severityDebugging,
	zerolog.DebugLevel: severityDebugging,
	zerolog.InfoLevel:  severityInformational,
	zerolog.WarnLevel:  severityWarning,
	zerolog.ErrorLevel: severityError,
	zerolog.FatalLevel: severityCritical,
	zerolog.PanicLevel: severityAlert,
}

func gelfSeverity(level zerolog.Level) int8 {
	if severity, ok := gelfSeverities[level]; ok {
		return severity
	}

	return severityEmergency
}

func newGelfLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "_level_name"
	zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string { return strings.ToUpper(l.String()) }
	zerolog.MessageFieldName = "short_message"
	zerolog.ErrorFieldName = "_error" // nolint: reassign
	zerolog.CallerFieldName = "_caller"

	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return zerolog.New(out).Level(level).With().
		Str("version", "1.1").
		Str("host", host).
		Str("_app_version", version.Version).
		Timestamp().
		Logger().
		Hook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, _ string) {
			if level != zerolog.NoLevel {
				e.Int8("level", gelfSeverity(level))
			}
		}))
}
