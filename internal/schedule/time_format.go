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

package schedule

import (
	"strconv"
	"strings"

	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const (
	hoursPerHalfDay = 12
	hoursPerDay     = 24
)

// FormatTime converts a 24-hour HH:MM value into its 12-hour representation
// with an AM/PM suffix. Minutes are kept as given. A trailing seconds part
// (HH:MM:SS) is ignored. No timezone handling takes place.
func FormatTime(value string) (string, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 || len(parts[1]) == 0 {
		return "", errorchain.NewWithMessagef(maclab.ErrArgument, "malformed time value '%s'", value)
	}

	// Atoi accepts a sign, the hour must be digits only
	if strings.TrimLeft(parts[0], "0123456789") != "" {
		return "", errorchain.NewWithMessagef(maclab.ErrArgument, "malformed hour in time value '%s'", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour >= hoursPerDay {
		return "", errorchain.NewWithMessagef(maclab.ErrArgument, "malformed hour in time value '%s'", value)
	}

	suffix := "AM"
	if hour >= hoursPerHalfDay {
		suffix = "PM"
	}

	displayHour := hour % hoursPerHalfDay
	if displayHour == 0 {
		displayHour = hoursPerHalfDay
	}

	return strconv.Itoa(displayHour) + ":" + parts[1] + " " + suffix, nil
}

// DisplayTime is FormatTime for presentation purposes. It returns the value
// unchanged if it cannot be formatted.
func DisplayTime(value string) string {
	formatted, err := FormatTime(value)
	if err != nil {
		return value
	}

	return formatted
}
