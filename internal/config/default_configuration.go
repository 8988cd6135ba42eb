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

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
)

const (
	defaultRequestTimeout  = 10 * time.Second
	defaultRefreshInterval = 1 * time.Second

	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 120 * time.Second

	defaultManagementPort = 4470
	defaultProfileKey     = "userData"
	defaultProfileTable   = "maclab_profiles"
	defaultCacheMaxMemory = 16 * bytesize.MB
)

func defaultConfig() Configuration {
	return Configuration{
		Log: LoggingConfig{
			Level:  zerolog.ErrorLevel,
			Format: LogTextFormat,
		},
		API: APIConfig{
			BaseURL: "https://lockup.pro/api",
			Timeout: defaultRequestTimeout,
			Endpoints: EndpointsConfig{
				Subjects:    "/subs",
				Links:       "/linkedSubjects",
				Instructors: "/instructors",
				CreateLink:  "/linkedSubjects",
			},
		},
		Refresh: RefreshConfig{
			Interval: defaultRefreshInterval,
		},
		Profile: ProfileConfig{
			Type: ProfileStoreBlob,
			Key:  defaultProfileKey,
			Blob: BlobConfig{URL: defaultProfileBucketURL()},
			Postgres: PostgresConfig{
				Table: defaultProfileTable,
			},
		},
		Cache: CacheConfig{
			MaxMemory: defaultCacheMaxMemory,
		},
		Serve: ServeConfig{
			Management: ServiceConfig{
				Port: defaultManagementPort,
				Timeout: Timeout{
					Read:  defaultReadTimeout,
					Write: defaultWriteTimeout,
					Idle:  defaultIdleTimeout,
				},
				Respond: RespondConfig{Verbose: true},
			},
		},
		Metrics: MetricsConfig{Enabled: true},
		Tracing: TracingConfig{SpanProcessor: SpanProcessorBatch},
	}
}

func defaultProfileBucketURL() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mem://"
	}

	return "file://" + filepath.ToSlash(filepath.Join(dir, "maclab")) + "?create_dir=true"
}
