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

package management

import (
	"fmt"
	stdlog "log"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/accesslog"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/dump"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/errorhandler"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/logger"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/passthrough"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/recovery"
	"github.com/ccs-maclab/maclab/internal/x"
)

func newService(
	conf *config.Configuration,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
	log zerolog.Logger,
	refresher dashboard.Refresher,
	screen *dashboard.LinkScreen,
) *http.Server {
	cfg := conf.Serve.Management
	eh := errorhandler.New(
		errorhandler.WithVerboseErrors(cfg.Respond.Verbose),
		errorhandler.WithPreconditionErrorCode(cfg.Respond.With.ArgumentError.Code),
		errorhandler.WithCommunicationErrorCode(cfg.Respond.With.CommunicationError.Code),
		errorhandler.WithInternalServerErrorCode(cfg.Respond.With.InternalError.Code),
	)
	opFilter := func(req *http.Request) bool { return req.URL.Path != EndpointHealth }

	hc := alice.New(
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName("management"),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s", req.Method, req.URL.Path)
				}),
				otelhttp.WithFilter(opFilter),
			)
		},
		accesslog.New(log),
		logger.New(log),
		dump.New(),
		recovery.New(eh),
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
	).Then(newManagementHandler(handlerArgs{
		MetricsEnabled: conf.Metrics.Enabled,
		Registerer:     reg,
		Gatherer:       gatherer,
		Refresher:      refresher,
		Screen:         screen,
		ErrorHandler:   eh,
		Logger:         log,
	}))

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     stdlog.New(log, "", 0),
	}
}
