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
	"io"
	"net/http"

	"github.com/go-http-utils/etag"
	"github.com/goccy/go-json"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ccs-maclab/maclab/internal/dashboard"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/errorhandler"
	"github.com/ccs-maclab/maclab/internal/handler/middleware/http/methodfilter"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const (
	EndpointHealth            = "/.well-known/health"
	EndpointMetrics           = "/metrics"
	EndpointDashboard         = "/dashboard"
	EndpointAvailableSubjects = "/subjects/available"
	EndpointLinks             = "/links"
)

// errLoggerFun adapts promhttp error logging to zerolog.
type errLoggerFun func(v ...any)

func (l errLoggerFun) Println(v ...any) { l(v...) }

type handlerArgs struct {
	MetricsEnabled bool
	Registerer     prometheus.Registerer
	Gatherer       prometheus.Gatherer
	Refresher      dashboard.Refresher
	Screen         *dashboard.LinkScreen
	ErrorHandler   errorhandler.ErrorHandler
	Logger         zerolog.Logger
}

func newManagementHandler(args handlerArgs) http.Handler {
	mux := http.NewServeMux()
	get := alice.New(methodfilter.New(http.MethodGet))

	mux.Handle(EndpointHealth, get.Then(health()))
	mux.Handle(EndpointDashboard, get.Then(etag.Handler(home(args.Refresher, args.ErrorHandler), false)))
	mux.Handle(EndpointAvailableSubjects, get.Then(etag.Handler(availableSubjects(args.Screen), false)))
	mux.Handle(EndpointLinks, alice.New(methodfilter.New(http.MethodPost)).
		Then(createLink(args.Screen, args.ErrorHandler)))

	if args.MetricsEnabled {
		mux.Handle(EndpointMetrics, get.Then(promhttp.InstrumentMetricHandler(
			args.Registerer,
			promhttp.HandlerFor(
				args.Gatherer,
				promhttp.HandlerOpts{
					Registry: args.Registerer,
					ErrorLog: errLoggerFun(func(v ...any) { args.Logger.Error().Msg(fmt.Sprint(v...)) }),
				},
			),
		)))
	}

	return mux
}

func health() http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		writeJSON(rw, req, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func home(refresher dashboard.Refresher, eh errorhandler.ErrorHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		tab, err := dashboard.ParseTab(req.URL.Query().Get("tab"))
		if err != nil {
			eh.HandleError(rw, req, err)

			return
		}

		writeJSON(rw, req, http.StatusOK, dashboard.NewHome(refresher.Holder().State(), tab))
	}
}

func availableSubjects(screen *dashboard.LinkScreen) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		writeJSON(rw, req, http.StatusOK, screen.View().Available)
	}
}

type linkRequest struct {
	SubjectID int `json:"subject_id"`
}

func createLink(screen *dashboard.LinkScreen, eh errorhandler.ErrorHandler) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		var body linkRequest

		raw, err := io.ReadAll(req.Body)
		if err == nil {
			err = json.Unmarshal(raw, &body)
		}

		if err != nil {
			eh.HandleError(rw, req,
				errorchain.NewWithMessage(maclab.ErrArgument, "failed to decode request body").CausedBy(err))

			return
		}

		if err = screen.Link(req.Context(), body.SubjectID); err != nil {
			eh.HandleError(rw, req, err)

			return
		}

		writeJSON(rw, req, http.StatusCreated, screen.View())
	}
}

func writeJSON(rw http.ResponseWriter, req *http.Request, code int, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Failed to encode response")
		rw.WriteHeader(http.StatusInternalServerError)

		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	rw.Write(raw) //nolint:errcheck
}
