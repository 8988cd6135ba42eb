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

package otel

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const (
	exporterNone       = "none"
	exporterOTLP       = "otlp"
	exporterZipkin     = "zipkin"
	exporterPrometheus = "prometheus"

	protocolGRPC = "grpc"
)

var (
	ErrUnsupportedExporterType = errors.New("unsupported exporter type")
	ErrUnsupportedOTLPProtocol = errors.New("unsupported OTLP protocol")
	ErrFailedCreatingExporter  = errors.New("failed creating exporter")
)

// exporterNames reads a comma separated exporter list as defined by the
// OpenTelemetry SDK environment variables. "none" anywhere disables export.
func exporterNames(envName, def string) []string {
	value, ok := os.LookupEnv(envName)
	if !ok || len(strings.TrimSpace(value)) == 0 {
		return []string{def}
	}

	var names []string

	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == exporterNone {
			return nil
		}

		if len(name) != 0 {
			names = append(names, name)
		}
	}

	return names
}

func otlpProtocol(signalEnvName string) string {
	if value, ok := os.LookupEnv(signalEnvName); ok {
		return value
	}

	if value, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_PROTOCOL"); ok {
		return value
	}

	return "http/protobuf"
}

func newSpanExporters(ctx context.Context) ([]trace.SpanExporter, error) {
	names := exporterNames("OTEL_TRACES_EXPORTER", exporterOTLP)
	exps := make([]trace.SpanExporter, 0, len(names))

	for _, name := range names {
		var (
			exp trace.SpanExporter
			err error
		)

		switch name {
		case exporterOTLP:
			switch protocol := otlpProtocol("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"); protocol {
			case protocolGRPC:
				exp, err = otlptracegrpc.New(ctx)
			case "http/protobuf":
				exp, err = otlptracehttp.New(ctx)
			default:
				err = errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
			}
		case exporterZipkin:
			exp, err = zipkin.New("")
		default:
			return nil, errorchain.NewWithMessage(ErrUnsupportedExporterType, name)
		}

		if err != nil {
			return nil, errorchain.NewWithMessage(ErrFailedCreatingExporter, name).CausedBy(err)
		}

		exps = append(exps, exp)
	}

	return exps, nil
}

// newMetricReaders defaults to the prometheus bridge, which publishes the
// OpenTelemetry instruments through the management service's /metrics
// endpoint.
func newMetricReaders(ctx context.Context, reg prometheus.Registerer) ([]metric.Reader, error) {
	names := exporterNames("OTEL_METRICS_EXPORTER", exporterPrometheus)
	readers := make([]metric.Reader, 0, len(names))

	for _, name := range names {
		var (
			reader metric.Reader
			err    error
		)

		switch name {
		case exporterPrometheus:
			reader, err = otelprom.New(otelprom.WithRegisterer(reg))
		case exporterOTLP:
			var exp metric.Exporter

			switch protocol := otlpProtocol("OTEL_EXPORTER_OTLP_METRICS_PROTOCOL"); protocol {
			case protocolGRPC:
				exp, err = otlpmetricgrpc.New(ctx)
			case "http/protobuf", "http/json":
				exp, err = otlpmetrichttp.New(ctx)
			default:
				err = errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
			}

			if err == nil {
				reader = metric.NewPeriodicReader(exp)
			}
		default:
			return nil, errorchain.NewWithMessage(ErrUnsupportedExporterType, name)
		}

		if err != nil {
			return nil, errorchain.NewWithMessage(ErrFailedCreatingExporter, name).CausedBy(err)
		}

		readers = append(readers, reader)
	}

	return readers, nil
}
