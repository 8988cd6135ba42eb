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

package refresh

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultApplied = "applied"
	resultStale   = "stale"
	resultFailed  = "failed"
)

type metrics struct {
	cycles   *prometheus.CounterVec
	duration prometheus.Histogram
	sequence prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "maclab",
			Subsystem: "refresh",
			Name:      "cycles_total",
			Help:      "Number of completed refresh cycles by result",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "maclab",
			Subsystem: "refresh",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of refresh cycles",
			Buckets:   prometheus.DefBuckets,
		}),
		sequence: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "maclab",
			Subsystem: "refresh",
			Name:      "applied_sequence",
			Help:      "Sequence number of the currently applied snapshot",
		}),
	}

	for _, collector := range []prometheus.Collector{m.cycles, m.duration, m.sequence} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}
