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
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ccs-maclab/maclab/internal/config"
	"github.com/ccs-maclab/maclab/internal/maclab"
	"github.com/ccs-maclab/maclab/internal/profile"
	"github.com/ccs-maclab/maclab/internal/remote"
	"github.com/ccs-maclab/maclab/internal/x/errorchain"
)

const tracerName = "github.com/ccs-maclab/maclab/internal/refresh"

type Fetcher interface {
	FetchAll(ctx context.Context) (remote.Lists, error)
}

type ProfileLoader interface {
	Load(ctx context.Context) (profile.Profile, error)
}

// Refresher periodically fetches the remote collections, joins them for the
// profile user and offers the result to its Holder. Cycles may overlap. Each
// one takes its sequence number when it starts, so a slow cycle can never
// replace the result of a cycle started after it.
type Refresher struct {
	f        Fetcher
	p        ProfileLoader
	h        *Holder
	m        *metrics
	t        trace.Tracer
	l        zerolog.Logger
	interval time.Duration
	counter  atomic.Uint64

	mu     sync.Mutex
	s      gocron.Scheduler
	cancel context.CancelFunc
}

func NewRefresher(
	conf *config.Configuration,
	fetcher Fetcher,
	profiles ProfileLoader,
	reg prometheus.Registerer,
	logger zerolog.Logger,
) (*Refresher, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, errorchain.NewWithMessage(maclab.ErrInternal,
			"failed registering refresh metrics").CausedBy(err)
	}

	return &Refresher{
		f:        fetcher,
		p:        profiles,
		h:        NewHolder(),
		m:        m,
		t:        otel.GetTracerProvider().Tracer(tracerName),
		l:        logger,
		interval: conf.Refresh.Interval,
	}, nil
}

func (r *Refresher) Holder() *Holder { return r.h }

// Refresh runs a single cycle and waits for it to complete. It returns the
// error of the cycle if it failed.
func (r *Refresher) Refresh(ctx context.Context) error {
	return r.cycle(ctx)
}

// Start schedules a cycle every configured interval, the first one
// immediately.
func (r *Refresher) Start(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return errorchain.NewWithMessage(maclab.ErrInternal,
			"failed creating refresh scheduler").CausedBy(err)
	}

	ctx, cancel := context.WithCancel(r.l.WithContext(context.Background()))

	if _, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() { _ = r.cycle(ctx) }),
		gocron.WithName("refresh"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		cancel()

		return errorchain.NewWithMessage(maclab.ErrInternal,
			"failed scheduling refresh job").CausedBy(err)
	}

	r.l.Info().Dur("_interval", r.interval).Msg("Starting refresh")

	scheduler.Start()

	r.s = scheduler
	r.cancel = cancel

	return nil
}

// Stop cancels in-flight cycles and waits for the scheduler to shut down.
func (r *Refresher) Stop(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s == nil {
		return nil
	}

	r.l.Info().Msg("Stopping refresh")

	r.cancel()
	err := r.s.Shutdown()
	r.s = nil

	return err
}

func (r *Refresher) cycle(ctx context.Context) error {
	seq := r.counter.Add(1)
	cycleID := uuid.NewString()
	start := time.Now()

	ctx, span := r.t.Start(ctx, "refresh cycle",
		trace.WithAttributes(
			attribute.Int64("maclab.refresh.sequence", int64(seq)), // nolint: gosec
			attribute.String("maclab.refresh.cycle_id", cycleID),
		))
	defer span.End()

	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &r.l
	}

	cycleLogger := logger.With().Uint64("_sequence", seq).Str("_cycle_id", cycleID).Logger()
	ctx = cycleLogger.WithContext(ctx)

	snapshot, err := r.fetch(ctx, seq, cycleID)

	r.m.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refresh failed")

		r.m.cycles.WithLabelValues(resultFailed).Inc()

		if r.h.Fail(seq, err) {
			cycleLogger.Warn().Err(err).Msg("Refresh failed. Keeping previous state")
		}

		return err
	}

	if !r.h.Offer(snapshot) {
		r.m.cycles.WithLabelValues(resultStale).Inc()
		span.SetAttributes(attribute.Bool("maclab.refresh.stale", true))

		cycleLogger.Debug().Uint64("_applied", r.h.Applied()).Msg("Discarding stale refresh result")

		return nil
	}

	r.m.cycles.WithLabelValues(resultApplied).Inc()
	r.m.sequence.Set(float64(seq))

	cycleLogger.Debug().
		Int("_subjects", len(snapshot.Lists.Subjects)).
		Int("_links", len(snapshot.Lists.Links)).
		Int("_instructors", len(snapshot.Lists.Instructors)).
		Msg("Refresh applied")

	return nil
}

func (r *Refresher) fetch(ctx context.Context, seq uint64, cycleID string) (Snapshot, error) {
	usr, err := r.p.Load(ctx)
	if err != nil && !errors.Is(err, maclab.ErrNoProfile) {
		return Snapshot{}, err
	}

	lists, err := r.f.FetchAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return newSnapshot(seq, cycleID, usr, lists), nil
}
