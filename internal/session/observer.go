package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/launchdash/internal/core/domain"
	"github.com/vietddude/launchdash/internal/metrics"
)

// Update is published after an output has been recomputed.
type Update struct {
	SessionID string
	Output    Output
	// Trigger is the field whose change caused the recomputation; empty for
	// the initial computation.
	Trigger domain.FilterField
	State   domain.FilterState
	Figure  any
	Elapsed time.Duration
}

// Observer receives binder updates. Updates of one session are delivered in
// order while the session is locked, so OnUpdate must not call back into the
// same Binder.
type Observer interface {
	OnUpdate(Update)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Update)

func (f ObserverFunc) OnUpdate(u Update) { f(u) }

// MultiObserver fans out updates to multiple observers.
type MultiObserver []Observer

func (m MultiObserver) OnUpdate(u Update) {
	for _, obs := range m {
		if obs != nil {
			obs.OnUpdate(u)
		}
	}
}

// LogObserver writes one debug line per recomputation.
type LogObserver struct {
	Logger *slog.Logger
}

func (o *LogObserver) OnUpdate(u Update) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	trigger := string(u.Trigger)
	if trigger == "" {
		trigger = "initial"
	}

	logger.LogAttrs(context.Background(), slog.LevelDebug, "Output recomputed",
		slog.String("session", u.SessionID),
		slog.String("output", string(u.Output)),
		slog.String("trigger", trigger),
		slog.String("category", u.State.Category),
		slog.Float64("low", u.State.Range.Low),
		slog.Float64("high", u.State.Range.High),
		slog.Duration("elapsed", u.Elapsed),
	)
}

// MetricsObserver records recomputation counts and latency.
type MetricsObserver struct{}

func (MetricsObserver) OnUpdate(u Update) {
	metrics.Recomputations.WithLabelValues(string(u.Output)).Inc()
	metrics.RecomputeLatency.WithLabelValues(string(u.Output)).Observe(u.Elapsed.Seconds())
}
