package worker

import (
	"context"
	"log/slog"
	"time"
)

// SessionStore is the part of the session manager the pruner needs.
type SessionStore interface {
	PruneIdle(idle time.Duration) int
}

// Pruner expires dashboard sessions that have been idle too long.
type Pruner struct {
	sessions    SessionStore
	idleTimeout time.Duration
	interval    time.Duration
}

// NewPruner creates a new Pruner worker. A zero interval derives one from the
// idle timeout.
func NewPruner(sessions SessionStore, idleTimeout, interval time.Duration) *Pruner {
	if interval <= 0 {
		// 10% of the idle timeout, between 1 second and 1 minute
		interval = min(idleTimeout/10, time.Minute)
		interval = max(interval, time.Second)
	}
	return &Pruner{
		sessions:    sessions,
		idleTimeout: idleTimeout,
		interval:    interval,
	}
}

// Interval returns the time between two prune passes.
func (p *Pruner) Interval() time.Duration {
	return p.interval
}

// Start runs the pruner loop until ctx is done.
func (p *Pruner) Start(ctx context.Context) {
	if p.idleTimeout <= 0 {
		return // Expiry disabled
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.prune()
		}
	}
}

func (p *Pruner) prune() int {
	removed := p.sessions.PruneIdle(p.idleTimeout)
	if removed > 0 {
		slog.Info("[Pruner] expired idle sessions", "count", removed, "idle_timeout", p.idleTimeout)
	}
	return removed
}
