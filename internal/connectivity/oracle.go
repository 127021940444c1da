package connectivity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/pkg/logger"
)

// Oracle answers "can we reach the remote store right now?". The answer is a
// hint: a true result does not guarantee the next remote call succeeds, so
// every caller still handles remote failure on its own.
type Oracle struct {
	probe         func(ctx context.Context) error
	online        atomic.Bool
	forcedOffline atomic.Bool
}

// New builds an oracle around a probe, typically the remote client's health
// check. The oracle starts offline until the first successful probe or
// MarkOnline call.
func New(probe func(ctx context.Context) error) *Oracle {
	return &Oracle{probe: probe}
}

func (o *Oracle) IsOnline() bool {
	if o.forcedOffline.Load() {
		return false
	}
	return o.online.Load()
}

// MarkOnline and MarkOffline feed remote-call outcomes back into the oracle
// so a failed insert flips the hint without waiting for the next probe.
func (o *Oracle) MarkOnline()  { o.online.Store(true) }
func (o *Oracle) MarkOffline() { o.online.Store(false) }

// SetForcedOffline lets the operator pin the app offline regardless of actual
// reachability.
func (o *Oracle) SetForcedOffline(v bool) { o.forcedOffline.Store(v) }

func (o *Oracle) ForcedOffline() bool { return o.forcedOffline.Load() }

// Probe runs one reachability check and records the result.
func (o *Oracle) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := o.probe(probeCtx); err != nil {
		o.MarkOffline()
		return false
	}
	o.MarkOnline()
	return true
}

// Run probes on an interval until ctx is cancelled.
func (o *Oracle) Run(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	was := o.IsOnline()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := o.Probe(ctx)
			if now != was {
				log.Info("connectivity changed", "online", now)
				was = now
			}
		}
	}
}
