package workers

import (
	"context"
	"log/slog"
	"time"
)

// JanitorWorker evicts empty on-demand rooms on every tick.
type JanitorWorker struct {
	log      *slog.Logger
	interval time.Duration
	evict    func() int
}

func NewJanitorWorker(log *slog.Logger, interval time.Duration, evict func() int) *JanitorWorker {
	return &JanitorWorker{log: log, interval: interval, evict: evict}
}

func (w *JanitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := w.evict(); n > 0 {
				w.log.Debug("Empty rooms evicted", "count", n)
			}
		}
	}
}
