package workers

import (
	"context"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain/event"
	"sync/atomic"
	"time"
)

// DeliveryStats counts what left the outbox.
type DeliveryStats struct {
	Delivered uint64
	Failed    uint64
}

// DeliveryWorker drains the outbox toward the transport, one delivery at a
// time, so every recipient receives events in the order they were published.
//
// It provides best-effort delivery: a failed send is logged and counted,
// never retried. Each send is bounded by sendTimeout.
type DeliveryWorker struct {
	log         *slog.Logger
	transport   contract.Transport
	outbox      <-chan event.Delivery
	sendTimeout time.Duration
	delivered   atomic.Uint64
	failed      atomic.Uint64
}

func NewDeliveryWorker(log *slog.Logger, transport contract.Transport,
	outbox <-chan event.Delivery, sendTimeout time.Duration) *DeliveryWorker {
	return &DeliveryWorker{
		log:         log,
		transport:   transport,
		outbox:      outbox,
		sendTimeout: sendTimeout,
	}
}

func (w *DeliveryWorker) Run(ctx context.Context) error {
	for {
		select {
		case d, ok := <-w.outbox:
			if !ok {
				return nil
			}
			w.Deliver(ctx, d)
		case <-ctx.Done():
			w.flush(ctx)
			w.log.Debug("Context done, delivery worker stopped")
			return nil
		}
	}
}

// flush sends what is still buffered, typically the final leaves of a drain.
func (w *DeliveryWorker) flush(ctx context.Context) {
	for {
		select {
		case d, ok := <-w.outbox:
			if !ok {
				return
			}
			w.Deliver(ctx, d)
		default:
			return
		}
	}
}

// Deliver hands one delivery to the transport. A send that started is only
// bounded by sendTimeout, so a shutdown never cuts a delivery in half.
func (w *DeliveryWorker) Deliver(ctx context.Context, d event.Delivery) {
	if len(d.Recipients) == 0 {
		return
	}
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.sendTimeout)
	defer cancel()

	var err error
	if len(d.Recipients) == 1 {
		err = w.transport.SendToConnection(sendCtx, d.Recipients[0], d.Event)
	} else {
		err = w.transport.SendToConnections(sendCtx, d.Recipients, d.Event)
	}
	if err != nil {
		w.failed.Add(1)
		w.log.Warn("Delivery failed", "event", d.Event.EventName(), "recipients", len(d.Recipients), "error", err)
		return
	}
	w.delivered.Add(1)
}

func (w *DeliveryWorker) Stats() DeliveryStats {
	return DeliveryStats{Delivered: w.delivered.Load(), Failed: w.failed.Load()}
}
