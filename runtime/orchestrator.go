// Package runtime holds the live presence state: connection registry, room
// arena, broadcaster and the coordinator that drives them. It owns every lock
// in the system and no transport code.
package runtime

import (
	"context"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/runtime/workers"
	"time"
)

type Settings struct {
	Catalogue        []domain.Room
	DefaultMaxUsers  int
	OutboxSize       int
	OutboxTimeout    time.Duration
	SinkTimeout      time.Duration
	RestartInterval  time.Duration
	MetricInterval   time.Duration
	EvictionInterval time.Duration
}

// Orchestrator is the single, explicitly built owner of the presence state.
// Start brings up the supervised workers on an empty state; Stop drains it by
// force-disconnecting every connection and flushing the final leaves.
type Orchestrator struct {
	log         *slog.Logger
	supervisor  *workers.Supervisor
	registry    *Registry
	rooms       *RoomManager
	coordinator *Coordinator
	delivery    *workers.DeliveryWorker
	telemetry   *workers.TelemetryWorker
	cancel      context.CancelFunc
	done        chan struct{}
}

func NewOrchestrator(log *slog.Logger,
	verifier contract.IdentityVerifier, avatars contract.AvatarSource, transport contract.Transport,
	settings Settings) (*Orchestrator, error) {
	registry := NewRegistry()
	rooms, err := NewRoomManager(log, registry, settings.DefaultMaxUsers, settings.Catalogue...)
	if err != nil {
		return nil, err
	}

	outbox := make(chan event.Delivery, settings.OutboxSize)
	broadcaster := NewBroadcaster(log, outbox, settings.OutboxTimeout)
	rooms.AcknowledgeWith(broadcaster.TryAcknowledge)
	coordinator := NewCoordinator(log, verifier, avatars, registry, rooms, broadcaster)
	delivery := workers.NewDeliveryWorker(log, transport, outbox, settings.SinkTimeout)
	telemetry := workers.NewTelemetryWorker(log, settings.MetricInterval, rooms.Rooms, registry.Count, delivery.Stats)

	supervisor := workers.NewSupervisor(log, settings.RestartInterval)
	supervisor.Add(delivery, telemetry, workers.NewJanitorWorker(log, settings.EvictionInterval, rooms.EvictEmpty))

	return &Orchestrator{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		rooms:       rooms,
		coordinator: coordinator,
		delivery:    delivery,
		telemetry:   telemetry,
		done:        make(chan struct{}),
	}, nil
}

// Start launches the supervised workers and returns immediately.
func (o *Orchestrator) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	o.log.Info("Starting presence orchestrator", "rooms", len(o.rooms.Rooms()))
	go func() {
		defer close(o.done)
		o.supervisor.Run(runCtx)
	}()
}

// Stop disconnects everyone, lets the delivery worker flush the final leaves
// and waits for the workers until ctx expires.
func (o *Orchestrator) Stop(ctx context.Context) error {
	closed := o.coordinator.DisconnectAll(ctx)
	o.log.Info("Connections drained", "count", closed)

	if o.cancel == nil {
		return nil
	}
	o.cancel()
	select {
	case <-o.done:
		o.log.Info("Presence orchestrator stopped", "delivered", o.delivery.Stats().Delivered, "failed", o.delivery.Stats().Failed)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Orchestrator) Coordinator() *Coordinator { return o.coordinator }

func (o *Orchestrator) Rooms() *RoomManager { return o.rooms }

func (o *Orchestrator) Registry() *Registry { return o.registry }

func (o *Orchestrator) Telemetry() *workers.TelemetryWorker { return o.telemetry }
