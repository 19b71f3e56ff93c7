package workers

import (
	"context"
	"log/slog"
	"os"
	"presence-lab/domain"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

// Snapshot is what the telemetry worker observed on its last tick.
type Snapshot struct {
	At          time.Time
	Connections int
	Rooms       []domain.RoomInfo
	Delivery    DeliveryStats
	RSS         uint64
	CPU         float64
}

func (s Snapshot) UsersInRooms() int {
	return lo.SumBy(s.Rooms, func(r domain.RoomInfo) int { return r.UsersInRoom })
}

// TelemetryWorker periodically logs room occupancy, connection count,
// delivery counters and the resources of the process.
type TelemetryWorker struct {
	mu          sync.Mutex
	log         *slog.Logger
	interval    time.Duration
	rooms       func() []domain.RoomInfo
	connections func() int
	delivery    func() DeliveryStats
	latest      Snapshot
}

func NewTelemetryWorker(log *slog.Logger, interval time.Duration,
	rooms func() []domain.RoomInfo, connections func() int, delivery func() DeliveryStats) *TelemetryWorker {
	return &TelemetryWorker{
		log:         log,
		interval:    interval,
		rooms:       rooms,
		connections: connections,
		delivery:    delivery,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Debug("Process stats unavailable", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry")
			return nil
		case <-ticker.C:
			w.Collect(p)
		}
	}
}

// Collect takes one snapshot. A nil process skips the resource figures.
func (w *TelemetryWorker) Collect(p *process.Process) Snapshot {
	snapshot := Snapshot{
		At:          time.Now().UTC(),
		Connections: w.connections(),
		Rooms:       w.rooms(),
		Delivery:    w.delivery(),
	}
	if p != nil {
		if mem, err := p.MemoryInfo(); err == nil {
			snapshot.RSS = mem.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			snapshot.CPU = cpu
		}
	}

	w.mu.Lock()
	w.latest = snapshot
	w.mu.Unlock()

	w.log.Info("Presence telemetry",
		"connections", snapshot.Connections,
		"rooms", len(snapshot.Rooms),
		"users_in_rooms", snapshot.UsersInRooms(),
		"delivered", snapshot.Delivery.Delivered,
		"failed", snapshot.Delivery.Failed,
		"rss", snapshot.RSS,
		"cpu", snapshot.CPU,
	)
	return snapshot
}

func (w *TelemetryWorker) Latest() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest
}
