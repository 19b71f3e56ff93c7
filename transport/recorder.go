// Package transport holds transports that do not leave the process.
package transport

import (
	"context"
	"fmt"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"sync"

	"github.com/samber/lo"
)

// Recorder is an in-memory Transport. It keeps every event per connection in
// arrival order and can be told to fail for given connections.
type Recorder struct {
	mu      sync.Mutex
	inbox   map[domain.ConnectionID][]event.PresenceEvent
	failing map[domain.ConnectionID]struct{}
}

func NewRecorder() *Recorder {
	return &Recorder{
		inbox:   make(map[domain.ConnectionID][]event.PresenceEvent),
		failing: make(map[domain.ConnectionID]struct{}),
	}
}

func (r *Recorder) SendToConnection(ctx context.Context, connID domain.ConnectionID, e event.PresenceEvent) error {
	return r.SendToConnections(ctx, []domain.ConnectionID{connID}, e)
}

// SendToConnections records e for every recipient, including after a failing
// one, and reports the failing recipients once at the end.
func (r *Recorder) SendToConnections(ctx context.Context, connIDs []domain.ConnectionID, e event.PresenceEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var failed []domain.ConnectionID
	for _, id := range connIDs {
		if _, ok := r.failing[id]; ok {
			failed = append(failed, id)
			continue
		}
		r.inbox[id] = append(r.inbox[id], e)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: send to %v failed", errors.ErrConnectionNotFound, failed)
	}
	return nil
}

// Fail makes every following send to connID fail.
func (r *Recorder) Fail(connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failing[connID] = struct{}{}
}

// Events returns a copy of what connID received so far.
func (r *Recorder) Events(connID domain.ConnectionID) []event.PresenceEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.PresenceEvent(nil), r.inbox[connID]...)
}

// Names returns the event names connID received, in order.
func (r *Recorder) Names(connID domain.ConnectionID) []string {
	return lo.Map(r.Events(connID), func(e event.PresenceEvent, _ int) string { return e.EventName() })
}

// Count returns how many events of the given name connID received.
func (r *Recorder) Count(connID domain.ConnectionID, name string) int {
	return lo.CountBy(r.Events(connID), func(e event.PresenceEvent) bool { return e.EventName() == name })
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inbox = make(map[domain.ConnectionID][]event.PresenceEvent)
}
