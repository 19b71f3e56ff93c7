package runtime

import (
	"fmt"
	"log/slog"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"time"

	"github.com/samber/lo"
)

// Broadcaster computes who must hear about a presence change and what they
// receive, then hands the delivery to the outbox drained by the DeliveryWorker.
// It never waits for the transport. Deliveries leave the outbox in the order
// they were published, which is the only ordering guarantee per recipient.
type Broadcaster struct {
	log     *slog.Logger
	outbox  chan<- event.Delivery
	timeout time.Duration
	now     func() time.Time
}

func NewBroadcaster(log *slog.Logger, outbox chan<- event.Delivery, timeout time.Duration) *Broadcaster {
	return &Broadcaster{
		log:     log,
		outbox:  outbox,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// AnnounceJoin tells every member but the joiner that a user arrived.
func (b *Broadcaster) AnnounceJoin(members []domain.ConnectionID, joining domain.ConnectedUser) (event.Delivery, error) {
	d := event.Delivery{
		Recipients: lo.Without(members, joining.ConnectionID),
		Event:      event.NewUserJoined(joining, b.now()),
	}
	return d, b.publish(d)
}

// AnnounceLeave tells the members left behind that a user is gone.
func (b *Broadcaster) AnnounceLeave(remaining []domain.ConnectionID, leaving domain.ConnectedUser) (event.Delivery, error) {
	d := event.Delivery{
		Recipients: lo.Without(remaining, leaving.ConnectionID),
		Event:      event.NewUserLeft(leaving, b.now()),
	}
	return d, b.publish(d)
}

// AnnounceTyping is fire-and-forget: it is dropped when the outbox is full.
func (b *Broadcaster) AnnounceTyping(members []domain.ConnectionID, typing domain.ConnectedUser) (event.Delivery, error) {
	d := event.Delivery{
		Recipients: lo.Without(members, typing.ConnectionID),
		Event:      event.NewUserTyping(typing),
		Droppable:  true,
	}
	return d, b.publish(d)
}

// Acknowledge sends the private room assignment to the joining connection.
func (b *Broadcaster) Acknowledge(connID domain.ConnectionID, room domain.RoomInfo) (event.Delivery, error) {
	d := event.Delivery{
		Recipients: []domain.ConnectionID{connID},
		Event:      event.NewRoomAssignment(room),
	}
	return d, b.publish(d)
}

// TryAcknowledge publishes the private room assignment only if the outbox has
// space right now. It runs under a room mutex and never waits.
func (b *Broadcaster) TryAcknowledge(connID domain.ConnectionID, room domain.RoomInfo) bool {
	select {
	case b.outbox <- event.Delivery{Recipients: []domain.ConnectionID{connID}, Event: event.NewRoomAssignment(room)}:
		return true
	default:
		return false
	}
}

func (b *Broadcaster) publish(d event.Delivery) error {
	if len(d.Recipients) == 0 {
		return nil
	}

	select {
	case b.outbox <- d:
		return nil
	default:
	}

	if d.Droppable {
		b.log.Debug("Outbox full, presence event dropped", "event", d.Event.EventName(), "recipients", len(d.Recipients))
		return nil
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()
	select {
	case b.outbox <- d:
		return nil
	case <-timer.C:
		b.log.Warn("Outbox full, presence event not delivered", "event", d.Event.EventName(), "recipients", len(d.Recipients))
		return fmt.Errorf("%w: %s after %s", errors.ErrOutboxFull, d.Event.EventName(), b.timeout)
	}
}
