package event

import "presence-lab/domain"

// Delivery is one event addressed to a fixed set of connections.
type Delivery struct {
	Recipients []domain.ConnectionID
	Event      PresenceEvent
	// Droppable deliveries are discarded instead of waiting when the outbox is full.
	Droppable bool
}
