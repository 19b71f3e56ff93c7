package runtime

import (
	"fmt"
	"presence-lab/domain"
	"presence-lab/errors"
	"sync"

	"github.com/samber/lo"
)

// Registry maps every live connection to its ConnectedUser.
// Records are stored by value and replaced as a whole, so a concurrent
// reader never observes a half-updated user.
type Registry struct {
	mu          sync.RWMutex
	connections map[domain.ConnectionID]domain.ConnectedUser
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[domain.ConnectionID]domain.ConnectedUser),
	}
}

// Register adds a freshly authenticated connection.
// A connection id can only be registered once for its whole lifetime in the registry.
func (r *Registry) Register(user domain.ConnectedUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connections[user.ConnectionID]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateConnection, user.ConnectionID)
	}
	r.connections[user.ConnectionID] = user
	return nil
}

// Unregister removes the connection and returns its last known record.
func (r *Registry) Unregister(connID domain.ConnectionID) (domain.ConnectedUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.connections[connID]
	if !ok {
		return domain.ConnectedUser{}, fmt.Errorf("%w: %s", errors.ErrConnectionNotFound, connID)
	}
	delete(r.connections, connID)
	return user, nil
}

func (r *Registry) Lookup(connID domain.ConnectionID) (domain.ConnectedUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.connections[connID]
	if !ok {
		return domain.ConnectedUser{}, fmt.Errorf("%w: %s", errors.ErrConnectionNotFound, connID)
	}
	return user, nil
}

// ListByRoom returns a snapshot of the users currently placed in a room.
func (r *Registry) ListByRoom(roomID domain.RoomID) []domain.ConnectedUser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(lo.Values(r.connections), func(u domain.ConnectedUser, _ int) bool {
		return u.RoomID == roomID
	})
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// place swaps the room fields of a registered user. Only the RoomManager calls it,
// while holding the lock of the room being entered or left.
func (r *Registry) place(connID domain.ConnectionID, update func(domain.ConnectedUser) (domain.ConnectedUser, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.connections[connID]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrConnectionNotFound, connID)
	}
	user, err := update(user)
	if err != nil {
		return err
	}
	r.connections[connID] = user
	return nil
}
