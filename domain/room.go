// Package domain contains core concepts of the presence system.
// Rooms, connected users and the per-connection state machine live here.
// No locking, transport or logging logic should be added here.
package domain

import (
	"github.com/google/uuid"
)

type RoomID = uuid.UUID

// Room is the immutable description of a room. Membership is owned by the
// runtime RoomManager, never by this value.
type Room struct {
	ID       RoomID `validate:"required"`
	Name     string `validate:"required,max=64"`
	MaxUsers int    `validate:"gt=0"`
	// OnDemand rooms are created when every catalogue room is full
	// and may be evicted once empty.
	OnDemand bool
}

func NewRoom(name string, maxUsers int) Room {
	return Room{
		ID:       uuid.New(),
		Name:     name,
		MaxUsers: maxUsers,
	}
}

// RoomInfo is a point-in-time occupancy snapshot of a room.
type RoomInfo struct {
	Room
	UsersInRoom int
}

func (r RoomInfo) HasSpace() bool {
	return r.UsersInRoom < r.MaxUsers
}
