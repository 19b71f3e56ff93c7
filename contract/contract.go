//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// used when logging supervision lifecycle events.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IRegistry is the source of truth for who is online and through which connection.
type IRegistry interface {
	Register(user domain.ConnectedUser) error
	Unregister(connID domain.ConnectionID) (domain.ConnectedUser, error)
	Lookup(connID domain.ConnectionID) (domain.ConnectedUser, error)
	ListByRoom(roomID domain.RoomID) []domain.ConnectedUser
	Count() int
}

// IRoomManager owns room membership and capacity.
type IRoomManager interface {
	Assign(connID domain.ConnectionID, roomID domain.RoomID) (domain.Assignment, error)
	AssignAny(connID domain.ConnectionID) (domain.Assignment, error)
	Move(connID domain.ConnectionID, from, to domain.RoomID) (domain.Move, error)
	Leave(connID domain.ConnectionID) (domain.Departure, error)
	Occupancy(roomID domain.RoomID) (int, int, error)
	Info(roomID domain.RoomID) (domain.RoomInfo, error)
	Members(roomID domain.RoomID) ([]domain.ConnectionID, error)
	Rooms() []domain.RoomInfo
}

// IBroadcaster computes recipients and payloads of presence events and hands them to delivery.
type IBroadcaster interface {
	AnnounceJoin(members []domain.ConnectionID, joining domain.ConnectedUser) (event.Delivery, error)
	AnnounceLeave(remaining []domain.ConnectionID, leaving domain.ConnectedUser) (event.Delivery, error)
	AnnounceTyping(members []domain.ConnectionID, typing domain.ConnectedUser) (event.Delivery, error)
	Acknowledge(connID domain.ConnectionID, room domain.RoomInfo) (event.Delivery, error)
}
