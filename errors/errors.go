package errors

import "fmt"

var (
	ErrWorkerPanic   = fmt.Errorf("worker panic")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Identity
	ErrInvalidToken    = fmt.Errorf("invalid or expired token")
	ErrInvalidIdentity = fmt.Errorf("invalid identity")

	// Rooms, recoverable: the connection keeps its previous state
	ErrRoomFull       = fmt.Errorf("room is full")
	ErrRoomNotFound   = fmt.Errorf("room not found")
	ErrInvalidRoom    = fmt.Errorf("invalid room")
	ErrAlreadyInRoom  = fmt.Errorf("connection already in a room")
	ErrMemberNotFound = fmt.Errorf("connection is not a member of any room")

	// Transport ordering violations
	ErrDuplicateConnection = fmt.Errorf("duplicate connection")
	ErrConnectionNotFound  = fmt.Errorf("connection not found")

	// Connection state machine
	ErrNotAuthenticated  = fmt.Errorf("connection not authenticated")
	ErrNotInRoom         = fmt.Errorf("connection not in a room")
	ErrConnectionClosed  = fmt.Errorf("connection closed")
	ErrInvalidTransition = fmt.Errorf("invalid transition")
	ErrShuttingDown      = fmt.Errorf("coordinator is shutting down")

	// Delivery
	ErrOutboxFull = fmt.Errorf("outbox full")
)
