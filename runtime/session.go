package runtime

import (
	"context"
	"presence-lab/domain"
	"sync"
)

// session serializes every transition of one connection.
// abort cancels an authentication still in flight when the connection drops.
type session struct {
	mu     sync.Mutex
	connID domain.ConnectionID
	state  domain.State
	user   domain.ConnectedUser
	abort  context.CancelFunc
}

func newSession(connID domain.ConnectionID, abort context.CancelFunc) *session {
	return &session{
		connID: connID,
		state:  domain.State{Phase: domain.Unauthenticated},
		abort:  abort,
	}
}
