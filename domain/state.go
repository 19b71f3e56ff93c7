package domain

import (
	"fmt"
	"presence-lab/errors"

	"github.com/google/uuid"
)

// Phase is the lifecycle position of one connection.
type Phase int

const (
	Unauthenticated Phase = iota
	Authenticated
	InRoom
	Disconnected
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case InRoom:
		return "in_room"
	case Disconnected:
		return "disconnected"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State of a connection. RoomID is only meaningful in the InRoom phase.
type State struct {
	Phase  Phase
	RoomID RoomID
}

func (s State) Terminal() bool {
	return s.Phase == Disconnected || s.Phase == Rejected
}

// Command is a sealed set of inputs accepted by Transition.
type Command interface {
	command()
}

type Authenticate struct{}

type Reject struct{}

// Join asks for a room. The nil RoomID asks for automatic placement.
type Join struct {
	RoomID RoomID
}

type Typing struct {
	Active bool
}

type Disconnect struct{}

func (Authenticate) command() {}
func (Reject) command()       {}
func (Join) command()         {}
func (Typing) command()       {}
func (Disconnect) command()   {}

// Effect is a sealed set of side effects the coordinator must carry out
// before committing a Plan.
type Effect interface {
	effect()
}

type RegisterConnection struct{}

// AssignRoom places an authenticated connection. A nil RoomID means any room.
type AssignRoom struct {
	RoomID RoomID
}

// MoveRoom switches rooms, staying in From if To refuses the connection.
type MoveRoom struct {
	From RoomID
	To   RoomID
}

// AcknowledgeRoom re-sends the private assignment for the current room.
type AcknowledgeRoom struct {
	RoomID RoomID
}

type AnnounceTyping struct {
	RoomID RoomID
}

type LeaveRoom struct {
	RoomID RoomID
}

type UnregisterConnection struct{}

func (RegisterConnection) effect()   {}
func (AssignRoom) effect()           {}
func (MoveRoom) effect()             {}
func (AcknowledgeRoom) effect()      {}
func (AnnounceTyping) effect()       {}
func (LeaveRoom) effect()            {}
func (UnregisterConnection) effect() {}

// Plan is the outcome of a transition: the state to commit once every effect succeeded.
type Plan struct {
	Next    State
	Effects []Effect
}

// Transition is pure: it never touches shared state, it only describes what must happen.
func Transition(s State, cmd Command) (Plan, error) {
	if s.Terminal() {
		return Plan{Next: s}, errors.ErrConnectionClosed
	}

	switch c := cmd.(type) {
	case Disconnect:
		return disconnect(s), nil

	case Authenticate:
		if s.Phase != Unauthenticated {
			return Plan{Next: s}, fmt.Errorf("%w: authenticate while %s", errors.ErrInvalidTransition, s.Phase)
		}
		return Plan{
			Next:    State{Phase: Authenticated},
			Effects: []Effect{RegisterConnection{}},
		}, nil

	case Reject:
		if s.Phase != Unauthenticated {
			return Plan{Next: s}, fmt.Errorf("%w: reject while %s", errors.ErrInvalidTransition, s.Phase)
		}
		return Plan{Next: State{Phase: Rejected}}, nil

	case Join:
		return join(s, c)

	case Typing:
		if s.Phase != InRoom {
			return Plan{Next: s}, errors.ErrNotInRoom
		}
		// UserTyping carries no flag, so only a start is worth relaying.
		if !c.Active {
			return Plan{Next: s}, nil
		}
		return Plan{
			Next:    s,
			Effects: []Effect{AnnounceTyping{RoomID: s.RoomID}},
		}, nil
	}
	return Plan{Next: s}, fmt.Errorf("%w: unknown command %T", errors.ErrInvalidTransition, cmd)
}

func join(s State, c Join) (Plan, error) {
	switch s.Phase {
	case Unauthenticated:
		return Plan{Next: s}, errors.ErrNotAuthenticated
	case Authenticated:
		return Plan{
			Next:    State{Phase: InRoom, RoomID: c.RoomID},
			Effects: []Effect{AssignRoom{RoomID: c.RoomID}},
		}, nil
	default:
		if c.RoomID == uuid.Nil || c.RoomID == s.RoomID {
			return Plan{Next: s, Effects: []Effect{AcknowledgeRoom{RoomID: s.RoomID}}}, nil
		}
		return Plan{
			Next:    State{Phase: InRoom, RoomID: c.RoomID},
			Effects: []Effect{MoveRoom{From: s.RoomID, To: c.RoomID}},
		}, nil
	}
}

func disconnect(s State) Plan {
	next := State{Phase: Disconnected}
	switch s.Phase {
	case InRoom:
		return Plan{Next: next, Effects: []Effect{LeaveRoom{RoomID: s.RoomID}, UnregisterConnection{}}}
	case Authenticated:
		return Plan{Next: next, Effects: []Effect{UnregisterConnection{}}}
	default:
		return Plan{Next: next}
	}
}
