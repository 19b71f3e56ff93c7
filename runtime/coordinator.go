package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"presence-lab/contract"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Coordinator drives the state machine of every connection. Transitions of one
// connection are serialized by its session; distinct connections run in parallel
// and only meet on room mutexes and the registry.
//
// A disconnect always wins: the session is forgotten before its lock is taken,
// an authentication in flight is canceled, and whatever transition acquires the
// lock afterwards finds a terminal state and applies nothing.
type Coordinator struct {
	mu          sync.Mutex
	log         *slog.Logger
	verifier    contract.IdentityVerifier
	avatars     contract.AvatarSource
	registry    contract.IRegistry
	rooms       contract.IRoomManager
	broadcaster contract.IBroadcaster
	sessions    map[domain.ConnectionID]*session
	closing     bool
	now         func() time.Time
}

func NewCoordinator(log *slog.Logger,
	verifier contract.IdentityVerifier, avatars contract.AvatarSource,
	registry contract.IRegistry, rooms contract.IRoomManager, broadcaster contract.IBroadcaster) *Coordinator {
	return &Coordinator{
		log:         log,
		verifier:    verifier,
		avatars:     avatars,
		registry:    registry,
		rooms:       rooms,
		broadcaster: broadcaster,
		sessions:    make(map[domain.ConnectionID]*session),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// OnConnect authenticates a new transport session.
func (c *Coordinator) OnConnect(ctx context.Context, connID domain.ConnectionID, token string) (domain.ConnectedUser, error) {
	verifyCtx, abort := context.WithCancel(ctx)
	defer abort()

	s, err := c.open(connID, abort)
	if err != nil {
		c.log.Warn("Connect refused", "connection_id", connID, "error", err)
		return domain.ConnectedUser{}, err
	}

	identity, err := c.verifier.Verify(verifyCtx, token)
	if err != nil {
		return domain.ConnectedUser{}, c.reject(s, err)
	}

	avatar, err := c.avatars.AvatarFor(verifyCtx, identity.UserID)
	if err != nil {
		c.log.Debug("Avatar unavailable, using default", "user_id", identity.UserID, "error", err)
		avatar = domain.DefaultAvatar
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := domain.Transition(s.state, domain.Authenticate{})
	if err != nil {
		return domain.ConnectedUser{}, err
	}
	s.user = domain.NewConnectedUser(connID, identity, avatar, c.now())
	if _, err = c.apply(s, plan); err != nil {
		c.log.Warn("Connect failed", "connection_id", connID, "error", err)
		c.forgetIf(s)
		return domain.ConnectedUser{}, err
	}

	c.log.Info("Connection authenticated", "connection_id", connID, "user_id", identity.UserID, "nickname", identity.Nickname)
	return s.user, nil
}

func (c *Coordinator) reject(s *session, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := domain.Transition(s.state, domain.Reject{})
	if err != nil {
		// Disconnected while the token was being verified.
		return err
	}
	s.state = plan.Next
	c.forgetIf(s)
	c.log.Warn("Connection rejected", "connection_id", s.connID, "error", cause)
	if stderrors.Is(cause, errors.ErrInvalidToken) {
		return cause
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidToken, cause)
}

// OnJoinRoomRequest places the connection in a room, switching rooms if it is
// already in one. uuid.Nil asks for automatic placement. On ErrRoomFull or
// ErrRoomNotFound the connection keeps its previous state.
func (c *Coordinator) OnJoinRoomRequest(_ context.Context, connID domain.ConnectionID, roomID domain.RoomID) (event.RoomAssignmentData, error) {
	s, err := c.session(connID)
	if err != nil {
		return event.RoomAssignmentData{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := domain.Transition(s.state, domain.Join{RoomID: roomID})
	if err != nil {
		return event.RoomAssignmentData{}, err
	}
	room, err := c.apply(s, plan)
	if err != nil {
		c.log.Info("Join refused", "connection_id", connID, "room_id", roomID, "error", err)
		return event.RoomAssignmentData{}, err
	}
	return event.NewRoomAssignment(room), nil
}

// OnTyping relays a typing signal to the other members of the room.
func (c *Coordinator) OnTyping(_ context.Context, connID domain.ConnectionID, active bool) error {
	s, err := c.session(connID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := domain.Transition(s.state, domain.Typing{Active: active})
	if err != nil {
		return err
	}
	_, err = c.apply(s, plan)
	return err
}

// OnDisconnect ends a connection from any state. A second call for the same
// connection reports ErrConnectionNotFound and emits nothing.
func (c *Coordinator) OnDisconnect(_ context.Context, connID domain.ConnectionID) error {
	s := c.forget(connID)
	if s == nil {
		c.log.Debug("Disconnect for unknown connection", "connection_id", connID)
		return fmt.Errorf("%w: %s", errors.ErrConnectionNotFound, connID)
	}
	s.abort()

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := domain.Transition(s.state, domain.Disconnect{})
	if err != nil {
		return err
	}
	// Every effect runs even if a previous one failed: the connection must end up
	// absent from all rooms and from the registry.
	for _, effect := range plan.Effects {
		if _, err = c.execute(s, effect); err != nil {
			c.log.Warn("Disconnect effect failed", "connection_id", connID, "effect", fmt.Sprintf("%T", effect), "error", err)
		}
	}
	s.state = plan.Next
	c.log.Info("Connection closed", "connection_id", connID, "user_id", s.user.UserID)
	return nil
}

// DisconnectAll refuses new connections and ends every live one, broadcasting
// their final leaves. It returns how many connections were closed.
func (c *Coordinator) DisconnectAll(ctx context.Context) int {
	c.mu.Lock()
	c.closing = true
	ids := lo.Keys(c.sessions)
	c.mu.Unlock()

	closed := 0
	for _, id := range ids {
		if err := c.OnDisconnect(ctx, id); err == nil {
			closed++
		}
	}
	return closed
}

// State returns the current state of a live connection.
func (c *Coordinator) State(connID domain.ConnectionID) (domain.State, error) {
	s, err := c.session(connID)
	if err != nil {
		return domain.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

func (c *Coordinator) Connections() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// apply runs the effects of a plan and commits its state only if all of them succeeded.
// It returns the room the connection ends up in, if any.
func (c *Coordinator) apply(s *session, plan domain.Plan) (domain.RoomInfo, error) {
	var room domain.RoomInfo
	for _, effect := range plan.Effects {
		r, err := c.execute(s, effect)
		if err != nil {
			return domain.RoomInfo{}, err
		}
		if r.ID != uuid.Nil {
			room = r
		}
	}
	next := plan.Next
	if next.Phase == domain.InRoom && room.ID != uuid.Nil {
		next.RoomID = room.ID
	}
	s.state = next
	return room, nil
}

// execute performs one effect. Delivery failures after a membership change are
// logged, not returned: the membership change already happened.
func (c *Coordinator) execute(s *session, effect domain.Effect) (domain.RoomInfo, error) {
	switch e := effect.(type) {
	case domain.RegisterConnection:
		return domain.RoomInfo{}, c.registry.Register(s.user)

	case domain.AssignRoom:
		var a domain.Assignment
		var err error
		if e.RoomID == uuid.Nil {
			a, err = c.rooms.AssignAny(s.connID)
		} else {
			a, err = c.rooms.Assign(s.connID, e.RoomID)
		}
		if err != nil {
			return domain.RoomInfo{}, err
		}
		s.user = s.user.WithRoom(a.Room.Room)
		c.joined(s, a)
		return a.Room, nil

	case domain.MoveRoom:
		mv, err := c.rooms.Move(s.connID, e.From, e.To)
		if err != nil {
			return domain.RoomInfo{}, err
		}
		c.left(s, mv.Departure)
		s.user = s.user.WithRoom(mv.Assignment.Room.Room)
		c.joined(s, mv.Assignment)
		return mv.Assignment.Room, nil

	case domain.AcknowledgeRoom:
		info, err := c.rooms.Info(e.RoomID)
		if err != nil {
			return domain.RoomInfo{}, err
		}
		c.report(c.broadcaster.Acknowledge(s.connID, info))
		return info, nil

	case domain.AnnounceTyping:
		members, err := c.rooms.Members(e.RoomID)
		if err != nil {
			return domain.RoomInfo{}, err
		}
		c.report(c.broadcaster.AnnounceTyping(members, s.user))
		return domain.RoomInfo{}, nil

	case domain.LeaveRoom:
		dep, err := c.rooms.Leave(s.connID)
		if err != nil {
			return domain.RoomInfo{}, err
		}
		c.left(s, dep)
		s.user = s.user.WithoutRoom()
		return domain.RoomInfo{}, nil

	case domain.UnregisterConnection:
		_, err := c.registry.Unregister(s.connID)
		return domain.RoomInfo{}, err
	}
	return domain.RoomInfo{}, fmt.Errorf("%w: unknown effect %T", errors.ErrInvalidTransition, effect)
}

func (c *Coordinator) joined(s *session, a domain.Assignment) {
	if !a.Acknowledged {
		c.report(c.broadcaster.Acknowledge(s.connID, a.Room))
	}
	c.report(c.broadcaster.AnnounceJoin(a.Peers, s.user))
	c.log.Debug("Joined room", "connection_id", s.connID, "room_id", a.Room.ID, "users_in_room", a.Room.UsersInRoom)
}

func (c *Coordinator) left(s *session, d domain.Departure) {
	c.report(c.broadcaster.AnnounceLeave(d.Remaining, s.user))
	c.log.Debug("Left room", "connection_id", s.connID, "room_id", d.RoomID)
}

func (c *Coordinator) report(d event.Delivery, err error) {
	if err == nil {
		return
	}
	name := "unknown"
	if d.Event != nil {
		name = d.Event.EventName()
	}
	c.log.Warn("Presence delivery failed", "event", name, "recipients", len(d.Recipients), "error", err)
}

func (c *Coordinator) open(connID domain.ConnectionID, abort context.CancelFunc) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return nil, errors.ErrShuttingDown
	}
	if _, ok := c.sessions[connID]; ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrDuplicateConnection, connID)
	}
	s := newSession(connID, abort)
	c.sessions[connID] = s
	return s, nil
}

func (c *Coordinator) session(connID domain.ConnectionID) (*session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[connID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrConnectionNotFound, connID)
	}
	return s, nil
}

func (c *Coordinator) forget(connID domain.ConnectionID) *session {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[connID]
	if !ok {
		return nil
	}
	delete(c.sessions, connID)
	return s
}

func (c *Coordinator) forgetIf(s *session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.sessions[s.connID]; ok && current == s {
		delete(c.sessions, s.connID)
	}
}
