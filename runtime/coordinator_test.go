package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"presence-lab/mocks"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CoordinatorSuite struct {
	suite.Suite
	ctx         context.Context
	verifier    *mocks.MockIdentityVerifier
	avatars     *mocks.MockAvatarSource
	registry    *Registry
	rooms       *RoomManager
	outbox      chan event.Delivery
	coordinator *Coordinator
	lobby       domain.Room
	arena       domain.Room
}

func TestCoordinatorSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorSuite))
}

func (s *CoordinatorSuite) SetupTest() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.verifier = mocks.NewMockIdentityVerifier(ctrl)
	s.avatars = mocks.NewMockAvatarSource(ctrl)
	s.lobby = domain.NewRoom("Lobby", 3)
	s.arena = domain.NewRoom("Arena", 10)

	s.registry = NewRegistry()
	rooms, err := NewRoomManager(log, s.registry, 5, s.lobby, s.arena)
	s.Require().NoError(err)
	s.rooms = rooms
	s.outbox = make(chan event.Delivery, 256)
	broadcaster := NewBroadcaster(log, s.outbox, 50*time.Millisecond)
	s.coordinator = NewCoordinator(log, s.verifier, s.avatars, s.registry, s.rooms, broadcaster)
}

// connect authenticates connID as a fresh user whose avatar is known.
func (s *CoordinatorSuite) connect(connID domain.ConnectionID, nickname string) domain.ConnectedUser {
	identity := domain.Identity{UserID: uuid.New(), Nickname: nickname}
	s.verifier.EXPECT().Verify(gomock.Any(), "token-"+string(connID)).Return(identity, nil)
	s.avatars.EXPECT().AvatarFor(gomock.Any(), identity.UserID).Return(`{"hat":"red"}`, nil)

	user, err := s.coordinator.OnConnect(s.ctx, connID, "token-"+string(connID))
	s.Require().NoError(err)
	return user
}

func (s *CoordinatorSuite) join(connID domain.ConnectionID, roomID domain.RoomID) event.RoomAssignmentData {
	assignment, err := s.coordinator.OnJoinRoomRequest(s.ctx, connID, roomID)
	s.Require().NoError(err)
	return assignment
}

// drain empties the outbox and returns what each connection would receive.
func (s *CoordinatorSuite) drain() map[domain.ConnectionID][]event.PresenceEvent {
	inboxes := make(map[domain.ConnectionID][]event.PresenceEvent)
	for {
		select {
		case d := <-s.outbox:
			for _, id := range d.Recipients {
				inboxes[id] = append(inboxes[id], d.Event)
			}
		default:
			return inboxes
		}
	}
}

func names(events []event.PresenceEvent) []string {
	return lo.Map(events, func(e event.PresenceEvent, _ int) string { return e.EventName() })
}

func (s *CoordinatorSuite) TestConnect_Registers_Authenticated_User() {
	// When alice connects
	alice := s.connect("c1", "alice")

	// Then she is registered outside any room with her avatar
	s.Equal(`{"hat":"red"}`, alice.AvatarConfigJSON)
	s.False(alice.InRoom())
	stored, err := s.registry.Lookup("c1")
	s.Require().NoError(err)
	s.Equal(alice, stored)

	state, err := s.coordinator.State("c1")
	s.Require().NoError(err)
	s.Equal(domain.Authenticated, state.Phase)
	s.Empty(s.drain())
}

func (s *CoordinatorSuite) TestConnect_Invalid_Token_Is_Rejected() {
	s.verifier.EXPECT().Verify(gomock.Any(), "garbage").Return(domain.Identity{}, fmt.Errorf("%w: malformed", errors.ErrInvalidToken))

	_, err := s.coordinator.OnConnect(s.ctx, "c1", "garbage")

	s.ErrorIs(err, errors.ErrInvalidToken)
	s.Zero(s.registry.Count())
	_, err = s.coordinator.State("c1")
	s.ErrorIs(err, errors.ErrConnectionNotFound)
	s.Zero(s.coordinator.Connections())
}

func (s *CoordinatorSuite) TestConnect_Verifier_Failure_Is_Reported_As_Invalid_Token() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(domain.Identity{}, fmt.Errorf("upstream down"))

	_, err := s.coordinator.OnConnect(s.ctx, "c1", "token")

	s.ErrorIs(err, errors.ErrInvalidToken)
}

func (s *CoordinatorSuite) TestConnect_Falls_Back_To_Default_Avatar() {
	identity := domain.Identity{UserID: uuid.New(), Nickname: "alice"}
	s.verifier.EXPECT().Verify(gomock.Any(), "token").Return(identity, nil)
	s.avatars.EXPECT().AvatarFor(gomock.Any(), identity.UserID).Return("", fmt.Errorf("profile service down"))

	alice, err := s.coordinator.OnConnect(s.ctx, "c1", "token")

	s.Require().NoError(err)
	s.Equal(domain.DefaultAvatar, alice.AvatarConfigJSON)
}

func (s *CoordinatorSuite) TestConnect_Duplicate_Connection_Id() {
	s.connect("c1", "alice")

	_, err := s.coordinator.OnConnect(s.ctx, "c1", "token-c1")

	s.ErrorIs(err, errors.ErrDuplicateConnection)
	s.Equal(1, s.registry.Count())
}

func (s *CoordinatorSuite) TestJoin_Acknowledges_And_Announces_To_Others_Only() {
	// Given alice and bob already in the lobby
	s.connect("c1", "alice")
	s.connect("c2", "bob")
	carol := s.connect("c3", "carol")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.drain()

	// When carol joins
	assignment := s.join("c3", s.lobby.ID)

	// Then carol is told the room now holds three users
	s.Equal(event.RoomAssignmentData{RoomID: s.lobby.ID, RoomName: "Lobby", UsersInRoom: 3, MaxUsers: 3}, assignment)
	inboxes := s.drain()
	s.Equal([]string{event.RoomAssigned}, names(inboxes["c3"]))
	s.Equal(assignment, inboxes["c3"][0])

	// And alice and bob each get exactly one UserJoined for her
	for _, id := range []domain.ConnectionID{"c1", "c2"} {
		s.Require().Len(inboxes[id], 1)
		joined := inboxes[id][0].(event.UserJoinedData)
		s.Equal(carol.UserID.String(), joined.UserID)
		s.Equal("carol", joined.Nickname)
		s.Equal(`{"hat":"red"}`, joined.AvatarConfigJSON)
	}

	state, _ := s.coordinator.State("c3")
	s.Equal(domain.State{Phase: domain.InRoom, RoomID: s.lobby.ID}, state)
}

func (s *CoordinatorSuite) TestJoin_Full_Room_Keeps_Previous_State() {
	// Given a full lobby
	for i := 1; i <= 3; i++ {
		id := domain.ConnectionID(fmt.Sprintf("c%d", i))
		s.connect(id, string(id))
		s.join(id, s.lobby.ID)
	}
	s.connect("c4", "dave")
	s.drain()

	// When dave asks for the lobby
	_, err := s.coordinator.OnJoinRoomRequest(s.ctx, "c4", s.lobby.ID)

	// Then he is refused, stays authenticated and nobody hears about it
	s.ErrorIs(err, errors.ErrRoomFull)
	state, _ := s.coordinator.State("c4")
	s.Equal(domain.Authenticated, state.Phase)
	s.Empty(s.drain())

	// And he can still join another room
	s.Equal("Arena", s.join("c4", s.arena.ID).RoomName)
}

func (s *CoordinatorSuite) TestJoin_Unknown_Room() {
	s.connect("c1", "alice")

	_, err := s.coordinator.OnJoinRoomRequest(s.ctx, "c1", uuid.New())

	s.ErrorIs(err, errors.ErrRoomNotFound)
	state, _ := s.coordinator.State("c1")
	s.Equal(domain.Authenticated, state.Phase)
}

func (s *CoordinatorSuite) TestJoin_Unknown_Connection() {
	_, err := s.coordinator.OnJoinRoomRequest(s.ctx, "ghost", s.lobby.ID)
	s.ErrorIs(err, errors.ErrConnectionNotFound)
}

func (s *CoordinatorSuite) TestJoin_Nil_Room_Is_Auto_Assigned() {
	s.connect("c1", "alice")

	assignment := s.join("c1", uuid.Nil)

	s.Equal(s.lobby.ID, assignment.RoomID)
	state, _ := s.coordinator.State("c1")
	s.Equal(s.lobby.ID, state.RoomID)
}

func (s *CoordinatorSuite) TestJoin_Same_Room_Only_Acknowledges() {
	s.connect("c1", "alice")
	s.connect("c2", "bob")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.drain()

	// When bob asks for the room he is already in
	assignment := s.join("c2", s.lobby.ID)

	// Then only bob hears back and occupancy is unchanged
	s.Equal(2, assignment.UsersInRoom)
	inboxes := s.drain()
	s.Equal([]string{event.RoomAssigned}, names(inboxes["c2"]))
	s.Empty(inboxes["c1"])
}

func (s *CoordinatorSuite) TestJoin_Other_Room_Switches_Rooms() {
	// Given alice and bob in the lobby and carol in the arena
	s.connect("c1", "alice")
	s.connect("c2", "bob")
	s.connect("c3", "carol")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.join("c3", s.arena.ID)
	s.drain()

	// When alice switches to the arena
	assignment := s.join("c1", s.arena.ID)

	// Then bob sees her leave, carol sees her join and alice gets her assignment
	s.Equal(2, assignment.UsersInRoom)
	inboxes := s.drain()
	s.Equal([]string{event.UserLeft}, names(inboxes["c2"]))
	s.Equal([]string{event.UserJoined}, names(inboxes["c3"]))
	s.Equal([]string{event.RoomAssigned}, names(inboxes["c1"]))

	users, _, _ := s.rooms.Occupancy(s.lobby.ID)
	s.Equal(1, users)
	alice, _ := s.registry.Lookup("c1")
	s.Equal("Arena", alice.RoomName)
}

func (s *CoordinatorSuite) TestJoin_Acknowledged_Under_Room_Lock_Is_Sent_Once() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s.rooms.AcknowledgeWith(NewBroadcaster(log, s.outbox, 50*time.Millisecond).TryAcknowledge)
	s.connect("c1", "alice")
	s.connect("c2", "bob")

	// When alice joins, bob joins and alice switches rooms
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.join("c1", s.arena.ID)

	// Then each placement is acknowledged exactly once, ahead of later news
	inboxes := s.drain()
	s.Equal([]string{event.RoomAssigned, event.UserJoined, event.RoomAssigned}, names(inboxes["c1"]))
	s.Equal([]string{event.RoomAssigned, event.UserLeft}, names(inboxes["c2"]))
}

func (s *CoordinatorSuite) TestTyping_Reaches_Others_But_Not_Typer() {
	alice := s.connect("c1", "alice")
	s.connect("c2", "bob")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.drain()

	s.Require().NoError(s.coordinator.OnTyping(s.ctx, "c1", true))
	s.Require().NoError(s.coordinator.OnTyping(s.ctx, "c1", false))

	inboxes := s.drain()
	s.Empty(inboxes["c1"])
	s.Require().Len(inboxes["c2"], 1)
	s.Equal(event.NewUserTyping(alice), inboxes["c2"][0])
}

func (s *CoordinatorSuite) TestTyping_Outside_A_Room() {
	s.connect("c1", "alice")

	err := s.coordinator.OnTyping(s.ctx, "c1", true)

	s.ErrorIs(err, errors.ErrNotInRoom)
	s.Empty(s.drain())
}

func (s *CoordinatorSuite) TestDisconnect_Announces_Leave_Once() {
	alice := s.connect("c1", "alice")
	s.connect("c2", "bob")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.drain()

	// When alice disconnects
	s.Require().NoError(s.coordinator.OnDisconnect(s.ctx, "c1"))

	// Then bob is told once and alice is gone everywhere
	inboxes := s.drain()
	s.Require().Len(inboxes["c2"], 1)
	left := inboxes["c2"][0].(event.UserLeftData)
	s.Equal(alice.UserID.String(), left.UserID)
	s.Empty(inboxes["c1"])
	_, err := s.registry.Lookup("c1")
	s.ErrorIs(err, errors.ErrConnectionNotFound)
	members, _ := s.rooms.Members(s.lobby.ID)
	s.Equal([]domain.ConnectionID{"c2"}, members)

	// When the transport reports the same disconnect again
	err = s.coordinator.OnDisconnect(s.ctx, "c1")

	// Then nothing else is emitted
	s.ErrorIs(err, errors.ErrConnectionNotFound)
	s.Empty(s.drain())
}

func (s *CoordinatorSuite) TestDisconnect_Outside_A_Room() {
	s.connect("c1", "alice")

	s.Require().NoError(s.coordinator.OnDisconnect(s.ctx, "c1"))

	s.Zero(s.registry.Count())
	s.Empty(s.drain())
}

func (s *CoordinatorSuite) TestDisconnect_During_Authentication_Wins() {
	// Given a verifier blocked until the connection is dropped
	verifying := make(chan struct{})
	s.verifier.EXPECT().Verify(gomock.Any(), "slow").DoAndReturn(func(ctx context.Context, _ string) (domain.Identity, error) {
		close(verifying)
		<-ctx.Done()
		return domain.Identity{}, ctx.Err()
	})

	result := make(chan error, 1)
	go func() {
		_, err := s.coordinator.OnConnect(s.ctx, "c1", "slow")
		result <- err
	}()
	<-verifying

	// When the transport drops the connection
	s.Require().NoError(s.coordinator.OnDisconnect(s.ctx, "c1"))

	// Then the connection never gets registered nor announced
	select {
	case err := <-result:
		s.ErrorIs(err, errors.ErrConnectionClosed)
	case <-time.After(time.Second):
		s.Fail("OnConnect should return once the connection is dropped")
	}
	s.Zero(s.registry.Count())
	s.Zero(s.coordinator.Connections())
	s.Empty(s.drain())
}

func (s *CoordinatorSuite) TestDisconnectAll_Drains_And_Refuses_New_Connections() {
	s.connect("c1", "alice")
	s.connect("c2", "bob")
	s.join("c1", s.lobby.ID)
	s.join("c2", s.lobby.ID)
	s.drain()

	closed := s.coordinator.DisconnectAll(s.ctx)

	s.Equal(2, closed)
	s.Zero(s.registry.Count())
	users, _, _ := s.rooms.Occupancy(s.lobby.ID)
	s.Zero(users)
	// The first to leave is announced to the second one
	inboxes := s.drain()
	s.Len(lo.Flatten(lo.Values(inboxes)), 1)

	_, err := s.coordinator.OnConnect(s.ctx, "c3", "token-c3")
	s.ErrorIs(err, errors.ErrShuttingDown)
}

func (s *CoordinatorSuite) TestConcurrent_Joins_And_Disconnects_Converge() {
	const clients = 40
	ids := make([]domain.ConnectionID, clients)
	for i := range ids {
		ids[i] = domain.ConnectionID(fmt.Sprintf("c%d", i))
		s.connect(ids[i], string(ids[i]))
	}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for range s.outbox {
		}
	}()

	// When every connection joins while it is being disconnected
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id domain.ConnectionID) {
			defer wg.Done()
			_, _ = s.coordinator.OnJoinRoomRequest(s.ctx, id, s.arena.ID)
		}(id)
		go func(id domain.ConnectionID) {
			defer wg.Done()
			_ = s.coordinator.OnDisconnect(s.ctx, id)
		}(id)
	}
	wg.Wait()
	close(s.outbox)
	<-drained

	// Then nobody is left anywhere
	s.Zero(s.registry.Count())
	s.Zero(s.coordinator.Connections())
	for _, room := range s.rooms.Rooms() {
		s.Zero(room.UsersInRoom, room.Name)
	}
}

func TestCoordinator_Join_Succeeds_When_Delivery_Fails(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockIdentityVerifier(ctrl)
	avatars := mocks.NewMockAvatarSource(ctrl)
	lobby := domain.NewRoom("Lobby", 5)
	registry := NewRegistry()
	rooms, err := NewRoomManager(log, registry, 5, lobby)
	req.NoError(err)

	// Given an outbox nobody drains
	broadcaster := NewBroadcaster(log, make(chan event.Delivery), 5*time.Millisecond)
	coordinator := NewCoordinator(log, verifier, avatars, registry, rooms, broadcaster)

	identity := domain.Identity{UserID: uuid.New(), Nickname: "alice"}
	verifier.EXPECT().Verify(gomock.Any(), "token").Return(identity, nil)
	avatars.EXPECT().AvatarFor(gomock.Any(), identity.UserID).Return("{}", nil)
	_, err = coordinator.OnConnect(context.Background(), "c1", "token")
	req.NoError(err)

	// When alice joins
	assignment, err := coordinator.OnJoinRoomRequest(context.Background(), "c1", lobby.ID)

	// Then the membership change stands although her acknowledgment was lost
	req.NoError(err)
	req.Equal(1, assignment.UsersInRoom)
	state, err := coordinator.State("c1")
	req.NoError(err)
	req.Equal(domain.InRoom, state.Phase)
}
