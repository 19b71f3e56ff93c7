package runtime

import (
	"log/slog"
	"presence-lab/domain"
	"presence-lab/domain/event"
	"presence-lab/errors"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newBroadcaster(size int) (*Broadcaster, chan event.Delivery) {
	outbox := make(chan event.Delivery, size)
	return NewBroadcaster(logs.GetLoggerFromLevel(slog.LevelDebug), outbox, 20*time.Millisecond), outbox
}

func TestBroadcaster_AnnounceJoin_Excludes_Joiner(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(4)
	alice := connectedUser("c1", "alice")

	// When alice joins a room holding bob and carol
	d, err := b.AnnounceJoin([]domain.ConnectionID{"c2", "c1", "c3"}, alice)

	// Then only bob and carol hear about it
	req.NoError(err)
	req.ElementsMatch([]domain.ConnectionID{"c2", "c3"}, d.Recipients)
	req.Equal(d, <-outbox)

	joined, ok := d.Event.(event.UserJoinedData)
	req.True(ok)
	req.Equal(alice.UserID.String(), joined.UserID)
	req.Equal(domain.DefaultAvatar, joined.AvatarConfigJSON)
	req.False(joined.JoinedAt.IsZero())
}

func TestBroadcaster_AnnounceLeave(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(4)

	d, err := b.AnnounceLeave([]domain.ConnectionID{"c2"}, connectedUser("c1", "alice"))

	req.NoError(err)
	req.Equal([]domain.ConnectionID{"c2"}, d.Recipients)
	req.Equal(event.UserLeft, (<-outbox).Event.EventName())
}

func TestBroadcaster_Nobody_To_Tell_Publishes_Nothing(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(4)

	// When the joiner is alone in the room
	_, err := b.AnnounceJoin([]domain.ConnectionID{"c1"}, connectedUser("c1", "alice"))

	// Then the outbox stays empty
	req.NoError(err)
	req.Empty(outbox)
}

func TestBroadcaster_Typing_Never_Reaches_Typer(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(4)

	d, err := b.AnnounceTyping([]domain.ConnectionID{"c1", "c2"}, connectedUser("c1", "alice"))

	req.NoError(err)
	req.Equal([]domain.ConnectionID{"c2"}, d.Recipients)
	req.True(d.Droppable)
	typing := (<-outbox).Event.(event.UserTypingData)
	req.Equal("alice", typing.Nickname)
}

func TestBroadcaster_Typing_Dropped_When_Outbox_Full(t *testing.T) {
	req := require.New(t)
	outbox := make(chan event.Delivery, 1)
	b := NewBroadcaster(logs.GetLoggerFromLevel(slog.LevelDebug), outbox, time.Second)

	// Given a full outbox
	_, err := b.AnnounceLeave([]domain.ConnectionID{"c2"}, connectedUser("c3", "carol"))
	req.NoError(err)

	// When a typing signal is published
	start := time.Now()
	_, err = b.AnnounceTyping([]domain.ConnectionID{"c2"}, connectedUser("c1", "alice"))

	// Then it is dropped without waiting
	req.NoError(err)
	req.Less(time.Since(start), 500*time.Millisecond)
	req.Len(outbox, 1)
	req.Equal(event.UserLeft, (<-outbox).Event.EventName())
}

func TestBroadcaster_Join_Waits_Then_Reports_Full_Outbox(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(1)
	_, err := b.AnnounceLeave([]domain.ConnectionID{"c2"}, connectedUser("c3", "carol"))
	req.NoError(err)

	// When a join is published and nobody drains
	_, err = b.AnnounceJoin([]domain.ConnectionID{"c2"}, connectedUser("c1", "alice"))

	// Then the broadcaster gives up after its timeout
	req.ErrorIs(err, errors.ErrOutboxFull)
	req.Len(outbox, 1)
}

func TestBroadcaster_Join_Succeeds_Once_Outbox_Drains(t *testing.T) {
	req := require.New(t)
	outbox := make(chan event.Delivery, 1)
	b := NewBroadcaster(logs.GetLoggerFromLevel(slog.LevelDebug), outbox, time.Second)
	_, err := b.AnnounceLeave([]domain.ConnectionID{"c2"}, connectedUser("c3", "carol"))
	req.NoError(err)

	// Given a consumer freeing the outbox a bit later
	go func() {
		time.Sleep(10 * time.Millisecond)
		<-outbox
	}()

	// When a join is published
	_, err = b.AnnounceJoin([]domain.ConnectionID{"c2"}, connectedUser("c1", "alice"))

	// Then it makes it through
	req.NoError(err)
	req.Equal(event.UserJoined, (<-outbox).Event.EventName())
}

func TestBroadcaster_Acknowledge(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(1)
	room := domain.RoomInfo{Room: domain.NewRoom("Lobby", 10), UsersInRoom: 3}

	_, err := b.Acknowledge("c1", room)

	req.NoError(err)
	d := <-outbox
	req.Equal([]domain.ConnectionID{"c1"}, d.Recipients)
	req.Equal(event.RoomAssignmentData{RoomID: room.ID, RoomName: "Lobby", UsersInRoom: 3, MaxUsers: 10}, d.Event)
}

func TestBroadcaster_TryAcknowledge_Never_Waits(t *testing.T) {
	req := require.New(t)
	b, outbox := newBroadcaster(1)
	lobby := domain.RoomInfo{Room: domain.NewRoom("Lobby", 5), UsersInRoom: 1}

	// When the outbox has space the acknowledgment is queued for the joiner only
	req.True(b.TryAcknowledge("c1", lobby))

	// When it is full the call gives up at once
	start := time.Now()
	req.False(b.TryAcknowledge("c2", lobby))
	req.Less(time.Since(start), 10*time.Millisecond)

	d := <-outbox
	req.Equal([]domain.ConnectionID{"c1"}, d.Recipients)
	req.Equal(event.NewRoomAssignment(lobby), d.Event)
	req.Empty(outbox)
}
