package event

import (
	"encoding/json"
	"presence-lab/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPresenceEvents_WireFieldNames(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	userID := uuid.MustParse("7f9c2ba4-e88f-4a1e-8d5b-3c2f1e0a9b8c")
	roomID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	user := domain.ConnectedUser{UserID: userID, Nickname: "alice", AvatarConfigJSON: `{"gender":"female"}`}

	tests := []struct {
		name  string
		event PresenceEvent
		want  string
	}{
		{
			name:  UserJoined,
			event: NewUserJoined(user, at),
			want:  `{"userId":"7f9c2ba4-e88f-4a1e-8d5b-3c2f1e0a9b8c","nickname":"alice","avatarConfigJson":"{\"gender\":\"female\"}","joinedAt":"2026-01-02T03:04:05Z"}`,
		},
		{
			name:  UserLeft,
			event: NewUserLeft(user, at),
			want:  `{"userId":"7f9c2ba4-e88f-4a1e-8d5b-3c2f1e0a9b8c","nickname":"alice","leftAt":"2026-01-02T03:04:05Z"}`,
		},
		{
			name:  UserTyping,
			event: NewUserTyping(user),
			want:  `{"userId":"7f9c2ba4-e88f-4a1e-8d5b-3c2f1e0a9b8c","nickname":"alice"}`,
		},
		{
			name: RoomAssigned,
			event: NewRoomAssignment(domain.RoomInfo{
				Room:        domain.Room{ID: roomID, Name: "Lobby", MaxUsers: 20},
				UsersInRoom: 3,
			}),
			want: `{"roomId":"11111111-2222-3333-4444-555555555555","roomName":"Lobby","usersInRoom":3,"maxUsers":20}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.event)
			req.NoError(err)
			req.JSONEq(tt.want, string(b))
			req.Equal(tt.name, tt.event.EventName())
		})
	}
}
