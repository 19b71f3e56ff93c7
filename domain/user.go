package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConnectionID string

type UserID = uuid.UUID

// DefaultAvatar is sent when no avatar descriptor is known for a user.
const DefaultAvatar = "{}"

// Identity is what a verified access token tells about its bearer.
type Identity struct {
	UserID   UserID `validate:"required"`
	Nickname string `validate:"required,max=64"`
}

// ConnectedUser is the record of one live transport session.
// It is stored and handed out by value: a reader always holds a complete copy.
type ConnectedUser struct {
	UserID           UserID
	Nickname         string
	AvatarConfigJSON string
	ConnectionID     ConnectionID
	ConnectedAt      time.Time
	RoomID           RoomID
	RoomName         string
}

func NewConnectedUser(connID ConnectionID, identity Identity, avatar string, at time.Time) ConnectedUser {
	if avatar == "" {
		avatar = DefaultAvatar
	}
	return ConnectedUser{
		UserID:           identity.UserID,
		Nickname:         identity.Nickname,
		AvatarConfigJSON: avatar,
		ConnectionID:     connID,
		ConnectedAt:      at,
	}
}

func (u ConnectedUser) InRoom() bool {
	return u.RoomID != uuid.Nil
}

// WithRoom returns a copy of the user placed in the given room.
func (u ConnectedUser) WithRoom(room Room) ConnectedUser {
	u.RoomID = room.ID
	u.RoomName = room.Name
	return u
}

// WithoutRoom returns a copy of the user outside of any room.
func (u ConnectedUser) WithoutRoom() ConnectedUser {
	u.RoomID = uuid.Nil
	u.RoomName = ""
	return u
}
