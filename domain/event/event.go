// Package event holds the presence payloads sent to connected clients.
// Field names are part of the wire contract with existing clients and must not change.
package event

import (
	"presence-lab/domain"
	"time"

	"github.com/google/uuid"
)

const (
	UserJoined   = "UserJoined"
	UserLeft     = "UserLeft"
	UserTyping   = "UserTyping"
	RoomAssigned = "RoomAssigned"
)

// PresenceEvent is an immutable payload routed by the transport under EventName.
type PresenceEvent interface {
	EventName() string
}

type UserJoinedData struct {
	UserID           string    `json:"userId"`
	Nickname         string    `json:"nickname"`
	AvatarConfigJSON string    `json:"avatarConfigJson"`
	JoinedAt         time.Time `json:"joinedAt"`
}

type UserLeftData struct {
	UserID   string    `json:"userId"`
	Nickname string    `json:"nickname"`
	LeftAt   time.Time `json:"leftAt"`
}

type UserTypingData struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
}

// RoomAssignmentData is the private acknowledgment sent to the joining connection.
type RoomAssignmentData struct {
	RoomID      uuid.UUID `json:"roomId"`
	RoomName    string    `json:"roomName"`
	UsersInRoom int       `json:"usersInRoom"`
	MaxUsers    int       `json:"maxUsers"`
}

func (UserJoinedData) EventName() string     { return UserJoined }
func (UserLeftData) EventName() string       { return UserLeft }
func (UserTypingData) EventName() string     { return UserTyping }
func (RoomAssignmentData) EventName() string { return RoomAssigned }

func NewUserJoined(u domain.ConnectedUser, at time.Time) UserJoinedData {
	return UserJoinedData{
		UserID:           u.UserID.String(),
		Nickname:         u.Nickname,
		AvatarConfigJSON: u.AvatarConfigJSON,
		JoinedAt:         at,
	}
}

func NewUserLeft(u domain.ConnectedUser, at time.Time) UserLeftData {
	return UserLeftData{
		UserID:   u.UserID.String(),
		Nickname: u.Nickname,
		LeftAt:   at,
	}
}

func NewUserTyping(u domain.ConnectedUser) UserTypingData {
	return UserTypingData{
		UserID:   u.UserID.String(),
		Nickname: u.Nickname,
	}
}

func NewRoomAssignment(info domain.RoomInfo) RoomAssignmentData {
	return RoomAssignmentData{
		RoomID:      info.ID,
		RoomName:    info.Name,
		UsersInRoom: info.UsersInRoom,
		MaxUsers:    info.MaxUsers,
	}
}
