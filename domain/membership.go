package domain

// Assignment is the result of placing a connection in a room.
// Peers are the other members at the instant of the assignment.
// Acknowledged is set when the private acknowledgment was already published
// while the room was still locked.
type Assignment struct {
	Room         RoomInfo
	Peers        []ConnectionID
	Acknowledged bool
}

// Departure is the result of removing a connection from a room.
// Remaining are the members left behind, the leaver excluded.
type Departure struct {
	RoomID    RoomID
	Remaining []ConnectionID
}

// Move is a reassignment performed as one step across two rooms.
type Move struct {
	Departure
	Assignment Assignment
}
