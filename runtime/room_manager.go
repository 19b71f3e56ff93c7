package runtime

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"presence-lab/auth"
	"presence-lab/domain"
	"presence-lab/errors"
	"sync"

	"github.com/samber/lo"
)

// maxOnDemandAttempts bounds AssignAny when freshly created rooms are
// filled by concurrent explicit joiners before we get in.
const maxOnDemandAttempts = 3

type roomSlot struct {
	mu      sync.Mutex
	room    domain.Room
	members map[domain.ConnectionID]struct{}
	evicted bool
}

func (s *roomSlot) info() domain.RoomInfo {
	return domain.RoomInfo{Room: s.room, UsersInRoom: len(s.members)}
}

func (s *roomSlot) others(connID domain.ConnectionID) []domain.ConnectionID {
	return lo.Without(lo.Keys(s.members), connID)
}

// RoomManager owns room membership. Every room has its own mutex: the capacity
// check and the insertion happen under it, so unrelated rooms never contend.
// The room table lock only guards lookups and creation.
//
// Lock order is spill -> room -> registry. The registry never calls back into rooms.
type RoomManager struct {
	mu              sync.RWMutex
	spill           sync.Mutex
	log             *slog.Logger
	registry        *Registry
	rooms           map[domain.RoomID]*roomSlot
	order           []domain.RoomID
	defaultMaxUsers int
	onDemandSeq     int
	acknowledge     func(domain.ConnectionID, domain.RoomInfo) bool
}

// NewRoomManager builds the room arena from a fixed catalogue.
// defaultMaxUsers is the capacity of rooms created on demand.
func NewRoomManager(log *slog.Logger, registry *Registry, defaultMaxUsers int, catalogue ...domain.Room) (*RoomManager, error) {
	if defaultMaxUsers <= 0 {
		return nil, fmt.Errorf("%w: default capacity must be positive, got %d", errors.ErrInvalidRoom, defaultMaxUsers)
	}
	m := &RoomManager{
		log:             log,
		registry:        registry,
		rooms:           make(map[domain.RoomID]*roomSlot),
		defaultMaxUsers: defaultMaxUsers,
	}
	for _, room := range catalogue {
		if err := m.add(room); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AcknowledgeWith registers fn to publish the private acknowledgment of a
// connection entering a room, while that room is still locked. Anyone who joins
// afterwards is announced behind it. fn must not block and returns false when
// it could not publish. Call it before the manager is shared.
func (m *RoomManager) AcknowledgeWith(fn func(domain.ConnectionID, domain.RoomInfo) bool) {
	m.acknowledge = fn
}

func (m *RoomManager) assigned(s *roomSlot, connID domain.ConnectionID) domain.Assignment {
	a := domain.Assignment{Room: s.info(), Peers: s.others(connID)}
	if m.acknowledge != nil {
		a.Acknowledged = m.acknowledge(connID, a.Room)
	}
	return a
}

// CreateRoom adds a catalogue room at runtime.
func (m *RoomManager) CreateRoom(name string, maxUsers int) (domain.Room, error) {
	room := domain.NewRoom(name, maxUsers)
	if err := m.add(room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (m *RoomManager) add(room domain.Room) error {
	if err := auth.ValidateRoom(room); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rooms[room.ID]; ok {
		return fmt.Errorf("%w: room %s already exists", errors.ErrInvalidRoom, room.ID)
	}
	m.rooms[room.ID] = &roomSlot{room: room, members: make(map[domain.ConnectionID]struct{})}
	m.order = append(m.order, room.ID)
	m.log.Info("Room created", "room_id", room.ID, "name", room.Name, "max_users", room.MaxUsers, "on_demand", room.OnDemand)
	return nil
}

func (m *RoomManager) createOnDemand() (domain.Room, error) {
	m.mu.Lock()
	m.onDemandSeq++
	name := fmt.Sprintf("Room %d", m.onDemandSeq)
	m.mu.Unlock()

	room := domain.NewRoom(name, m.defaultMaxUsers)
	room.OnDemand = true
	if err := m.add(room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (m *RoomManager) slot(roomID domain.RoomID) (*roomSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, roomID)
	}
	return s, nil
}

// Assign places a connection that is in no room yet.
// Deciding there is space and taking the slot is one step under the room mutex.
func (m *RoomManager) Assign(connID domain.ConnectionID, roomID domain.RoomID) (domain.Assignment, error) {
	s, err := m.slot(roomID)
	if err != nil {
		return domain.Assignment{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.evicted {
		return domain.Assignment{}, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, roomID)
	}
	if _, ok := s.members[connID]; ok {
		return domain.Assignment{}, errors.ErrAlreadyInRoom
	}
	if len(s.members) >= s.room.MaxUsers {
		return domain.Assignment{}, fmt.Errorf("%w: %s (%d/%d)", errors.ErrRoomFull, s.room.Name, len(s.members), s.room.MaxUsers)
	}

	err = m.registry.place(connID, func(u domain.ConnectedUser) (domain.ConnectedUser, error) {
		if u.InRoom() {
			return u, errors.ErrAlreadyInRoom
		}
		return u.WithRoom(s.room), nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}
	s.members[connID] = struct{}{}

	m.log.Debug("Connection assigned", "connection_id", connID, "room_id", roomID, "users_in_room", len(s.members))
	return m.assigned(s, connID), nil
}

// AssignAny places a connection in the first room of the catalogue order that
// has a free slot, creating an on-demand room only when every room is full.
// Creation is serialized by spill: a caller rescans under it, so rooms opened
// by a concurrent caller are filled before another one is created.
func (m *RoomManager) AssignAny(connID domain.ConnectionID) (domain.Assignment, error) {
	if a, ok, err := m.assignFirstFree(connID); ok || err != nil {
		return a, err
	}

	m.spill.Lock()
	defer m.spill.Unlock()

	for attempt := 0; ; attempt++ {
		if a, ok, err := m.assignFirstFree(connID); ok || err != nil {
			return a, err
		}
		if attempt == maxOnDemandAttempts {
			break
		}
		if _, err := m.createOnDemand(); err != nil {
			return domain.Assignment{}, err
		}
	}
	return domain.Assignment{}, fmt.Errorf("%w: no room could take the connection", errors.ErrRoomFull)
}

// assignFirstFree tries every room with a free slot, in creation order.
// ok is false when all of them turned out to be full.
func (m *RoomManager) assignFirstFree(connID domain.ConnectionID) (domain.Assignment, bool, error) {
	for _, info := range m.Rooms() {
		if !info.HasSpace() {
			continue
		}
		a, err := m.Assign(connID, info.ID)
		if err == nil {
			return a, true, nil
		}
		if !stderrors.Is(err, errors.ErrRoomFull) && !stderrors.Is(err, errors.ErrRoomNotFound) {
			return domain.Assignment{}, false, err
		}
	}
	return domain.Assignment{}, false, nil
}

// Move switches a connection from one room to another as a single step.
// Both room mutexes are held, taken in ascending id order, so no occupancy
// query ever sees the connection in both rooms. If the target is full the
// connection stays where it was.
func (m *RoomManager) Move(connID domain.ConnectionID, from, to domain.RoomID) (domain.Move, error) {
	if from == to {
		return domain.Move{}, errors.ErrAlreadyInRoom
	}
	src, err := m.slot(from)
	if err != nil {
		return domain.Move{}, fmt.Errorf("%w: %v", errors.ErrMemberNotFound, err)
	}
	dst, err := m.slot(to)
	if err != nil {
		return domain.Move{}, err
	}

	first, second := src, dst
	if bytes.Compare(dst.room.ID[:], src.room.ID[:]) < 0 {
		first, second = dst, src
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if _, ok := src.members[connID]; !ok || src.evicted {
		return domain.Move{}, fmt.Errorf("%w: %s", errors.ErrMemberNotFound, connID)
	}
	if dst.evicted {
		return domain.Move{}, fmt.Errorf("%w: %s", errors.ErrRoomNotFound, to)
	}
	if len(dst.members) >= dst.room.MaxUsers {
		return domain.Move{}, fmt.Errorf("%w: %s (%d/%d)", errors.ErrRoomFull, dst.room.Name, len(dst.members), dst.room.MaxUsers)
	}

	err = m.registry.place(connID, func(u domain.ConnectedUser) (domain.ConnectedUser, error) {
		if u.RoomID != from {
			return u, fmt.Errorf("%w: %s", errors.ErrMemberNotFound, connID)
		}
		return u.WithRoom(dst.room), nil
	})
	if err != nil {
		return domain.Move{}, err
	}
	delete(src.members, connID)
	dst.members[connID] = struct{}{}

	m.log.Debug("Connection moved", "connection_id", connID, "from", from, "to", to)
	return domain.Move{
		Departure:  domain.Departure{RoomID: from, Remaining: lo.Keys(src.members)},
		Assignment: m.assigned(dst, connID),
	}, nil
}

// Leave removes a connection from its room. Leaving twice reports
// ErrMemberNotFound and changes nothing.
func (m *RoomManager) Leave(connID domain.ConnectionID) (domain.Departure, error) {
	user, err := m.registry.Lookup(connID)
	if err != nil {
		return domain.Departure{}, err
	}
	if !user.InRoom() {
		return domain.Departure{}, fmt.Errorf("%w: %s", errors.ErrMemberNotFound, connID)
	}
	s, err := m.slot(user.RoomID)
	if err != nil {
		return domain.Departure{}, fmt.Errorf("%w: %v", errors.ErrMemberNotFound, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[connID]; !ok {
		return domain.Departure{}, fmt.Errorf("%w: %s", errors.ErrMemberNotFound, connID)
	}
	delete(s.members, connID)

	err = m.registry.place(connID, func(u domain.ConnectedUser) (domain.ConnectedUser, error) {
		return u.WithoutRoom(), nil
	})
	if err != nil && !stderrors.Is(err, errors.ErrConnectionNotFound) {
		return domain.Departure{}, err
	}

	m.log.Debug("Connection left", "connection_id", connID, "room_id", s.room.ID, "users_in_room", len(s.members))
	return domain.Departure{RoomID: s.room.ID, Remaining: lo.Keys(s.members)}, nil
}

// Occupancy returns the member count and capacity of a room.
func (m *RoomManager) Occupancy(roomID domain.RoomID) (int, int, error) {
	info, err := m.Info(roomID)
	if err != nil {
		return 0, 0, err
	}
	return info.UsersInRoom, info.MaxUsers, nil
}

func (m *RoomManager) Info(roomID domain.RoomID) (domain.RoomInfo, error) {
	s, err := m.slot(roomID)
	if err != nil {
		return domain.RoomInfo{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info(), nil
}

// Members returns a snapshot of the connections in a room.
func (m *RoomManager) Members(roomID domain.RoomID) ([]domain.ConnectionID, error) {
	s, err := m.slot(roomID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Keys(s.members), nil
}

// Rooms lists every room in creation order. Each room is read under its own
// mutex, the list is not a global atomic snapshot.
func (m *RoomManager) Rooms() []domain.RoomInfo {
	m.mu.RLock()
	slots := lo.Map(m.order, func(id domain.RoomID, _ int) *roomSlot { return m.rooms[id] })
	m.mu.RUnlock()

	return lo.Map(slots, func(s *roomSlot, _ int) domain.RoomInfo {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.info()
	})
}

// EvictEmpty drops on-demand rooms nobody is in. Catalogue rooms are kept.
func (m *RoomManager) EvictEmpty() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var evicted []domain.RoomID
	for _, id := range m.order {
		s := m.rooms[id]
		if !s.room.OnDemand {
			continue
		}
		s.mu.Lock()
		if len(s.members) == 0 {
			s.evicted = true
			evicted = append(evicted, id)
		}
		s.mu.Unlock()
	}
	for _, id := range evicted {
		delete(m.rooms, id)
		m.log.Info("Empty room evicted", "room_id", id)
	}
	m.order = lo.Without(m.order, evicted...)
	return len(evicted)
}
