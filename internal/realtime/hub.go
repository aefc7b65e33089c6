package realtime

import (
	"sync"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/entity"
	"virtual-classroom-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Hub owns every connected client and the room membership index.
// Registration and teardown flow through channels so connection lifecycle
// is serialized in Run; room joins and broadcasts take the lock directly.
type Hub struct {
	// Registered clients.
	clients map[*Client]struct{}

	// Room membership: room id -> members.
	rooms map[string]map[*Client]struct{}

	// All connections per user, for direct notification delivery.
	byUser map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// onRoomLeave fires after a disconnecting client has been removed
	// from a room, once per room, outside the hub lock.
	onRoomLeave func(roomId string, identity *entity.Identity)

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		byUser:     make(map[uuid.UUID][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     log,
	}
}

// SetRoomLeaveHandler installs the disconnect announcement hook. Must be
// called before Run.
func (h *Hub) SetRoomLeaveHandler(fn func(roomId string, identity *entity.Identity)) {
	h.onRoomLeave = fn
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.byUser[client.Identity.UserId] = append(h.byUser[client.Identity.UserId], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.Identity.UserId})

		case client := <-h.unregister:
			h.teardown(client)
		}
	}
}

// teardown removes the client everywhere and closes its Send channel
// exactly once. A second unregister for the same client is a no-op.
func (h *Hub) teardown(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)

	var leftRooms []string
	for roomId, members := range h.rooms {
		if _, ok := members[client]; ok {
			delete(members, client)
			leftRooms = append(leftRooms, roomId)
			if len(members) == 0 {
				delete(h.rooms, roomId)
			}
		}
	}

	conns := h.byUser[client.Identity.UserId]
	for i, c := range conns {
		if c == client {
			h.byUser[client.Identity.UserId] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.byUser[client.Identity.UserId]) == 0 {
		delete(h.byUser, client.Identity.UserId)
	}

	close(client.Send)
	h.mu.Unlock()

	h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.Identity.UserId})

	if h.onRoomLeave != nil {
		for _, roomId := range leftRooms {
			h.onRoomLeave(roomId, client.Identity)
		}
	}
}

// ClientCount reports the number of registered connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomSize reports the number of members in a room.
func (h *Hub) RoomSize(roomId string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomId])
}

// JoinRoom adds the client to a room. Joining a room twice is a no-op.
func (h *Hub) JoinRoom(client *Client, roomId string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	members, ok := h.rooms[roomId]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[roomId] = members
	}
	members[client] = struct{}{}
}

// LeaveRoom removes the client from a room. Reports whether the client
// was a member.
func (h *Hub) LeaveRoom(client *Client, roomId string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[roomId]
	if !ok {
		return false
	}
	if _, member := members[client]; !member {
		return false
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, roomId)
	}
	return true
}

// InRoom reports whether the client is a member of the room.
func (h *Hub) InRoom(client *Client, roomId string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members, ok := h.rooms[roomId]
	if !ok {
		return false
	}
	_, member := members[client]
	return member
}

// BroadcastRoom delivers data to every member of the room. A non-nil
// exclude skips that one client. Slow clients are dropped and torn down
// asynchronously so a stalled connection cannot block the room.
func (h *Hub) BroadcastRoom(roomId string, data []byte, exclude *Client) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.rooms[roomId] {
		if client == exclude {
			continue
		}
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
			"user_id": client.Identity.UserId,
			"room_id": roomId,
		})
		go func(c *Client) { h.unregister <- c }(client)
	}
}

// PushNotification delivers a notification to every connection of a user.
// Implements the delivery contract of the notification service. Sends
// happen under the read lock: teardown closes Send under the write lock,
// so a channel reachable through byUser is never closed.
func (h *Hub) PushNotification(userId uuid.UUID, notification dto.NotificationDTO) {
	data, err := encodeEnvelope(EventNotification, notification)
	if err != nil {
		return
	}

	h.mu.RLock()
	var slow []*Client
	for _, client := range h.byUser[userId] {
		select {
		case client.Send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		go func(c *Client) { h.unregister <- c }(client)
	}
}
