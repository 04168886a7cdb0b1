package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans room events out to every websocket client subscribed to a room.
// Delivery is fire-and-forget: a failed write drops the connection, nothing
// is queued or retried. The session row stays the durable source of truth.
type Hub struct {
	mu    sync.RWMutex
	rooms map[int]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[int]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(roomID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true
	log.Printf("ws: client connected to room %d (total: %d)", roomID, len(h.rooms[roomID]))
}

func (h *Hub) RemoveConnection(roomID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.rooms[roomID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.rooms, roomID)
		}
		log.Printf("ws: client disconnected from room %d", roomID)
	}
}

// Broadcast takes the full lock: failed connections are pruned in place, and
// writes to the same connection must never interleave.
func (h *Hub) Broadcast(roomID int, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[roomID]
	if !ok {
		return
	}

	data, err := Marshal(event)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// RoomSize reports connected viewers, used by the dashboard presence row.
func (h *Hub) RoomSize(roomID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
