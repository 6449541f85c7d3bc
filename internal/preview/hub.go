package preview

import (
	"sync"

	"github.com/gorilla/websocket"

	"mdflex/internal/logger"
)

// Message is pushed to browser clients whenever the rendered document
// changes.
type Message struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
	Error string `json:"error,omitempty"`
}

// Hub tracks connected websocket clients and fans the latest render out
// to all of them. New clients immediately receive the last message so a
// freshly opened tab is never blank.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    *Message
	log     logger.Logger
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

// Register adds a client and replays the most recent message to it.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = struct{}{}
	if h.last != nil {
		if err := conn.WriteJSON(h.last); err != nil {
			h.log.Warning("preview", "initial send failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	h.log.Debug("preview", "client connected", map[string]interface{}{
		"clients": len(h.clients),
	})
}

// Unregister removes a client and closes its connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Broadcast stores msg as the latest state and sends it to every client.
// Clients whose write fails are dropped.
func (h *Hub) Broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &msg
	for conn := range h.clients {
		if err := conn.WriteJSON(&msg); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
