package http

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// envelope is the wire shape of every outbound message.
type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// client is one websocket connection with a dedicated writer goroutine,
// so the hub never writes to the socket from two goroutines at once.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{id: id, conn: conn, send: make(chan []byte, 16)}
}

// writePump drains the send channel onto the socket.
func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("ws write failed", "conn", c.id, "err", err)
			return
		}
	}
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub tracks connected clients and implements game.Notifier. Sends to a
// client with a full buffer are dropped rather than allowed to stall
// the game loop.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*client)}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	go c.writePump()
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()
	if ok {
		c.close()
	}
}

// Unicast delivers an event to a single connection.
func (h *Hub) Unicast(connID, event string, payload any) {
	raw, err := json.Marshal(envelope{Type: event, Payload: payload})
	if err != nil {
		slog.Error("marshal unicast", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case c.send <- raw:
	default:
		slog.Debug("dropping unicast to slow client", "conn", connID, "event", event)
	}
}

// Broadcast delivers an event to every connection.
func (h *Hub) Broadcast(event string, payload any) {
	raw, err := json.Marshal(envelope{Type: event, Payload: payload})
	if err != nil {
		slog.Error("marshal broadcast", "event", event, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.clients {
		select {
		case c.send <- raw:
		default:
			slog.Debug("dropping broadcast to slow client", "conn", id, "event", event)
		}
	}
}
