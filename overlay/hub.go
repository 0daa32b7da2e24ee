package overlay

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/lxzan/gws"

	"github.com/padbind/padbind/button"
)

// Event is one fired action event as seen by overlay clients.
type Event struct {
	Event  string  `json:"event"`
	Button string  `json:"button"`
	Group  *uint32 `json:"group,omitempty"`
	At     int64   `json:"t"`
}

// NewEvent builds the wire form of a fired transition.
func NewEvent(kind string, b button.Button, group *uint32) Event {
	return Event{Event: kind, Button: b.String(), Group: group, At: time.Now().UnixMilli()}
}

// Hub tracks connected websocket clients and fans events out to them.
// Publish writes to each client in turn on the caller's goroutine; a
// client whose write fails is sent a close frame.
type Hub struct {
	gws.BuiltinEventHandler

	logger  *slog.Logger
	mu      sync.RWMutex
	clients map[*gws.Conn]struct{}
}

// NewHub returns an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*gws.Conn]struct{}),
	}
}

// OnOpen registers the client.
func (h *Hub) OnOpen(socket *gws.Conn) {
	h.mu.Lock()
	h.clients[socket] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("overlay client connected", "clients", n)
}

// OnClose unregisters the client.
func (h *Hub) OnClose(socket *gws.Conn, err error) {
	h.mu.Lock()
	delete(h.clients, socket)
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("overlay client disconnected", "clients", n, "error", err)
}

// OnMessage discards client frames; the stream is one-way.
func (h *Hub) OnMessage(socket *gws.Conn, message *gws.Message) {
	_ = message.Close()
}

// Publish encodes the event once and writes it to every client.
func (h *Hub) Publish(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for socket := range h.clients {
		if err := socket.WriteMessage(gws.OpcodeText, data); err != nil {
			h.logger.Debug("overlay write failed, dropping client", "error", err)
			socket.WriteClose(1011, nil)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
