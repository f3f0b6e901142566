package devtools

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub records pass reports in a History and fans them out to websocket
// clients.
type Hub struct {
	history  *History
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewHub creates a hub recording into history.
func NewHub(history *History) *Hub {
	return &Hub{
		history: history,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local tooling
			},
		},
	}
}

// Serve upgrades the request, replays the reports after since, and keeps the
// connection registered until the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, req *http.Request, since uint64) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	// Replay and registration share the lock with Publish, so every report
	// reaches the client exactly once.
	h.mu.Lock()
	for _, r := range h.history.Since(since) {
		if err := writeReport(conn, r); err != nil {
			h.mu.Unlock()
			conn.Close()
			return
		}
	}
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Publish records r and sends it to every client. Clients that fail are
// dropped.
func (h *Hub) Publish(r Report) Report {
	h.mu.Lock()
	defer h.mu.Unlock()

	r = h.history.Add(r)
	for client := range h.clients {
		if err := writeReport(client, r); err != nil {
			delete(h.clients, client)
			client.Close()
		}
	}
	return r
}

func writeReport(conn *websocket.Conn, r Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
