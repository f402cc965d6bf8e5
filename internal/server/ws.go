package server

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// trafficFrame is the envelope sent over /ws/traffic. Unlike a generic
// {type, data} wrapper, this hub only ever carries TrafficEvent: every
// connected client is watching the same simulator, so Seq lets a client
// detect a dropped frame (a gap in the sequence) without needing a
// message-type dispatch of its own.
type trafficFrame struct {
	Seq   uint64       `json:"seq"`
	Event TrafficEvent `json:"event"`
}

// wsClient wraps a websocket connection with a per-connection write mutex.
// Gorilla WebSocket requires that writes are not concurrent on the same
// Conn.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// TrafficHub fans every dispatched command/response pair out to connected
// /ws/traffic clients, tagging each with a monotonically increasing
// sequence number.
//
// This debug surface is local + single-simulator, so a simple in-memory
// hub is enough. BroadcastTraffic marshals once per event and fans the raw
// bytes out to each client rather than re-marshaling per client.
type TrafficHub struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	seq     uint64
}

// NewTrafficHub constructs an empty hub.
func NewTrafficHub() *TrafficHub {
	return &TrafficHub{clients: make(map[*wsClient]struct{})}
}

// Add registers a connection with the hub and returns its client handle.
func (h *TrafficHub) Add(conn *websocket.Conn) *wsClient {
	c := &wsClient{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

// Remove unregisters a client and closes its connection.
func (h *TrafficHub) Remove(c *wsClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.conn.Close()
}

// ClientCount reports how many /ws/traffic clients are currently connected,
// surfaced by the health endpoint so an operator can tell whether anything
// is watching the live feed.
func (h *TrafficHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastTraffic assigns the next sequence number to ev and sends it to
// every connected client.
//
// Failures are ignored; the read-loop in handleWSTraffic will eventually
// notice disconnects and remove the client.
func (h *TrafficHub) BroadcastTraffic(ev TrafficEvent) {
	h.mu.Lock()
	h.seq++
	frame := trafficFrame{Seq: h.seq, Event: ev}
	h.mu.Unlock()

	b, err := json.Marshal(frame)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, b)
		c.mu.Unlock()
	}
}
