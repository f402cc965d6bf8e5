// Package server is the ambient HTTP/WebSocket debug surface for a running
// simulator: a JSON snapshot of the state store and a live traffic feed.
// There is no static frontend to serve — this domain has no browser UI.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/telescopio-montemayor/lx200-go/command"
	"github.com/telescopio-montemayor/lx200-go/response"
	"github.com/telescopio-montemayor/lx200-go/store"
)

// upgrader upgrades HTTP requests to WebSockets.
//
// CheckOrigin returns true to keep this local debug surface frictionless;
// it is not meant to be exposed beyond localhost.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the debug HTTP API and the /ws/traffic feed over a given
// Store.
type Server struct {
	mux   *http.ServeMux
	store *store.Store
	hub   *TrafficHub
}

// New builds a Server reading from st. The caller is responsible for
// wiring s.Observer into every dispatcher.Dispatcher sharing st.
func New(st *store.Store) *Server {
	s := &Server{
		mux:   http.NewServeMux(),
		store: st,
		hub:   NewTrafficHub(),
	}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/store", s.handleStore)
	s.mux.HandleFunc("/ws/traffic", s.handleWSTraffic)

	return s
}

// Handler returns the server's http.Handler for use with http.Serve.
func (s *Server) Handler() http.Handler { return s.mux }

// Observer is a dispatcher.Observer that broadcasts every dispatched
// command/response pair to connected /ws/traffic clients. Passing it as a
// Dispatcher's Observer is how this package taps live traffic without the
// dispatcher depending on websockets at all.
func (s *Server) Observer(cmd command.Command, resp response.Response) {
	ev := TrafficEvent{Command: cmd.Name(), Fields: cmd.Fields()}
	if resp != nil {
		ev.Response = resp.Format()
	}
	s.hub.BroadcastTraffic(ev)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{OK: true, Timestamp: time.Now(), TrafficClients: s.hub.ClientCount()})
}

// handleStore serves the full store snapshot: path -> field-map, exactly
// the shape store.Store.Snapshot returns.
func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleWSTraffic upgrades, registers the connection with the hub, and
// blocks reading (discarding) inbound messages purely to detect
// disconnects.
func (s *Server) handleWSTraffic(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := s.hub.Add(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.hub.Remove(client)
			return
		}
	}
}
