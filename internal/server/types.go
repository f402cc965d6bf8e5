package server

import "time"

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	OK             bool      `json:"ok"`
	Timestamp      time.Time `json:"timestamp"`
	TrafficClients int       `json:"traffic_clients"`
}

// APIError is the JSON body written alongside a non-2xx response.
type APIError struct {
	Error string `json:"error"`
}

// TrafficEvent is one decoded command/response pair, broadcast over
// /ws/traffic as the dispatcher handles it.
type TrafficEvent struct {
	Command  string         `json:"command"`
	Fields   map[string]any `json:"fields,omitempty"`
	Response string         `json:"response"`
}
