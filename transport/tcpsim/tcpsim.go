// Package tcpsim adapts a TCP listener to the LX200 dispatcher: one
// goroutine and one parser.Parser per accepted connection, writing each
// command's response before reading the next bytes off the wire — the
// same accept-loop-plus-per-connection-goroutine shape the teacher's
// cmd/server/main.go uses for its HTTP listener, applied here to a raw
// byte stream instead of HTTP requests.
package tcpsim

import (
	"log"
	"net"

	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	"github.com/telescopio-montemayor/lx200-go/parser"
)

// readBufSize is generous relative to any single LX200 frame (DefaultMaxLen
// is 32): a read can contain several queued commands at once.
const readBufSize = 256

// Server accepts TCP connections and feeds each one's bytes through its own
// parser into a shared Dispatcher.
type Server struct {
	Dispatcher *dispatcher.Dispatcher
}

// New builds a Server around d. Multiple connections may share the same
// Dispatcher: its Store is internally synchronized.
func New(d *dispatcher.Dispatcher) *Server {
	return &Server{Dispatcher: d}
}

// Serve accepts connections on ln until Accept returns an error, handling
// each connection on its own goroutine. It returns that terminal error
// (typically net.ErrClosed once the listener is closed).
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	p := parser.New()
	buf := make([]byte, readBufSize)
	for {
		n, readErr := conn.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
			if out := s.Dispatcher.Drain(p); len(out) > 0 {
				if _, writeErr := conn.Write(out); writeErr != nil {
					log.Printf("tcpsim: write to %s: %v", conn.RemoteAddr(), writeErr)
					return
				}
			}
		}
		if readErr != nil {
			return
		}
	}
}
