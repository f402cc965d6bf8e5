// Package serialsim drives the LX200 dispatcher from a real or virtual
// serial device instead of a TCP socket, for labs that pipe an actual
// planetarium application through a serial cable into the simulator. It
// mirrors the teacher's serial.Config/OpenPort/ReadTimeout conventions
// (serial/port.go), fixed to the LX200 wire convention of 8 data bits, no
// parity, one stop bit.
package serialsim

import (
	"fmt"
	"log"
	"time"

	"github.com/tarm/serial"

	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	"github.com/telescopio-montemayor/lx200-go/parser"
)

const readBufSize = 256

// Config names the serial port and baud rate to open. ReadTimeout bounds
// how long a Read call blocks with no bytes available, matching the
// teacher's TestPort probe timeout convention.
type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
}

// Run opens cfg.Port and feeds its byte stream through a fresh parser into
// d until the port returns a read error, typically because it was closed.
// A single serialsim.Run call occupies the port for its whole lifetime,
// same as tcpsim.Server.handle occupies one TCP connection.
func Run(cfg Config, d *dispatcher.Dispatcher) error {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 300 * time.Millisecond
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		Parity:      serial.ParityNone,
		Size:        8,
		StopBits:    serial.Stop1,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return fmt.Errorf("serialsim: open %s: %w", cfg.Port, err)
	}
	defer port.Close()

	p := parser.New()
	buf := make([]byte, readBufSize)
	for {
		n, readErr := port.Read(buf)
		if n > 0 {
			p.Feed(buf[:n])
			if out := d.Drain(p); len(out) > 0 {
				if _, writeErr := port.Write(out); writeErr != nil {
					return fmt.Errorf("serialsim: write to %s: %w", cfg.Port, writeErr)
				}
			}
		}
		if readErr != nil {
			log.Printf("serialsim: read from %s: %v", cfg.Port, readErr)
			return readErr
		}
	}
}
