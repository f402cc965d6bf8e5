// Command lx200simd runs the LX200 telescope protocol simulator as a TCP
// server, optionally alongside a serial transport and an HTTP/WebSocket
// debug surface.
//
// Flags:
//
//	-addr:         TCP address to listen on for LX200 clients (default 127.0.0.1:5000)
//	-http-addr:    HTTP address for the debug surface (/api/health, /api/store,
//	               /ws/traffic); empty disables it
//	-serial-port:  optional serial device to also serve on (e.g. /dev/ttyUSB0);
//	               empty disables the serial transport
//	-serial-baud:  baud rate for -serial-port (default 9600)
package main

import (
	"flag"
	"log"
	"net"
	"net/http"

	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	internalserver "github.com/telescopio-montemayor/lx200-go/internal/server"
	"github.com/telescopio-montemayor/lx200-go/transport/serialsim"
	"github.com/telescopio-montemayor/lx200-go/transport/tcpsim"
)

func main() {
	var (
		addr        = flag.String("addr", "127.0.0.1:5000", "tcp listen address for LX200 clients")
		httpAddr    = flag.String("http-addr", "", "http listen address for the debug surface (empty disables)")
		serialPort  = flag.String("serial-port", "", "serial device to also serve on (empty disables)")
		serialBaud  = flag.Int("serial-baud", 9600, "baud rate for -serial-port")
	)
	flag.Parse()

	d := dispatcher.New()

	if *httpAddr != "" {
		srv := internalserver.New(d.Store)
		d.Observer = srv.Observer
		httpLn, err := net.Listen("tcp", *httpAddr)
		if err != nil {
			log.Fatalf("Failed to listen on %s: %v", *httpAddr, err)
		}
		log.Printf("Debug surface on http://%s", *httpAddr)
		go func() {
			if err := http.Serve(httpLn, srv.Handler()); err != nil {
				log.Printf("debug surface stopped: %v", err)
			}
		}()
	}

	if *serialPort != "" {
		go func() {
			log.Printf("Serving on serial port %s (baud %d)", *serialPort, *serialBaud)
			if err := serialsim.Run(serialsim.Config{Port: *serialPort, Baud: *serialBaud}, d); err != nil {
				log.Printf("serial transport stopped: %v", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", *addr, err)
	}
	log.Printf("Serving LX200 protocol on tcp://%s", *addr)

	tcp := tcpsim.New(d)
	if err := tcp.Serve(ln); err != nil {
		log.Fatalf("tcp transport stopped: %v", err)
	}
}
