// Package dispatcher wires the parser, decoder, store, and response
// catalog together: decode a frame, commit its effects, look up and fill
// its reply, serialize the bytes.
package dispatcher

import (
	"github.com/telescopio-montemayor/lx200-go/command"
	"github.com/telescopio-montemayor/lx200-go/decoder"
	"github.com/telescopio-montemayor/lx200-go/parser"
	"github.com/telescopio-montemayor/lx200-go/response"
	"github.com/telescopio-montemayor/lx200-go/store"
)

// Observer is invoked after every handled command, with the response that
// was sent back (nil for Unknown, which has no response mapping and
// produces no reply bytes). It exists purely for
// ambient observability (e.g. a websocket traffic tap) — the core
// dispatch path never depends on it.
type Observer func(cmd command.Command, resp response.Response)

// Dispatcher holds the shared state store and an optional traffic
// observer. It is safe for concurrent use: Store is internally
// synchronized and Handle allocates no shared mutable state of its own.
type Dispatcher struct {
	Store    *store.Store
	Observer Observer
}

// New builds a Dispatcher around a freshly seeded Store.
func New() *Dispatcher {
	return &Dispatcher{Store: store.New()}
}

// Handle decodes a single framed payload (already stripped of ':' and
// '#'), commits its effects, and returns the serialized response bytes —
// empty if the command has no reply (Unknown) or the reply formats to "".
func (d *Dispatcher) Handle(payload string) []byte {
	cmd := decoder.Decode(payload)
	return d.dispatch(cmd)
}

// HandleACK dispatches the bare-byte ACK pseudo-command.
func (d *Dispatcher) HandleACK() []byte {
	return d.dispatch(decoder.DecodeACK())
}

// HandleEOT dispatches the bare-byte EOT pseudo-command.
func (d *Dispatcher) HandleEOT() []byte {
	return d.dispatch(decoder.DecodeEOT())
}

// HandleCommand dispatches an already-decoded command, as produced by a
// parser's Drain().
func (d *Dispatcher) HandleCommand(cmd command.Command) []byte {
	return d.dispatch(cmd)
}

func (d *Dispatcher) dispatch(cmd command.Command) []byte {
	d.Store.Commit(cmd)

	factory, ok := response.Catalog[cmd.Name()]
	if !ok {
		if d.Observer != nil {
			d.Observer(cmd, nil)
		}
		return nil
	}

	resp := factory()
	resp.Fill(d.Store.Fill(cmd))

	if d.Observer != nil {
		d.Observer(cmd, resp)
	}

	return []byte(resp.Format())
}

// Drain feeds every command currently queued in p through HandleCommand and
// concatenates their response bytes in order, matching how a transport
// loop turns a byte stream into replies.
func (d *Dispatcher) Drain(p *parser.Parser) []byte {
	var out []byte
	for _, cmd := range p.Drain() {
		out = append(out, d.HandleCommand(cmd)...)
	}
	return out
}
