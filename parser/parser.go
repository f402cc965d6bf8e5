// Package parser implements the byte-by-byte LX200 frame state machine.
//
// Three shapes arrive over the wire: a bare 0x06 ("ACK", alignment query), a
// bare 0x04 ("EOT", firmware download request), and ':'-delimited,
// '#'-terminated command frames. Bytes inside a frame are buffered until it
// closes or overflows; any other byte outside a frame is dropped.
package parser

import (
	"github.com/telescopio-montemayor/lx200-go/command"
	"github.com/telescopio-montemayor/lx200-go/decoder"
)

type state int

const (
	stateIdle state = iota
	stateParsing
)

// DefaultMaxLen is the buffer overflow threshold used when Parser is
// constructed with New. A frame longer than this without a closing '#' is
// dropped silently and parsing returns to idle.
const DefaultMaxLen = 32

// Parser is a single connection's frame decoder. It is not safe for
// concurrent use; each connection owns one.
type Parser struct {
	maxLen int
	state  state
	buf    []byte
	out    []command.Command
}

// New constructs a Parser with DefaultMaxLen.
func New() *Parser {
	return NewWithMaxLen(DefaultMaxLen)
}

// NewWithMaxLen constructs a Parser with a custom overflow threshold.
func NewWithMaxLen(maxLen int) *Parser {
	return &Parser{maxLen: maxLen, state: stateIdle}
}

// Feed processes every byte in data, appending any completed command to the
// internal output queue. Call Drain to retrieve and clear it.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedOne(b)
	}
}

func (p *Parser) feedOne(b byte) {
	// ACK and EOT are single-byte out-of-band signals: a host can send one
	// while a frame is mid-flight (e.g. probing alignment status during a
	// slow slew response) without disturbing the frame in progress.
	switch b {
	case 0x06:
		p.out = append(p.out, decoder.DecodeACK())
		return
	case 0x04:
		p.out = append(p.out, decoder.DecodeEOT())
		return
	}

	switch p.state {
	case stateIdle:
		if b == ':' {
			p.state = stateParsing
			p.buf = p.buf[:0]
		}
		// Any other byte seen outside a frame is not part of the protocol
		// and is dropped.
	case stateParsing:
		// ':' has no special meaning once inside a frame — DMS/HMS payloads
		// use it as a field separator (e.g. "Sr12:34:56") — only '#' closes.
		if b == '#' {
			p.out = append(p.out, decoder.Decode(string(p.buf)))
			p.state = stateIdle
			p.buf = p.buf[:0]
			return
		}
		if len(p.buf) >= p.maxLen {
			p.state = stateIdle
			p.buf = p.buf[:0]
			return
		}
		p.buf = append(p.buf, b)
	}
}

// Drain returns every command decoded since the last Drain call and clears
// the queue.
func (p *Parser) Drain() []command.Command {
	out := p.out
	p.out = nil
	return out
}

// Pending reports whether a frame is currently open (mid-parse).
func (p *Parser) Pending() bool {
	return p.state == stateParsing
}
