// Package decoder turns a framed LX200 payload into a typed command.Command
// by walking the catalog in declaration order and returning the first
// match, falling back to command.Unknown.
package decoder

import (
	"github.com/telescopio-montemayor/lx200-go/catalog"
	"github.com/telescopio-montemayor/lx200-go/command"
)

// Decode matches payload (the bytes between ':' and '#', already stripped of
// framing) against the command catalog and returns the resulting command.
func Decode(payload string) command.Command {
	for _, entry := range catalog.Entries {
		fields, ok := entry.Match(payload)
		if !ok {
			continue
		}
		return &command.Generic{
			Base: command.Base{
				NameValue: entry.Name,
				StoreP:    entry.StorePath,
				LoadP:     entry.LoadPath,
				StoreVal:  entry.StoreValue,
			},
			Values: fields,
		}
	}
	return &command.Unknown{
		Base:    command.Base{NameValue: "Unknown"},
		Payload: payload,
	}
}

// DecodeACK reports the ACK pseudo-command produced by a bare 0x06 byte.
// Its response reads the current alignment mode directly, so it carries a
// load path even though it parses no fields of its own.
func DecodeACK() command.Command {
	return &command.ACK{Base: command.Base{NameValue: catalog.NameACK, LoadP: "mount.alignment_mode"}}
}

// DecodeEOT reports the EOT pseudo-command produced by a bare 0x04 byte.
func DecodeEOT() command.Command {
	return &command.EOT{Base: command.Base{NameValue: catalog.NameEOT}}
}
