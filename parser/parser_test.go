package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telescopio-montemayor/lx200-go/catalog"
)

func TestLiteralFrameYieldsExactlyOneCommand(t *testing.T) {
	p := New()
	p.Feed([]byte(":AL#"))
	out := p.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, catalog.NameLandAlignment, out[0].Name())
	assert.False(t, p.Pending())
}

func TestJunkBytesOutsideFrameAreIgnored(t *testing.T) {
	p := New()
	p.Feed([]byte("garbage\x01\x02:AL#trailing junk"))
	out := p.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, catalog.NameLandAlignment, out[0].Name())
}

func TestOverflowDropsFrameAndReturnsToIdle(t *testing.T) {
	p := NewWithMaxLen(4)
	p.Feed([]byte(":123456789#"))
	out := p.Drain()
	assert.Empty(t, out)
	assert.False(t, p.Pending())

	p.Feed([]byte(":AL#"))
	out = p.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, catalog.NameLandAlignment, out[0].Name())
}

func TestACKAndEOTDecodedInAnyState(t *testing.T) {
	p := New()

	p.Feed([]byte{0x06})
	out := p.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, catalog.NameACK, out[0].Name())

	p.Feed([]byte(":AL"))
	p.Feed([]byte{0x06})
	p.Feed([]byte{0x04})
	p.Feed([]byte("#"))
	out = p.Drain()
	require.Len(t, out, 3)
	assert.Equal(t, catalog.NameACK, out[0].Name())
	assert.Equal(t, catalog.NameEOT, out[1].Name())
	assert.Equal(t, catalog.NameLandAlignment, out[2].Name())
	assert.False(t, p.Pending())
}

func TestColonInsidePayloadIsOrdinaryData(t *testing.T) {
	p := New()
	p.Feed([]byte(":Sr12:34:56#"))
	out := p.Drain()
	require.Len(t, out, 1)
	assert.Equal(t, catalog.NameSetTargetRightAscencion, out[0].Name())
	assert.Equal(t, 12, out[0].Fields()["hours"])
	assert.Equal(t, 34, out[0].Fields()["minutes"])
	assert.Equal(t, 56, out[0].Fields()["seconds"])
}

func TestMultipleFramesPreserveOrder(t *testing.T) {
	p := New()
	p.Feed([]byte(":Sr12:34:56#:GR#"))
	out := p.Drain()
	require.Len(t, out, 2)
	assert.Equal(t, catalog.NameSetTargetRightAscencion, out[0].Name())
	assert.Equal(t, catalog.NameGetRightAscencion, out[1].Name())
}
