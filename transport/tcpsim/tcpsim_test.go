package tcpsim_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/telescopio-montemayor/lx200-go/dispatcher"
	"github.com/telescopio-montemayor/lx200-go/transport/tcpsim"
)

func TestServeRoundTripsCommand(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := tcpsim.New(dispatcher.New())
	go func() { _ = s.Serve(ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(":GA#"))
	require.NoError(t, err)

	buf := make([]byte, 64)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	n, err := conn.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "+00:00:00#", string(buf[:n]))
}

func TestServeHandlesMultipleConnectionsIndependently(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := tcpsim.New(dispatcher.New())
	go func() { _ = s.Serve(ln) }()

	for i := 0; i < 2; i++ {
		conn, err := net.Dial("tcp", ln.Addr().String())
		require.NoError(t, err)

		_, err = conn.Write([]byte(":AL#:GA#"))
		require.NoError(t, err)

		buf := make([]byte, 64)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		n, err := conn.Read(buf)
		require.NoError(t, err)
		require.Equal(t, "+00:00:00#", string(buf[:n]))
		conn.Close()
	}
}
