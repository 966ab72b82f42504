package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestReadWriter(t *testing.T) {
	server := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		rw := New(conn)
		for {
			pkt, err := rw.ReadPacket()
			if err != nil {
				return
			}
			if err := rw.WritePacket(append(pkt, 0xff)); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	rw, err := Dial("ws" + strings.TrimPrefix(server.URL, "http"))
	require.NoError(t, err)
	defer rw.Close()

	for _, pkt := range [][]byte{{1, 2, 3}, {0}} {
		require.NoError(t, rw.WritePacket(pkt))
		echo, err := rw.ReadPacket()
		require.NoError(t, err)
		require.Equal(t, append(pkt, 0xff), echo)
	}
}
