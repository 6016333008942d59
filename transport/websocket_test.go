// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── test server ───────────────────────────────────────────────────────────────

// wsTestServer upgrades one connection and runs handler on it.
func wsTestServer(t *testing.T, handler func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// ── Dial / Send / Recv ────────────────────────────────────────────────────────

// TestWebSocket_SendRecvLoopback verifies that a sent text frame reaches the
// server and an echoed frame comes back through Recv.
func TestWebSocket_SendRecvLoopback(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.WriteMessage(kind, data)
		// keep the connection up until the client closes it
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.Send(ctx, `{"type":"Ping"}`))

	frame, err := ws.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Ping"}`, frame)
}

// TestWebSocket_RecvAfterServerClose verifies that a clean remote close
// surfaces as io.EOF.
func TestWebSocket_RecvAfterServerClose(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
		_ = conn.WriteMessage(websocket.CloseMessage, msg)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Recv(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// TestWebSocket_RecvDrainsBufferedFramesBeforeEOF verifies that frames sent
// before the close are delivered before the terminal io.EOF.
func TestWebSocket_RecvDrainsBufferedFramesBeforeEOF(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("one"))
		_ = conn.WriteMessage(websocket.TextMessage, []byte("two"))
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteMessage(websocket.CloseMessage, msg)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ws.Close()

	frame, err := ws.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", frame)

	frame, err = ws.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", frame)

	_, err = ws.Recv(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// TestWebSocket_RecvHonorsContext verifies that a cancelled context unblocks
// a pending Recv without consuming any frame.
func TestWebSocket_RecvHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		<-release
		_ = conn.WriteMessage(websocket.TextMessage, []byte("late"))
		_, _, _ = conn.ReadMessage()
	})
	defer close(release)

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDial()

	ws, err := Dial(dialCtx, wsURL(srv))
	require.NoError(t, err)
	defer ws.Close()

	recvCtx, cancelRecv := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelRecv()

	_, err = ws.Recv(recvCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestWebSocket_BinaryFramesDiscarded verifies that binary frames are skipped
// and the next text frame is delivered.
func TestWebSocket_BinaryFramesDiscarded(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		_ = conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
		_ = conn.WriteMessage(websocket.TextMessage, []byte("text"))
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer ws.Close()

	frame, err := ws.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text", frame)
}

// ── Close ─────────────────────────────────────────────────────────────────────

// TestWebSocket_CloseIdempotent verifies that calling Close twice returns the
// same result without blocking.
func TestWebSocket_CloseIdempotent(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)

	first := ws.Close()
	second := ws.Close()
	assert.Equal(t, first, second)
}

// TestWebSocket_RecvAfterLocalClose verifies that Recv surfaces io.EOF after
// a local Close rather than a read error.
func TestWebSocket_RecvAfterLocalClose(t *testing.T) {
	srv := wsTestServer(t, func(conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	require.NoError(t, ws.Close())

	_, err = ws.Recv(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// TestDial_InvalidURL verifies that Dial reports unreachable endpoints.
func TestDial_InvalidURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Dial(ctx, "ws://127.0.0.1:1/ws")
	assert.Error(t, err)
}
