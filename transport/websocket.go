// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// closeHandshakeTimeout bounds the close-frame write during Close.
const closeHandshakeTimeout = 5 * time.Second

// WebSocket adapts a gorilla/websocket connection to the [Transport]
// contract. The signaling protocol is text-only, so binary frames are
// discarded; control frames are handled by gorilla internally.
//
// A background reader drains the connection into a buffered inbox, which
// makes Recv naturally cancel-safe: a frame parked in the inbox survives any
// number of abandoned Recv calls.
type WebSocket struct {
	conn  *websocket.Conn
	inbox chan string
	done  chan struct{}

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	mu      sync.Mutex
	readErr error
}

// NewWebSocket wraps an already established WebSocket connection. The
// returned transport owns conn; do not read from or write to it directly
// afterwards.
func NewWebSocket(conn *websocket.Conn) *WebSocket {
	t := &WebSocket{
		conn:  conn,
		inbox: make(chan string, 16),
		done:  make(chan struct{}),
	}
	go t.readFrames()
	return t
}

// Dial establishes a WebSocket connection to url (ws:// or wss://) and wraps
// it in a [WebSocket] transport. This is a convenience constructor, not part
// of the Transport contract.
func Dial(ctx context.Context, url string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewWebSocket(conn), nil
}

// readFrames pumps inbound text frames into the inbox until the connection
// fails or is closed. The terminal error is recorded before the inbox is
// closed, so Recv observes frames first and the error last.
func (t *WebSocket) readFrames() {
	for {
		kind, data, err := t.conn.ReadMessage()
		if err != nil {
			t.mu.Lock()
			t.readErr = t.mapReadError(err)
			t.mu.Unlock()
			close(t.inbox)
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		select {
		case t.inbox <- string(data):
		case <-t.done:
			return
		}
	}
}

// mapReadError converts gorilla read errors to the contract's terminal
// forms: clean remote closes and local Close both surface as io.EOF.
func (t *WebSocket) mapReadError(err error) error {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return io.EOF
	}
	if t.closed.Load() {
		return io.EOF
	}
	return fmt.Errorf("read text frame: %w", err)
}

// Send implements [Transport]. The client runtime is the only writer, which
// satisfies gorilla's single-writer requirement.
func (t *WebSocket) Send(ctx context.Context, frame string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if err := t.conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		return fmt.Errorf("write text frame: %w", err)
	}
	return nil
}

// Recv implements [Transport]. It returns io.EOF after a clean close and the
// recorded read error after a transport failure.
func (t *WebSocket) Recv(ctx context.Context) (string, error) {
	select {
	case frame, ok := <-t.inbox:
		if !ok {
			return "", t.terminalError()
		}
		return frame, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (t *WebSocket) terminalError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.readErr == nil {
		return io.EOF
	}
	return t.readErr
}

// Close implements [Transport]. The first call attempts a close handshake
// and tears the connection down; subsequent calls return the first call's
// result without blocking.
func (t *WebSocket) Close() error {
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		close(t.done)

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = t.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeHandshakeTimeout))
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}
