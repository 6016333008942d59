// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-match-bay/models"
)

// scriptStep is one scripted Recv outcome.
type scriptStep struct {
	frame string
	err   error
}

// mockTransport is a scripted transport double. Recv delivers scripted steps
// in order and blocks when the script is exhausted; Send records frames and
// signals each one on sentCh.
type mockTransport struct {
	mu       sync.Mutex
	sent     []string
	failSend error

	sentCh   chan string
	incoming chan scriptStep

	closeOnce sync.Once
	closedCh  chan struct{}
}

func newMockTransport() *mockTransport {
	return &mockTransport{
		sentCh:   make(chan string, 64),
		incoming: make(chan scriptStep, 64),
		closedCh: make(chan struct{}),
	}
}

// serve schedules inbound frames for Recv.
func (m *mockTransport) serve(frames ...string) {
	for _, frame := range frames {
		m.incoming <- scriptStep{frame: frame}
	}
}

// serveMessage encodes a server message and schedules it.
func (m *mockTransport) serveMessage(t *testing.T, msg models.ServerMessage) {
	t.Helper()
	frame, err := models.EncodeServerMessage(msg)
	require.NoError(t, err)
	m.serve(frame)
}

// serveErr schedules a terminal Recv error.
func (m *mockTransport) serveErr(err error) {
	m.incoming <- scriptStep{err: err}
}

// setSendError makes every subsequent Send fail with err.
func (m *mockTransport) setSendError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSend = err
}

func (m *mockTransport) Send(_ context.Context, frame string) error {
	m.mu.Lock()
	if m.failSend != nil {
		err := m.failSend
		m.mu.Unlock()
		return err
	}
	m.sent = append(m.sent, frame)
	m.mu.Unlock()

	m.sentCh <- frame
	return nil
}

func (m *mockTransport) Recv(ctx context.Context) (string, error) {
	select {
	case step := <-m.incoming:
		return step.frame, step.err
	case <-m.closedCh:
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (m *mockTransport) Close() error {
	m.closeOnce.Do(func() { close(m.closedCh) })
	return nil
}

func (m *mockTransport) isClosed() bool {
	select {
	case <-m.closedCh:
		return true
	default:
		return false
	}
}

// nextSent waits for the next frame written to the transport and decodes it.
func (m *mockTransport) nextSent(t *testing.T) models.ClientMessage {
	t.Helper()
	select {
	case frame := <-m.sentCh:
		msg, err := models.DecodeClientMessage(frame)
		require.NoError(t, err)
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sent frame")
		return nil
	}
}

// nextEvent waits for the next event from the channel.
func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "event channel closed while waiting for an event")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an event")
		return nil
	}
}

// waitClosed asserts that the event channel closes without further events.
func waitClosed(t *testing.T, events <-chan Event) {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.False(t, ok, "expected channel close, got event %T", ev)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the event channel to close")
	}
}
