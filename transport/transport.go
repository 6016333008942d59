// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport defines the bidirectional text-frame channel the MatchBay
// client runtime speaks through, plus a built-in WebSocket implementation.
//
// Connection setup is intentionally NOT part of the contract: different
// transports have fundamentally different connection parameters (URLs for
// WebSocket, host:port for TCP, QUIC endpoints). Construct a connected
// transport externally, then hand it to the client; from that moment the
// runtime owns it exclusively.
package transport

import "context"

// Transport is a bidirectional channel of complete text frames. The
// signaling protocol uses JSON text messages, so implementations must handle
// framing internally (WebSocket frames, length-prefixed TCP, QUIC streams).
//
// The interface is small on purpose: any value with these three methods can
// drive a client session, statically or through the interface.
//
// # Recv semantics
//
//	frame, nil   one complete inbound message
//	"", io.EOF   the remote closed the connection cleanly (not a failure)
//	"", err      a transport-level failure; the transport is unusable after
//
// Recv MUST honor ctx: when ctx is cancelled a pending call returns
// ctx.Err() promptly. It also MUST be cancel-safe: a frame that was fully
// received internally before the cancellation must be returned by the next
// call, never dropped or duplicated. Buffered-channel implementations get
// this property for free.
//
// # Close semantics
//
// Close is idempotent: a second call after a successful first one returns
// nil and does not block. Implementations should release resources even if
// the close handshake fails.
type Transport interface {
	// Send transmits one complete text frame to the server.
	Send(ctx context.Context, frame string) error

	// Recv returns the next complete text frame from the server.
	Recv(ctx context.Context) (string, error)

	// Close shuts the connection down gracefully.
	Close() error
}
