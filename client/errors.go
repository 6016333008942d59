// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-match-bay/models"
)

// Local error taxonomy. These are client-side conditions, returned
// synchronously from command methods or embedded in the terminal
// Disconnected event's reason. They never overlap with the protocol's
// [models.ErrorCode] values, which arrive only as event data.
var (
	// ErrTransportSend marks a failure to transmit a frame.
	ErrTransportSend = errors.New("transport send error")

	// ErrTransportReceive marks a transport-level receive failure.
	ErrTransportReceive = errors.New("transport receive error")

	// ErrTransportClosed marks an unexpectedly closed connection.
	ErrTransportClosed = errors.New("transport connection closed")

	// ErrSerialization marks a protocol (de)serialization failure.
	ErrSerialization = errors.New("serialization error")

	// ErrNotConnected is returned by command methods once the session has
	// terminated (or the runtime was never started).
	ErrNotConnected = errors.New("not connected to server")

	// ErrNotInRoom marks a room operation attempted outside a room.
	ErrNotInRoom = errors.New("not in a room")

	// ErrTimeout marks a timed-out operation.
	ErrTimeout = errors.New("operation timed out")

	// ErrAppIDRequired is returned by Start when the configuration lacks an
	// application ID.
	ErrAppIDRequired = errors.New("app id is required")
)

// ServerError wraps an error reported by the server so it can travel through
// local error values. Use [errors.As] to recover the structured code.
type ServerError struct {
	// Message is the human-readable error text from the server.
	Message string

	// Code is the structured error code, if the server provided one.
	Code *models.ErrorCode
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	if e.Code != nil {
		return fmt.Sprintf("server error: %s (%s)", e.Message, e.Code.String())
	}
	return "server error: " + e.Message
}
