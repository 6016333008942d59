// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Event is a typed notification delivered on the client's event channel.
//
// The set is closed: every decoded [models.ServerMessage] (as a pointer,
// e.g. *models.RoomJoined) plus the two synthetic kinds below. Consumers
// type-switch on the concrete type, in the same style as a bubbletea update
// loop handles its message stream:
//
//	for ev := range events {
//		switch ev := ev.(type) {
//		case client.Connected:
//			// session is live
//		case *models.RoomJoined:
//			fmt.Println("joined", ev.RoomCode)
//		case client.Disconnected:
//			return ev.Reason
//		}
//	}
type Event interface{}

// Connected is the synthetic first event of every session, emitted exactly
// once before any server message.
type Connected struct{}

// Disconnected is the synthetic last event of a session, emitted at most
// once. Nothing follows it.
//
// Delivery is best-effort in one precise sense: the runtime blocks to
// deliver Disconnected even when the channel is full (unlike ordinary
// events, which are dropped), but a consumer that abandoned the channel or
// a forced Abort can still lose it. Session state accessors read cleared
// after termination regardless of whether this event was observed.
type Disconnected struct {
	// Reason is nil for clean closes (remote close, requested shutdown) and
	// non-nil for terminal failures. Wrapped sentinels such as
	// [ErrTransportReceive] and [ErrSerialization] are recoverable with
	// errors.Is.
	Reason error
}
