// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-match-bay/internal/logger"
	"github.com/MKhiriev/go-match-bay/internal/queue"
	"github.com/MKhiriev/go-match-bay/models"
	"github.com/MKhiriev/go-match-bay/transport"
)

// runtime owns the transport for the lifetime of a session. Its single
// goroutine multiplexes three sources (queued outbound commands, inbound
// frames and the shutdown signal) so the transport never sees concurrent
// access.
type runtime struct {
	transport  transport.Transport
	cmds       *queue.Queue
	events     chan Event
	state      *sessionState
	shutdownCh chan struct{}
	done       chan struct{}
	log        *logger.Logger
}

// recvResult carries one receive-pump outcome into the select loop.
type recvResult struct {
	frame string
	err   error
}

// run is the session loop. It exits on shutdown, transport failure, remote
// close or context cancellation; on every path except cancellation it emits
// a final Disconnected event before closing the event channel.
func (r *runtime) run(ctx context.Context) {
	defer close(r.done)
	defer close(r.events)

	r.offer(Connected{})

	recvCtx, stopRecv := context.WithCancel(ctx)
	defer stopRecv()
	recvCh := make(chan recvResult)
	go r.receiveLoop(recvCtx, recvCh)

	for {
		select {
		case <-ctx.Done():
			// Forced abort: no close handshake, no Disconnected event.
			r.log.Debug().Msg("runtime cancelled")
			return

		case <-r.shutdownCh:
			r.log.Debug().Msg("shutdown signal received, closing transport")
			_ = r.transport.Close()
			r.terminate(ctx, nil)
			return

		case <-r.cmds.Ready():
			msg, ok := r.cmds.Pop()
			if !ok {
				if r.cmds.Closed() {
					_ = r.transport.Close()
					r.terminate(ctx, nil)
					return
				}
				continue
			}

			frame, err := models.EncodeClientMessage(msg)
			if err != nil {
				// A command that cannot be encoded is dropped; the
				// session itself is fine.
				r.log.Error().Err(err).Str("type", msg.MessageType()).Msg("failed to encode command")
				continue
			}
			if err := r.transport.Send(ctx, frame); err != nil {
				r.terminate(ctx, fmt.Errorf("%w: %v", ErrTransportSend, err))
				return
			}
			r.log.Debug().Str("type", msg.MessageType()).Msg("sent command")

		case res := <-recvCh:
			if res.err != nil {
				if ctx.Err() != nil {
					// forced abort surfaced through the pump
					r.log.Debug().Msg("runtime cancelled")
					return
				}
				if errors.Is(res.err, io.EOF) {
					r.log.Debug().Msg("server closed the connection")
					r.terminate(ctx, nil)
					return
				}
				r.terminate(ctx, fmt.Errorf("%w: %v", ErrTransportReceive, res.err))
				return
			}

			msg, err := models.DecodeServerMessage(res.frame)
			if err != nil {
				// An undecodable frame means the peer and client no longer
				// agree on the protocol; continuing would desynchronize
				// every later message.
				r.log.Error().Err(err).Msg("failed to decode server message, terminating")
				_ = r.transport.Close()
				r.terminate(ctx, fmt.Errorf("%w: %v", ErrSerialization, err))
				return
			}

			// State first, then the event: a consumer reacting to the
			// event must see accessors already updated.
			r.apply(msg)
			r.offer(msg)
		}
	}
}

// receiveLoop pumps transport frames into recvCh until a receive error or
// cancellation. The unbuffered send keeps it in lockstep with the main
// loop, so at most one frame is in flight.
func (r *runtime) receiveLoop(ctx context.Context, out chan<- recvResult) {
	for {
		frame, err := r.transport.Recv(ctx)
		select {
		case out <- recvResult{frame: frame, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// apply updates session state for the messages that change it.
func (r *runtime) apply(msg models.ServerMessage) {
	switch m := msg.(type) {
	case *models.Authenticated:
		r.state.setAuthenticated()
		r.log.Info().Str("app_name", m.AppName).Msg("authenticated")
	case *models.RoomJoined:
		r.state.setRoom(m.PlayerID, m.RoomID, m.RoomCode)
		r.log.Info().Str("room_code", m.RoomCode).Msg("joined room")
	case *models.Reconnected:
		r.state.setRoom(m.PlayerID, m.RoomID, m.RoomCode)
		r.log.Info().Str("room_code", m.RoomCode).Msg("reconnected to room")
	case *models.SpectatorJoined:
		r.state.setRoom(m.SpectatorID, m.RoomID, m.RoomCode)
		r.log.Info().Str("room_code", m.RoomCode).Msg("joined room as spectator")
	case *models.RoomLeft:
		r.state.clearRoom()
	case *models.SpectatorLeft:
		r.state.clearRoom()
	}
}

// terminate clears session state and delivers the final Disconnected event.
// The send blocks until the consumer takes it, so ordinary backpressure does
// not drop the terminal event, but it gives up if the runtime is cancelled
// while waiting.
func (r *runtime) terminate(ctx context.Context, reason error) {
	r.state.clear()
	r.cmds.Close()

	select {
	case r.events <- Disconnected{Reason: reason}:
	case <-ctx.Done():
		r.log.Warn().Msg("cancelled while delivering the final event")
	}
}

// offer delivers an ordinary event without blocking. When the consumer lags
// behind the channel bound, the event is dropped and logged.
func (r *runtime) offer(ev Event) {
	select {
	case r.events <- ev:
	default:
		r.log.Warn().Str("event", fmt.Sprintf("%T", ev)).Msg("event channel full, dropping event")
	}
}
