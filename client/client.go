// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-match-bay/internal/logger"
	"github.com/MKhiriev/go-match-bay/internal/queue"
	"github.com/MKhiriev/go-match-bay/models"
	"github.com/MKhiriev/go-match-bay/transport"
)

// Client is the application-facing handle of one signaling session.
//
// Created via [Start], which launches a background runtime goroutine and
// returns the handle together with the event channel. All command methods
// encode a [models.ClientMessage] and enqueue it for the runtime; they
// return as soon as the message is queued, never waiting for a server
// reply; acknowledgment arrives later as an event.
//
// The handle is safe for concurrent use.
type Client struct {
	cmds  *queue.Queue
	state *sessionState
	log   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}

	shutdownCh      chan struct{}
	shutdownOnce    sync.Once
	abortOnce       sync.Once
	shutdownTimeout time.Duration
}

// JoinRoomParams are the parameters for joining (or creating) a room. Only
// GameName and PlayerName are required; the zero values of the remaining
// fields mean "server default" / quick-match behavior.
type JoinRoomParams struct {
	// GameName is the game to join. Required.
	GameName string

	// PlayerName is the display name for the joining player. Required.
	PlayerName string

	// RoomCode selects an existing room. Empty means quick-match / create.
	RoomCode string

	// MaxPlayers caps the room size when creating. Zero means the server
	// default.
	MaxPlayers uint8

	// SupportsAuthority enables authority delegation for the room. Nil
	// means the server default.
	SupportsAuthority *bool

	// RelayTransport is the preferred relay protocol. Empty means auto.
	RelayTransport models.RelayTransport
}

// NewJoinRoomParams creates join-room parameters with the required fields.
func NewJoinRoomParams(gameName, playerName string) JoinRoomParams {
	return JoinRoomParams{GameName: gameName, PlayerName: playerName}
}

// WithRoomCode sets an explicit room code to join.
func (p JoinRoomParams) WithRoomCode(roomCode string) JoinRoomParams {
	p.RoomCode = roomCode
	return p
}

// WithMaxPlayers sets the maximum number of players.
func (p JoinRoomParams) WithMaxPlayers(maxPlayers uint8) JoinRoomParams {
	p.MaxPlayers = maxPlayers
	return p
}

// WithSupportsAuthority enables or disables authority delegation support.
func (p JoinRoomParams) WithSupportsAuthority(supportsAuthority bool) JoinRoomParams {
	p.SupportsAuthority = &supportsAuthority
	return p
}

// WithRelayTransport sets the preferred relay transport protocol.
func (p JoinRoomParams) WithRelayTransport(relayTransport models.RelayTransport) JoinRoomParams {
	p.RelayTransport = relayTransport
	return p
}

// Start launches the client runtime over an already connected transport and
// returns the handle plus the event channel.
//
// The runtime queues an Authenticate command built from cfg before its loop
// starts, so authentication is always the first frame on the wire. The
// loop's first observable effect is the synthetic [Connected] event. The
// event channel is closed when the runtime exits; the final event before
// the close is [Disconnected] on every path except a forced [Client.Abort].
//
// The transport becomes the exclusive property of the runtime; do not use
// it directly afterwards.
func Start(t transport.Transport, cfg Config) (*Client, <-chan Event, error) {
	cfg, err := cfg.normalized()
	if err != nil {
		return nil, nil, fmt.Errorf("start client: %w", err)
	}

	events := make(chan Event, cfg.EventChannelCapacity)
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		cmds:            queue.New(),
		state:           newSessionState(),
		log:             cfg.Logger,
		cancel:          cancel,
		done:            make(chan struct{}),
		shutdownCh:      make(chan struct{}),
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	// Queue Authenticate before the loop starts so it is the very first
	// outgoing frame.
	auth := models.Authenticate{
		AppID:      cfg.AppID,
		SDKVersion: optionalString(cfg.SDKVersion),
		Platform:   optionalString(cfg.Platform),
	}
	if cfg.GameDataFormat != "" {
		format := cfg.GameDataFormat
		auth.GameDataFormat = &format
	}
	c.cmds.Push(auth)

	r := &runtime{
		transport:  t,
		cmds:       c.cmds,
		events:     events,
		state:      c.state,
		shutdownCh: c.shutdownCh,
		done:       c.done,
		log:        cfg.Logger.GetChildLogger(),
	}
	go r.run(ctx)

	return c, events, nil
}

// ── Command methods ─────────────────────────────────────────────────────────

// JoinRoom joins or creates a room with the given parameters.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) JoinRoom(params JoinRoomParams) error {
	msg := models.JoinRoom{
		GameName:          params.GameName,
		PlayerName:        params.PlayerName,
		RoomCode:          optionalString(params.RoomCode),
		SupportsAuthority: params.SupportsAuthority,
	}
	if params.MaxPlayers > 0 {
		maxPlayers := params.MaxPlayers
		msg.MaxPlayers = &maxPlayers
	}
	if params.RelayTransport != "" {
		relay := params.RelayTransport
		msg.RelayTransport = &relay
	}
	return c.send(msg)
}

// LeaveRoom leaves the current room.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) LeaveRoom() error {
	return c.send(models.LeaveRoom{})
}

// SendGameData broadcasts game data to the other players in the room. data
// may be any JSON-marshalable value; pass a json.RawMessage to forward
// pre-encoded bytes untouched.
//
// Returns a wrapped [ErrSerialization] if data cannot be marshaled and
// [ErrNotConnected] if the session has terminated.
func (c *Client) SendGameData(data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: marshal game data: %w", ErrSerialization, err)
	}
	return c.send(models.SendGameData{Data: raw})
}

// RequestAuthority asks to become (true) or relinquish (false) the
// authoritative host.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) RequestAuthority(becomeAuthority bool) error {
	return c.send(models.AuthorityRequest{BecomeAuthority: becomeAuthority})
}

// SetReady signals readiness to start the game in the lobby.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) SetReady() error {
	return c.send(models.PlayerReady{})
}

// ProvideConnectionInfo shares connection material for P2P establishment.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) ProvideConnectionInfo(info models.ConnectionInfo) error {
	return c.send(models.ProvideConnectionInfo{ConnectionInfo: info})
}

// Reconnect resumes a room session after a disconnection. The player and
// room identifiers plus the auth token must have been retained by the
// caller from the original join; the runtime keeps nothing across sessions.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) Reconnect(playerID models.PlayerID, roomID models.RoomID, authToken string) error {
	return c.send(models.Reconnect{PlayerID: playerID, RoomID: roomID, AuthToken: authToken})
}

// JoinAsSpectator joins a room as a read-only observer.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) JoinAsSpectator(gameName, roomCode, spectatorName string) error {
	return c.send(models.JoinAsSpectator{
		GameName:      gameName,
		RoomCode:      roomCode,
		SpectatorName: spectatorName,
	})
}

// LeaveSpectator leaves spectator mode.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) LeaveSpectator() error {
	return c.send(models.LeaveSpectator{})
}

// Ping sends an explicit heartbeat. Heartbeats are never automatic; issue
// them at whatever cadence the deployment requires.
//
// Returns [ErrNotConnected] if the session has terminated.
func (c *Client) Ping() error {
	return c.send(models.Ping{})
}

// ── State accessors ─────────────────────────────────────────────────────────

// IsConnected reports whether the session is believed to be live. Lock-free;
// never blocks.
func (c *Client) IsConnected() bool {
	return c.state.connected.Load()
}

// IsAuthenticated reports whether the server has confirmed authentication.
// Lock-free; never blocks.
func (c *Client) IsAuthenticated() bool {
	return c.state.authenticated.Load()
}

// PlayerID returns the identity assigned by the server, if any. May block
// briefly while the runtime updates identity fields.
func (c *Client) PlayerID() (models.PlayerID, bool) {
	return c.state.currentPlayerID()
}

// RoomID returns the current room identifier, if the client is in a room.
func (c *Client) RoomID() (models.RoomID, bool) {
	return c.state.currentRoomID()
}

// RoomCode returns the current room code, if the client is in a room.
func (c *Client) RoomCode() (string, bool) {
	return c.state.currentRoomCode()
}

// ── Shutdown ────────────────────────────────────────────────────────────────

// Shutdown terminates the session gracefully: it signals the runtime, which
// closes the transport and emits a final [Disconnected] event, then waits
// for the runtime to exit, bounded by the configured shutdown timeout.
//
// If the timeout elapses first the runtime is logged as unresponsive and
// abandoned: it keeps running independently and is not forcibly cancelled
// here. A zero timeout signals and abandons immediately. Either way, all
// state accessors read cleared once Shutdown returns. Safe to call more
// than once.
func (c *Client) Shutdown() {
	c.log.Debug().Msg("shutdown requested")
	c.shutdownOnce.Do(func() { close(c.shutdownCh) })

	if c.shutdownTimeout > 0 {
		timer := time.NewTimer(c.shutdownTimeout)
		defer timer.Stop()

		select {
		case <-c.done:
			c.cancel()
		case <-timer.C:
			c.log.Warn().
				Dur("timeout", c.shutdownTimeout).
				Msg("runtime did not exit within shutdown timeout, abandoning task")
		}
	}

	c.state.clear()
}

// Abort tears the session down forcibly: the runtime goroutine is cancelled
// immediately, with no transport close handshake and no [Disconnected]
// event. This path is intentionally lossy; use it only when graceful
// cleanup is impossible (process teardown, tests). State accessors read
// cleared afterwards.
func (c *Client) Abort() {
	c.abortOnce.Do(func() {
		c.log.Debug().Msg("abort: cancelling runtime without close handshake")
		c.cancel()
	})
	c.state.clear()
}

// send queues one outbound command for the runtime in FIFO order.
func (c *Client) send(msg models.ClientMessage) error {
	if !c.state.connected.Load() {
		return ErrNotConnected
	}
	if !c.cmds.Push(msg) {
		return ErrNotConnected
	}
	return nil
}

// optionalString maps "" to nil for wire fields that distinguish absent
// from empty.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
