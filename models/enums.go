// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RelayTransport selects the relay transport protocol for a room.
// Serialized in lowercase on the wire.
type RelayTransport string

const (
	// RelayTransportTCP provides reliable, ordered delivery.
	// Recommended for turn-based games, lobby systems and RPGs.
	RelayTransportTCP RelayTransport = "tcp"

	// RelayTransportUDP provides low-latency, unreliable delivery.
	// Recommended for FPS, racing and other real-time action games.
	RelayTransportUDP RelayTransport = "udp"

	// RelayTransportWebsocket provides reliable, browser-compatible delivery.
	// Recommended for WebGL builds and browser games.
	RelayTransportWebsocket RelayTransport = "websocket"

	// RelayTransportAuto lets the server pick based on room size and game
	// type: UDP for 2-4 players, TCP for 5+, WebSocket for browser builds.
	RelayTransportAuto RelayTransport = "auto"
)

// GameDataEncoding names the encoding format of sequenced game data payloads.
// Serialized in lower_snake_case on the wire.
type GameDataEncoding string

const (
	// GameDataEncodingJSON delivers JSON payloads over text frames.
	GameDataEncodingJSON GameDataEncoding = "json"

	// GameDataEncodingMessagePack delivers MessagePack payloads over binary
	// frames.
	GameDataEncodingMessagePack GameDataEncoding = "message_pack"

	// GameDataEncodingRkyv delivers zero-copy binary payloads for
	// high-frequency, latency-sensitive traffic.
	GameDataEncodingRkyv GameDataEncoding = "rkyv"
)

// LobbyState describes the readiness phase of a room's lobby.
type LobbyState string

const (
	// LobbyStateWaiting means the room is waiting for more players.
	LobbyStateWaiting LobbyState = "waiting"

	// LobbyStateLobby means the room is full enough and players may ready up.
	LobbyStateLobby LobbyState = "lobby"

	// LobbyStateFinalized means all players are ready and the game may start.
	LobbyStateFinalized LobbyState = "finalized"
)

// SpectatorStateChangeReason explains why a spectator's membership changed.
type SpectatorStateChangeReason string

const (
	SpectatorReasonJoined         SpectatorStateChangeReason = "joined"
	SpectatorReasonVoluntaryLeave SpectatorStateChangeReason = "voluntary_leave"
	SpectatorReasonDisconnected   SpectatorStateChangeReason = "disconnected"
	SpectatorReasonRemoved        SpectatorStateChangeReason = "removed"
	SpectatorReasonRoomClosed     SpectatorStateChangeReason = "room_closed"
)
