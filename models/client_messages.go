// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ClientMessage is implemented by all outbound protocol commands. The set is
// closed: exactly the eleven kinds defined in this file.
type ClientMessage interface {
	// MessageType returns the wire discriminator of the message kind.
	MessageType() string

	clientMessage()
}

// Authenticate must be the first message of every session. The App ID is a
// public identifier for the game application, not a secret.
type Authenticate struct {
	// AppID is the public application identifier (e.g. "mb_app_abc123").
	AppID string `json:"app_id"`

	// SDKVersion is reported for debugging and analytics.
	SDKVersion *string `json:"sdk_version,omitempty"`

	// Platform identifies the engine or runtime (e.g. "unity", "godot").
	Platform *string `json:"platform,omitempty"`

	// GameDataFormat is the preferred game data encoding. Defaults to JSON
	// text frames when absent.
	GameDataFormat *GameDataEncoding `json:"game_data_format,omitempty"`
}

// JoinRoom joins or creates a room for a specific game. Leave RoomCode nil
// for quick-match / auto-create behavior.
type JoinRoom struct {
	GameName          string          `json:"game_name"`
	RoomCode          *string         `json:"room_code"`
	PlayerName        string          `json:"player_name"`
	MaxPlayers        *uint8          `json:"max_players"`
	SupportsAuthority *bool           `json:"supports_authority"`
	RelayTransport    *RelayTransport `json:"relay_transport,omitempty"`
}

// LeaveRoom leaves the current room. Carries no payload.
type LeaveRoom struct{}

// SendGameData broadcasts arbitrary JSON game data to the other players in
// the room. Encoded with the wire kind "GameData".
type SendGameData struct {
	Data json.RawMessage `json:"data"`
}

// AuthorityRequest asks to become (or connect to) the authoritative host.
type AuthorityRequest struct {
	BecomeAuthority bool `json:"become_authority"`
}

// PlayerReady signals readiness to start the game. Carries no payload.
type PlayerReady struct{}

// ProvideConnectionInfo shares connection material for P2P establishment.
type ProvideConnectionInfo struct {
	ConnectionInfo ConnectionInfo `json:"connection_info"`
}

// Ping is an explicit heartbeat. Carries no payload.
type Ping struct{}

// Reconnect resumes a room session after a disconnection, using identifiers
// and the auth token retained by the caller from the initial join.
type Reconnect struct {
	PlayerID  PlayerID `json:"player_id"`
	RoomID    RoomID   `json:"room_id"`
	AuthToken string   `json:"auth_token"`
}

// JoinAsSpectator joins a room as a read-only observer.
type JoinAsSpectator struct {
	GameName      string `json:"game_name"`
	RoomCode      string `json:"room_code"`
	SpectatorName string `json:"spectator_name"`
}

// LeaveSpectator leaves spectator mode. Carries no payload.
type LeaveSpectator struct{}

func (Authenticate) MessageType() string          { return "Authenticate" }
func (JoinRoom) MessageType() string              { return "JoinRoom" }
func (LeaveRoom) MessageType() string             { return "LeaveRoom" }
func (SendGameData) MessageType() string          { return "GameData" }
func (AuthorityRequest) MessageType() string      { return "AuthorityRequest" }
func (PlayerReady) MessageType() string           { return "PlayerReady" }
func (ProvideConnectionInfo) MessageType() string { return "ProvideConnectionInfo" }
func (Ping) MessageType() string                  { return "Ping" }
func (Reconnect) MessageType() string             { return "Reconnect" }
func (JoinAsSpectator) MessageType() string       { return "JoinAsSpectator" }
func (LeaveSpectator) MessageType() string        { return "LeaveSpectator" }

func (Authenticate) clientMessage()          {}
func (JoinRoom) clientMessage()              {}
func (LeaveRoom) clientMessage()             {}
func (SendGameData) clientMessage()          {}
func (AuthorityRequest) clientMessage()      {}
func (PlayerReady) clientMessage()           {}
func (ProvideConnectionInfo) clientMessage() {}
func (Ping) clientMessage()                  {}
func (Reconnect) clientMessage()             {}
func (JoinAsSpectator) clientMessage()       {}
func (LeaveSpectator) clientMessage()        {}
