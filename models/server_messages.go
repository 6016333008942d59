// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ServerMessage is implemented by all inbound protocol messages. The set is
// closed: exactly the twenty-four kinds defined in this file. Decoded values
// are pointers, so consumers type-switch on *Authenticated, *RoomJoined and
// so on.
type ServerMessage interface {
	// MessageType returns the wire discriminator of the message kind.
	MessageType() string

	serverMessage()
}

// Authenticated confirms a successful Authenticate command.
type Authenticated struct {
	// AppName echoes the registered application name.
	AppName string `json:"app_name"`

	// Organization is the owning organization, if any.
	Organization *string `json:"organization,omitempty"`

	// RateLimits are the request quotas granted to this application.
	RateLimits RateLimitInfo `json:"rate_limits"`
}

// ProtocolInfo advertises SDK/protocol compatibility details after
// authentication.
type ProtocolInfo struct {
	Platform           *string            `json:"platform,omitempty"`
	SDKVersion         *string            `json:"sdk_version,omitempty"`
	MinimumVersion     *string            `json:"minimum_version,omitempty"`
	RecommendedVersion *string            `json:"recommended_version,omitempty"`
	Capabilities       []string           `json:"capabilities,omitempty"`
	Notes              *string            `json:"notes,omitempty"`
	GameDataFormats    []GameDataEncoding `json:"game_data_formats,omitempty"`
	PlayerNameRules    *PlayerNameRules   `json:"player_name_rules,omitempty"`
}

// AuthenticationError reports a failed Authenticate command.
type AuthenticationError struct {
	Error     string    `json:"error"`
	ErrorCode ErrorCode `json:"error_code"`
}

// RoomJoined confirms a successful JoinRoom command and describes the room.
type RoomJoined struct {
	RoomID            RoomID          `json:"room_id"`
	RoomCode          string          `json:"room_code"`
	PlayerID          PlayerID        `json:"player_id"`
	GameName          string          `json:"game_name"`
	MaxPlayers        uint8           `json:"max_players"`
	SupportsAuthority bool            `json:"supports_authority"`
	CurrentPlayers    []PlayerInfo    `json:"current_players"`
	IsAuthority       bool            `json:"is_authority"`
	LobbyState        LobbyState      `json:"lobby_state"`
	ReadyPlayers      []PlayerID      `json:"ready_players"`
	RelayType         string          `json:"relay_type"`
	CurrentSpectators []SpectatorInfo `json:"current_spectators,omitempty"`
}

// RoomJoinFailed reports a failed JoinRoom command.
type RoomJoinFailed struct {
	Reason    string     `json:"reason"`
	ErrorCode *ErrorCode `json:"error_code,omitempty"`
}

// RoomLeft confirms the room was left. Carries no payload.
type RoomLeft struct{}

// PlayerJoined announces another player joining the room.
type PlayerJoined struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeft announces another player leaving the room.
type PlayerLeft struct {
	PlayerID PlayerID `json:"player_id"`
}

// GameData delivers JSON game data from another player.
type GameData struct {
	FromPlayer PlayerID        `json:"from_player"`
	Data       json.RawMessage `json:"data"`
}

// GameDataBinary delivers a binary game data payload from another player.
type GameDataBinary struct {
	FromPlayer PlayerID         `json:"from_player"`
	Encoding   GameDataEncoding `json:"encoding"`
	Payload    ByteSlice        `json:"payload"`
}

// AuthorityChanged announces an authority handover.
type AuthorityChanged struct {
	AuthorityPlayer *PlayerID `json:"authority_player"`
	YouAreAuthority bool      `json:"you_are_authority"`
}

// AuthorityResponse answers an AuthorityRequest command.
type AuthorityResponse struct {
	Granted   bool       `json:"granted"`
	Reason    *string    `json:"reason"`
	ErrorCode *ErrorCode `json:"error_code,omitempty"`
}

// LobbyStateChanged announces a lobby phase or readiness change.
type LobbyStateChanged struct {
	LobbyState   LobbyState `json:"lobby_state"`
	ReadyPlayers []PlayerID `json:"ready_players"`
	AllReady     bool       `json:"all_ready"`
}

// GameStarting announces game start together with peer connection material.
type GameStarting struct {
	PeerConnections []PeerConnectionInfo `json:"peer_connections"`
}

// Pong answers a Ping command. Carries no payload.
type Pong struct{}

// Reconnected confirms a successful Reconnect command. MissedEvents replays
// the server messages that arrived while the client was disconnected.
type Reconnected struct {
	RoomID            RoomID            `json:"room_id"`
	RoomCode          string            `json:"room_code"`
	PlayerID          PlayerID          `json:"player_id"`
	GameName          string            `json:"game_name"`
	MaxPlayers        uint8             `json:"max_players"`
	SupportsAuthority bool              `json:"supports_authority"`
	CurrentPlayers    []PlayerInfo      `json:"current_players"`
	IsAuthority       bool              `json:"is_authority"`
	LobbyState        LobbyState        `json:"lobby_state"`
	ReadyPlayers      []PlayerID        `json:"ready_players"`
	RelayType         string            `json:"relay_type"`
	CurrentSpectators []SpectatorInfo   `json:"current_spectators,omitempty"`
	MissedEvents      ServerMessageList `json:"missed_events"`
}

// ReconnectionFailed reports a failed Reconnect command.
type ReconnectionFailed struct {
	Reason    string    `json:"reason"`
	ErrorCode ErrorCode `json:"error_code"`
}

// PlayerReconnected announces another player reconnecting to the room.
type PlayerReconnected struct {
	PlayerID PlayerID `json:"player_id"`
}

// SpectatorJoined confirms a successful JoinAsSpectator command.
type SpectatorJoined struct {
	RoomID            RoomID                      `json:"room_id"`
	RoomCode          string                      `json:"room_code"`
	SpectatorID       PlayerID                    `json:"spectator_id"`
	GameName          string                      `json:"game_name"`
	CurrentPlayers    []PlayerInfo                `json:"current_players"`
	CurrentSpectators []SpectatorInfo             `json:"current_spectators"`
	LobbyState        LobbyState                  `json:"lobby_state"`
	Reason            *SpectatorStateChangeReason `json:"reason,omitempty"`
}

// SpectatorJoinFailed reports a failed JoinAsSpectator command.
type SpectatorJoinFailed struct {
	Reason    string     `json:"reason"`
	ErrorCode *ErrorCode `json:"error_code,omitempty"`
}

// SpectatorLeft confirms this client left spectator mode.
type SpectatorLeft struct {
	RoomID            *RoomID                     `json:"room_id,omitempty"`
	RoomCode          *string                     `json:"room_code,omitempty"`
	Reason            *SpectatorStateChangeReason `json:"reason,omitempty"`
	CurrentSpectators []SpectatorInfo             `json:"current_spectators,omitempty"`
}

// NewSpectatorJoined announces another spectator joining the room.
type NewSpectatorJoined struct {
	Spectator         SpectatorInfo               `json:"spectator"`
	CurrentSpectators []SpectatorInfo             `json:"current_spectators,omitempty"`
	Reason            *SpectatorStateChangeReason `json:"reason,omitempty"`
}

// SpectatorDisconnected announces another spectator leaving the room.
type SpectatorDisconnected struct {
	SpectatorID       PlayerID                    `json:"spectator_id"`
	Reason            *SpectatorStateChangeReason `json:"reason,omitempty"`
	CurrentSpectators []SpectatorInfo             `json:"current_spectators,omitempty"`
}

// Error is a generic server-side error notification.
type Error struct {
	Message   string     `json:"message"`
	ErrorCode *ErrorCode `json:"error_code,omitempty"`
}

func (*Authenticated) MessageType() string         { return "Authenticated" }
func (*ProtocolInfo) MessageType() string          { return "ProtocolInfo" }
func (*AuthenticationError) MessageType() string   { return "AuthenticationError" }
func (*RoomJoined) MessageType() string            { return "RoomJoined" }
func (*RoomJoinFailed) MessageType() string        { return "RoomJoinFailed" }
func (*RoomLeft) MessageType() string              { return "RoomLeft" }
func (*PlayerJoined) MessageType() string          { return "PlayerJoined" }
func (*PlayerLeft) MessageType() string            { return "PlayerLeft" }
func (*GameData) MessageType() string              { return "GameData" }
func (*GameDataBinary) MessageType() string        { return "GameDataBinary" }
func (*AuthorityChanged) MessageType() string      { return "AuthorityChanged" }
func (*AuthorityResponse) MessageType() string     { return "AuthorityResponse" }
func (*LobbyStateChanged) MessageType() string     { return "LobbyStateChanged" }
func (*GameStarting) MessageType() string          { return "GameStarting" }
func (*Pong) MessageType() string                  { return "Pong" }
func (*Reconnected) MessageType() string           { return "Reconnected" }
func (*ReconnectionFailed) MessageType() string    { return "ReconnectionFailed" }
func (*PlayerReconnected) MessageType() string     { return "PlayerReconnected" }
func (*SpectatorJoined) MessageType() string       { return "SpectatorJoined" }
func (*SpectatorJoinFailed) MessageType() string   { return "SpectatorJoinFailed" }
func (*SpectatorLeft) MessageType() string         { return "SpectatorLeft" }
func (*NewSpectatorJoined) MessageType() string    { return "NewSpectatorJoined" }
func (*SpectatorDisconnected) MessageType() string { return "SpectatorDisconnected" }
func (*Error) MessageType() string                 { return "Error" }

func (*Authenticated) serverMessage()         {}
func (*ProtocolInfo) serverMessage()          {}
func (*AuthenticationError) serverMessage()   {}
func (*RoomJoined) serverMessage()            {}
func (*RoomJoinFailed) serverMessage()        {}
func (*RoomLeft) serverMessage()              {}
func (*PlayerJoined) serverMessage()          {}
func (*PlayerLeft) serverMessage()            {}
func (*GameData) serverMessage()              {}
func (*GameDataBinary) serverMessage()        {}
func (*AuthorityChanged) serverMessage()      {}
func (*AuthorityResponse) serverMessage()     {}
func (*LobbyStateChanged) serverMessage()     {}
func (*GameStarting) serverMessage()          {}
func (*Pong) serverMessage()                  {}
func (*Reconnected) serverMessage()           {}
func (*ReconnectionFailed) serverMessage()    {}
func (*PlayerReconnected) serverMessage()     {}
func (*SpectatorJoined) serverMessage()       {}
func (*SpectatorJoinFailed) serverMessage()   {}
func (*SpectatorLeft) serverMessage()         {}
func (*NewSpectatorJoined) serverMessage()    {}
func (*SpectatorDisconnected) serverMessage() {}
func (*Error) serverMessage()                 {}

// ServerMessageList is a JSON array of enveloped server messages. Used for
// the missed-events replay carried by [Reconnected].
type ServerMessageList []ServerMessage

// MarshalJSON implements json.Marshaler by enveloping every element.
func (l ServerMessageList) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(l))
	for _, msg := range l {
		frame, err := EncodeServerMessage(msg)
		if err != nil {
			return nil, err
		}
		raw = append(raw, json.RawMessage(frame))
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler by decoding every element from
// its envelope form.
func (l *ServerMessageList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(ServerMessageList, 0, len(raw))
	for _, item := range raw {
		msg, err := DecodeServerMessage(string(item))
		if err != nil {
			return err
		}
		out = append(out, msg)
	}
	*l = out
	return nil
}
