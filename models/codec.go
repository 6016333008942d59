// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// envelope is the outer wire object of every protocol message.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// EncodeClientMessage serializes an outbound command into one wire text
// frame. Kinds without a payload omit the "data" field.
func EncodeClientMessage(msg ClientMessage) (string, error) {
	env := envelope{Type: msg.MessageType()}

	switch msg.(type) {
	case LeaveRoom, PlayerReady, Ping, LeaveSpectator:
		// payload-less kinds
	default:
		data, err := json.Marshal(msg)
		if err != nil {
			return "", fmt.Errorf("encode %s payload: %w", env.Type, err)
		}
		env.Data = data
	}

	frame, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode %s envelope: %w", env.Type, err)
	}
	return string(frame), nil
}

// DecodeClientMessage parses one wire text frame into an outbound command.
// The client runtime never needs this direction; it exists for server-side
// tooling and scripted test doubles.
func DecodeClientMessage(frame string) (ClientMessage, error) {
	var env envelope
	if err := json.Unmarshal([]byte(frame), &env); err != nil {
		return nil, fmt.Errorf("decode client message envelope: %w", err)
	}

	switch env.Type {
	case "LeaveRoom":
		return LeaveRoom{}, nil
	case "PlayerReady":
		return PlayerReady{}, nil
	case "Ping":
		return Ping{}, nil
	case "LeaveSpectator":
		return LeaveSpectator{}, nil
	}

	var msg ClientMessage
	switch env.Type {
	case "Authenticate":
		msg = &Authenticate{}
	case "JoinRoom":
		msg = &JoinRoom{}
	case "GameData":
		msg = &SendGameData{}
	case "AuthorityRequest":
		msg = &AuthorityRequest{}
	case "ProvideConnectionInfo":
		msg = &ProvideConnectionInfo{}
	case "Reconnect":
		msg = &Reconnect{}
	case "JoinAsSpectator":
		msg = &JoinAsSpectator{}
	default:
		return nil, fmt.Errorf("unknown client message type %q", env.Type)
	}

	if err := json.Unmarshal(env.Data, msg); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return derefClientMessage(msg), nil
}

// derefClientMessage converts the pointer used during unmarshaling back to
// the value form the ClientMessage set is declared with.
func derefClientMessage(msg ClientMessage) ClientMessage {
	switch m := msg.(type) {
	case *Authenticate:
		return *m
	case *JoinRoom:
		return *m
	case *SendGameData:
		return *m
	case *AuthorityRequest:
		return *m
	case *ProvideConnectionInfo:
		return *m
	case *Reconnect:
		return *m
	case *JoinAsSpectator:
		return *m
	default:
		return msg
	}
}

// EncodeServerMessage serializes an inbound message back into its wire text
// frame. Used for missed-events replay and test doubles.
func EncodeServerMessage(msg ServerMessage) (string, error) {
	env := envelope{Type: msg.MessageType()}

	switch msg.(type) {
	case *RoomLeft, *Pong:
		// payload-less kinds
	default:
		data, err := json.Marshal(msg)
		if err != nil {
			return "", fmt.Errorf("encode %s payload: %w", env.Type, err)
		}
		env.Data = data
	}

	frame, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode %s envelope: %w", env.Type, err)
	}
	return string(frame), nil
}

// DecodeServerMessage parses one wire text frame into an inbound message.
// Exactly one message is produced per frame; an unknown discriminator or a
// malformed payload is an error.
func DecodeServerMessage(frame string) (ServerMessage, error) {
	var env envelope
	if err := json.Unmarshal([]byte(frame), &env); err != nil {
		return nil, fmt.Errorf("decode server message envelope: %w", err)
	}

	var msg ServerMessage
	switch env.Type {
	case "Authenticated":
		msg = &Authenticated{}
	case "ProtocolInfo":
		msg = &ProtocolInfo{}
	case "AuthenticationError":
		msg = &AuthenticationError{}
	case "RoomJoined":
		msg = &RoomJoined{}
	case "RoomJoinFailed":
		msg = &RoomJoinFailed{}
	case "RoomLeft":
		return &RoomLeft{}, nil
	case "PlayerJoined":
		msg = &PlayerJoined{}
	case "PlayerLeft":
		msg = &PlayerLeft{}
	case "GameData":
		msg = &GameData{}
	case "GameDataBinary":
		msg = &GameDataBinary{}
	case "AuthorityChanged":
		msg = &AuthorityChanged{}
	case "AuthorityResponse":
		msg = &AuthorityResponse{}
	case "LobbyStateChanged":
		msg = &LobbyStateChanged{}
	case "GameStarting":
		msg = &GameStarting{}
	case "Pong":
		return &Pong{}, nil
	case "Reconnected":
		msg = &Reconnected{}
	case "ReconnectionFailed":
		msg = &ReconnectionFailed{}
	case "PlayerReconnected":
		msg = &PlayerReconnected{}
	case "SpectatorJoined":
		msg = &SpectatorJoined{}
	case "SpectatorJoinFailed":
		msg = &SpectatorJoinFailed{}
	case "SpectatorLeft":
		msg = &SpectatorLeft{}
	case "NewSpectatorJoined":
		msg = &NewSpectatorJoined{}
	case "SpectatorDisconnected":
		msg = &SpectatorDisconnected{}
	case "Error":
		msg = &Error{}
	default:
		return nil, fmt.Errorf("unknown server message type %q", env.Type)
	}

	if err := json.Unmarshal(env.Data, msg); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
	}
	return msg, nil
}
