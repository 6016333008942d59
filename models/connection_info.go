// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ConnectionInfoType discriminates the [ConnectionInfo] union.
type ConnectionInfoType string

const (
	// ConnectionDirect is a direct IP:port connection (Mirror, FishNet,
	// Unity NetCode direct).
	ConnectionDirect ConnectionInfoType = "direct"

	// ConnectionUnityRelay is a Unity Relay allocation.
	ConnectionUnityRelay ConnectionInfoType = "unity_relay"

	// ConnectionRelay is the built-in relay server.
	ConnectionRelay ConnectionInfoType = "relay"

	// ConnectionWebRTC carries WebRTC signaling data (Matchbox).
	ConnectionWebRTC ConnectionInfoType = "webrtc"

	// ConnectionCustom carries opaque connection data for other backends.
	ConnectionCustom ConnectionInfoType = "custom"
)

// ConnectionInfo describes how peers establish the game connection once the
// lobby finalizes. It is an internally tagged union on the wire: the "type"
// field names the variant and the variant's fields sit beside it. Fields not
// used by the active variant stay zero and are omitted from JSON.
type ConnectionInfo struct {
	// Type selects the active variant.
	Type ConnectionInfoType `json:"type"`

	// Host and Port are used by the direct and relay variants.
	Host string `json:"host,omitempty"`
	Port uint16 `json:"port,omitempty"`

	// AllocationID is used by the unity_relay and relay variants. For the
	// built-in relay it equals the room ID.
	AllocationID string `json:"allocation_id,omitempty"`

	// ConnectionData and Key belong to the unity_relay variant.
	ConnectionData string `json:"connection_data,omitempty"`
	Key            string `json:"key,omitempty"`

	// Transport is the relay variant's protocol selection.
	Transport RelayTransport `json:"transport,omitempty"`

	// Token is the relay variant's opaque server-issued client token.
	Token string `json:"token,omitempty"`

	// ClientID is assigned by the relay server after connection.
	ClientID *uint16 `json:"client_id,omitempty"`

	// SDP and ICECandidates belong to the webrtc variant.
	SDP           *string  `json:"sdp,omitempty"`
	ICECandidates []string `json:"ice_candidates,omitempty"`

	// Data is the custom variant's opaque payload.
	Data json.RawMessage `json:"data,omitempty"`
}

// DirectConnectionInfo builds a direct IP:port ConnectionInfo.
func DirectConnectionInfo(host string, port uint16) ConnectionInfo {
	return ConnectionInfo{Type: ConnectionDirect, Host: host, Port: port}
}

// UnityRelayConnectionInfo builds a Unity Relay ConnectionInfo.
func UnityRelayConnectionInfo(allocationID, connectionData, key string) ConnectionInfo {
	return ConnectionInfo{
		Type:           ConnectionUnityRelay,
		AllocationID:   allocationID,
		ConnectionData: connectionData,
		Key:            key,
	}
}

// RelayConnectionInfo builds a built-in relay ConnectionInfo.
func RelayConnectionInfo(host string, port uint16, transport RelayTransport, allocationID, token string) ConnectionInfo {
	return ConnectionInfo{
		Type:         ConnectionRelay,
		Host:         host,
		Port:         port,
		Transport:    transport,
		AllocationID: allocationID,
		Token:        token,
	}
}

// WebRTCConnectionInfo builds a WebRTC ConnectionInfo.
func WebRTCConnectionInfo(sdp *string, iceCandidates []string) ConnectionInfo {
	return ConnectionInfo{Type: ConnectionWebRTC, SDP: sdp, ICECandidates: iceCandidates}
}

// CustomConnectionInfo builds a ConnectionInfo with opaque payload data.
func CustomConnectionInfo(data json.RawMessage) ConnectionInfo {
	return ConnectionInfo{Type: ConnectionCustom, Data: data}
}
