// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlayerInfo describes a player currently in a room.
type PlayerInfo struct {
	// ID is the player's unique identifier.
	ID PlayerID `json:"id"`

	// Name is the player's display name.
	Name string `json:"name"`

	// IsAuthority reports whether this player holds room authority.
	IsAuthority bool `json:"is_authority"`

	// IsReady reports whether the player has readied up in the lobby.
	IsReady bool `json:"is_ready"`

	// ConnectedAt is the ISO 8601 timestamp of when the player connected.
	ConnectedAt string `json:"connected_at"`

	// ConnectionInfo is provided for peer-to-peer establishment once the
	// player is ready. Absent until then.
	ConnectionInfo *ConnectionInfo `json:"connection_info,omitempty"`
}

// SpectatorInfo describes a spectator watching a room.
type SpectatorInfo struct {
	// ID is the spectator's unique identifier.
	ID PlayerID `json:"id"`

	// Name is the spectator's display name.
	Name string `json:"name"`

	// ConnectedAt is the ISO 8601 timestamp of when the spectator connected.
	ConnectedAt string `json:"connected_at"`
}

// PeerConnectionInfo carries a peer's connection material for game start.
type PeerConnectionInfo struct {
	PlayerID    PlayerID `json:"player_id"`
	PlayerName  string   `json:"player_name"`
	IsAuthority bool     `json:"is_authority"`
	RelayType   string   `json:"relay_type"`

	// ConnectionInfo is provided by the peer for P2P establishment.
	ConnectionInfo *ConnectionInfo `json:"connection_info,omitempty"`
}

// RateLimitInfo reports the request quotas granted to an application.
type RateLimitInfo struct {
	// PerMinute is the number of requests allowed per minute.
	PerMinute uint32 `json:"per_minute"`

	// PerHour is the number of requests allowed per hour.
	PerHour uint32 `json:"per_hour"`

	// PerDay is the number of requests allowed per day.
	PerDay uint32 `json:"per_day"`
}

// PlayerNameRules describes the characters a deployment allows inside
// player names.
type PlayerNameRules struct {
	MaxLength                      int      `json:"max_length"`
	MinLength                      int      `json:"min_length"`
	AllowUnicodeAlphanumeric       bool     `json:"allow_unicode_alphanumeric"`
	AllowSpaces                    bool     `json:"allow_spaces"`
	AllowLeadingTrailingWhitespace bool     `json:"allow_leading_trailing_whitespace"`
	AllowedSymbols                 []string `json:"allowed_symbols,omitempty"`
	AdditionalAllowedCharacters    *string  `json:"additional_allowed_characters,omitempty"`
}
