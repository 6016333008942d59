// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// PlayerID uniquely identifies a player (or spectator) within the signaling
// service. Rendered on the wire as a lowercase hyphenated UUID string.
type PlayerID = uuid.UUID

// RoomID uniquely identifies a room. Rendered on the wire as a lowercase
// hyphenated UUID string.
type RoomID = uuid.UUID
