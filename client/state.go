// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-match-bay/models"
)

// sessionState is the shared view of one session, read by the handle and
// written only by the runtime goroutine (and by the terminal clear on
// shutdown/abort). Boolean flags use atomics so the flag accessors never
// block; identity fields sit behind a mutex because they are optional
// heap values updated together.
type sessionState struct {
	connected     atomic.Bool
	authenticated atomic.Bool

	mu       sync.Mutex
	playerID *models.PlayerID
	roomID   *models.RoomID
	roomCode *string
}

// newSessionState returns state for a freshly started session: connected,
// not authenticated, no identity.
func newSessionState() *sessionState {
	s := &sessionState{}
	s.connected.Store(true)
	return s
}

func (s *sessionState) setAuthenticated() {
	s.authenticated.Store(true)
}

// setRoom records the identity assigned by a join, reconnect or spectator
// join.
func (s *sessionState) setRoom(playerID models.PlayerID, roomID models.RoomID, roomCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = &playerID
	s.roomID = &roomID
	s.roomCode = &roomCode
}

// clearRoom drops room identity after a leave, keeping the player
// authenticated.
func (s *sessionState) clearRoom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomID = nil
	s.roomCode = nil
}

// clear resets everything to the disconnected baseline. Called on every
// terminal path, so accessors read cleared whether or not the consumer ever
// observed the Disconnected event.
func (s *sessionState) clear() {
	s.connected.Store(false)
	s.authenticated.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = nil
	s.roomID = nil
	s.roomCode = nil
}

func (s *sessionState) currentPlayerID() (models.PlayerID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerID == nil {
		return models.PlayerID{}, false
	}
	return *s.playerID, true
}

func (s *sessionState) currentRoomID() (models.RoomID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomID == nil {
		return models.RoomID{}, false
	}
	return *s.roomID, true
}

func (s *sessionState) currentRoomCode() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomCode == nil {
		return "", false
	}
	return *s.roomCode, true
}
