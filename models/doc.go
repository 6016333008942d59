// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the wire types of the MatchBay signaling protocol
// and the codec that converts them to and from JSON text frames.
//
// Every message travels as an envelope object with a "type" discriminator
// naming the message kind and a sibling "data" payload object. Kinds that
// carry no payload omit the "data" field entirely:
//
//	{"type":"JoinRoom","data":{"game_name":"my-game","player_name":"Alice", ...}}
//	{"type":"Ping"}
//
// Outbound kinds (client → server) implement [ClientMessage] and are encoded
// with [EncodeClientMessage]. Inbound kinds (server → client) implement
// [ServerMessage] and are produced by [DecodeServerMessage], one message per
// transport frame.
//
// The package is a pure transform: no I/O, no state, no behavior beyond
// (de)serialization and validation of the closed message sets.
package models
