// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the MatchBay session runtime: the handle games
// use to talk to a MatchBay signaling server over any [transport.Transport].
//
// A session is started over an already connected transport:
//
//	t, err := transport.Dial(ctx, "wss://signal.example.com/ws")
//	if err != nil {
//		return err
//	}
//	c, events, err := client.Start(t, client.NewConfig("mb_app_abc123"))
//	if err != nil {
//		return err
//	}
//	defer c.Shutdown()
//
//	if err := c.JoinRoom(client.NewJoinRoomParams("chess", "alice")); err != nil {
//		return err
//	}
//	for ev := range events {
//		switch ev := ev.(type) {
//		case *models.RoomJoined:
//			fmt.Println("room code:", ev.RoomCode)
//		case client.Disconnected:
//			return ev.Reason
//		}
//	}
//
// Command methods enqueue and return immediately; every server reaction,
// including command failures, arrives on the event channel. The channel is
// bounded: a consumer that stops reading loses ordinary events but still
// receives the terminal [Disconnected] before the channel closes.
package client
