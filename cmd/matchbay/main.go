// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command matchbay is a minimal interactive client for smoke-testing a
// MatchBay signaling server: it connects, joins a room and prints every
// event until the room closes or the process is interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-match-bay/client"
	"github.com/MKhiriev/go-match-bay/internal/logger"
	"github.com/MKhiriev/go-match-bay/models"
	"github.com/MKhiriev/go-match-bay/transport"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	serverURL := flag.String("server", "ws://localhost:8080/ws", "signaling server WebSocket URL")
	appID := flag.String("app", "", "application ID (overrides MATCHBAY_APP_ID)")
	gameName := flag.String("game", "demo", "game name to join")
	playerName := flag.String("player", "player", "player display name")
	roomCode := flag.String("room", "", "room code to join (empty for quick match)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logger.New("matchbay", zerolog.InfoLevel)
	if *verbose {
		log = logger.New("matchbay", zerolog.DebugLevel)
	}

	cfg, err := client.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg = cfg.WithPlatform("go").WithLogger(log)
	if *appID != "" {
		cfg.AppID = *appID
	}

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDial()

	ws, err := transport.Dial(dialCtx, *serverURL)
	if err != nil {
		log.Fatal().Err(err).Str("url", *serverURL).Msg("connect to signaling server")
	}

	c, events, err := client.Start(ws, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("start client")
	}
	defer c.Shutdown()

	params := client.NewJoinRoomParams(*gameName, *playerName)
	if *roomCode != "" {
		params = params.WithRoomCode(*roomCode)
	}
	if err := c.JoinRoom(params); err != nil {
		log.Fatal().Err(err).Msg("join room")
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-interrupt:
			fmt.Println("interrupted, shutting down")
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			printEvent(ev)
			if _, done := ev.(client.Disconnected); done {
				return
			}
		}
	}
}

func printEvent(ev client.Event) {
	switch ev := ev.(type) {
	case client.Connected:
		fmt.Println("connected")
	case client.Disconnected:
		if ev.Reason != nil {
			fmt.Printf("disconnected: %v\n", ev.Reason)
			return
		}
		fmt.Println("disconnected")
	case *models.Authenticated:
		fmt.Printf("authenticated as app %q\n", ev.AppName)
	case *models.RoomJoined:
		fmt.Printf("joined room %s (%d players, lobby %s)\n",
			ev.RoomCode, len(ev.CurrentPlayers), ev.LobbyState)
	case *models.PlayerJoined:
		fmt.Printf("player joined: %s\n", ev.Player.Name)
	case *models.PlayerLeft:
		fmt.Printf("player left: %s\n", ev.PlayerID)
	case *models.LobbyStateChanged:
		fmt.Printf("lobby %s, %d ready (all ready: %v)\n",
			ev.LobbyState, len(ev.ReadyPlayers), ev.AllReady)
	case *models.GameData:
		fmt.Printf("game data from %s: %s\n", ev.FromPlayer, ev.Data)
	case *models.Error:
		if ev.ErrorCode != nil {
			fmt.Printf("server error [%s]: %s\n", ev.ErrorCode, ev.ErrorCode.Description())
			return
		}
		fmt.Printf("server error: %s\n", ev.Message)
	default:
		fmt.Printf("event: %T\n", ev)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
