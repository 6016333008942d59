// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-match-bay/internal/logger"
	"github.com/MKhiriev/go-match-bay/models"
)

// Version is the SDK version string reported to the server during
// authentication.
const Version = "0.4.0"

const (
	// DefaultEventChannelCapacity is the default bound of the event channel.
	DefaultEventChannelCapacity = 256

	// DefaultShutdownTimeout is the default graceful shutdown wait.
	DefaultShutdownTimeout = time.Second
)

// Config carries everything needed to start a client session. The only
// required field is AppID. Values may come from three layers (explicit
// struct fields, With* builders and environment variables) merged so that
// an explicitly set field always wins over a default.
type Config struct {
	// AppID is the public application identifier (e.g. "mb_app_abc123").
	// Required. Safe to embed in game builds; it is not a secret.
	AppID string `env:"MATCHBAY_APP_ID"`

	// SDKVersion is sent during authentication. Defaults to [Version].
	SDKVersion string `env:"MATCHBAY_SDK_VERSION"`

	// Platform identifies the engine or runtime (e.g. "unity", "godot",
	// "go"). Optional.
	Platform string `env:"MATCHBAY_PLATFORM"`

	// GameDataFormat is the preferred game data encoding. Empty means the
	// server default (JSON text frames).
	GameDataFormat models.GameDataEncoding `env:"MATCHBAY_GAME_DATA_FORMAT"`

	// EventChannelCapacity bounds the event channel. When the consumer
	// cannot keep up, ordinary events are dropped (with a warning logged)
	// rather than stalling the runtime; see [Disconnected] for the terminal
	// event's stronger delivery. Values below 1 are clamped to 1.
	EventChannelCapacity int `env:"MATCHBAY_EVENT_CHANNEL_CAPACITY"`

	// ShutdownTimeout bounds how long Shutdown waits for the runtime to
	// exit. Zero means "don't wait": the runtime is signaled and abandoned
	// immediately.
	ShutdownTimeout time.Duration `env:"MATCHBAY_SHUTDOWN_TIMEOUT"`

	// Logger receives the SDK's structured log output. Defaults to a
	// stderr JSON logger at warn level.
	Logger *logger.Logger `env:"-"`
}

// NewConfig returns a Config with the given App ID and default values.
func NewConfig(appID string) Config {
	return Config{
		AppID:                appID,
		SDKVersion:           Version,
		EventChannelCapacity: DefaultEventChannelCapacity,
		ShutdownTimeout:      DefaultShutdownTimeout,
	}
}

// FromEnv builds a Config from MATCHBAY_* environment variables layered over
// the defaults of [NewConfig]. Unset variables fall back to defaults; the
// App ID must come from MATCHBAY_APP_ID or be set afterwards.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}

	defaults := NewConfig(cfg.AppID)
	if err := mergo.Merge(&cfg, defaults); err != nil {
		return Config{}, fmt.Errorf("merge default config: %w", err)
	}
	return cfg, nil
}

// WithEventChannelCapacity sets the event channel bound, clamped to a
// minimum of 1.
func (c Config) WithEventChannelCapacity(capacity int) Config {
	if capacity < 1 {
		capacity = 1
	}
	c.EventChannelCapacity = capacity
	return c
}

// WithShutdownTimeout sets the graceful shutdown wait. Zero disables
// waiting.
func (c Config) WithShutdownTimeout(timeout time.Duration) Config {
	c.ShutdownTimeout = timeout
	return c
}

// WithPlatform sets the platform identifier sent during authentication.
func (c Config) WithPlatform(platform string) Config {
	c.Platform = platform
	return c
}

// WithGameDataFormat sets the preferred game data encoding.
func (c Config) WithGameDataFormat(format models.GameDataEncoding) Config {
	c.GameDataFormat = format
	return c
}

// WithLogger sets the SDK logger.
func (c Config) WithLogger(l *logger.Logger) Config {
	c.Logger = l
	return c
}

// normalized validates the config and fills runtime-critical gaps. The
// capacity clamp here is the final authority: a capacity of zero or less is
// never treated as unbounded and never rejected.
func (c Config) normalized() (Config, error) {
	if strings.TrimSpace(c.AppID) == "" {
		return c, ErrAppIDRequired
	}
	if c.SDKVersion == "" {
		c.SDKVersion = Version
	}
	if c.EventChannelCapacity < 1 {
		c.EventChannelCapacity = 1
	}
	if c.ShutdownTimeout < 0 {
		c.ShutdownTimeout = 0
	}
	if c.Logger == nil {
		c.Logger = logger.New("matchbay-client", zerolog.WarnLevel)
	}
	return c, nil
}
