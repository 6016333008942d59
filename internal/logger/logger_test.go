// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_NotNil verifies that New returns a non-nil *Logger.
func TestNew_NotNil(t *testing.T) {
	l := New("test", zerolog.InfoLevel)
	require.NotNil(t, l)
}

// TestNewWithWriter_RoleField verifies that every entry carries the "role"
// field used to filter SDK lines out of host application output.
func TestNewWithWriter_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "test-role", zerolog.InfoLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewWithWriter_ContainsTimestamp verifies that entries carry a timestamp.
func TestNewWithWriter_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "ts-role", zerolog.InfoLevel)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewWithWriter_LevelFilter verifies that entries below the configured
// level are suppressed.
func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "level-role", zerolog.WarnLevel)

	l.Debug().Msg("too quiet")
	assert.Empty(t, buf.String())

	l.Warn().Msg("loud enough")
	assert.NotEmpty(t, buf.String())
}

// TestNewWithWriter_NoGlobalMutation verifies that constructing a logger does
// not touch zerolog's global level, leaving the host application in control.
func TestNewWithWriter_NoGlobalMutation(t *testing.T) {
	before := zerolog.GlobalLevel()
	NewWithWriter(&bytes.Buffer{}, "global-role", zerolog.DebugLevel)
	assert.Equal(t, before, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithWriter(&buf, "parent-role", zerolog.InfoLevel)

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}
