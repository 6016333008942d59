// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ByteSlice is a binary payload that serializes as a JSON array of byte
// values (e.g. [1,255,0]) instead of the base64 string encoding/json uses
// for a plain []byte. The signaling server emits binary game data in the
// array form.
type ByteSlice []byte

// MarshalJSON implements json.Marshaler.
func (b ByteSlice) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(b)*4+2)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	return append(out, ']'), nil
}

// UnmarshalJSON implements json.Unmarshaler. Values outside 0-255 are
// rejected.
func (b *ByteSlice) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("byte array: %w", err)
	}
	out := make([]byte, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte array: value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
