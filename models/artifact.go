// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// The backend's generators do not emit a fully normalised shape, so every
// artifact type decodes through a wire struct and maps the accepted field
// variants into one canonical record. Views only ever see canonical records.

// isAbsent reports whether raw carries no usable JSON value.
func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// rawText converts a JSON value into display text. Strings are unquoted,
// absent values become "", any other value is returned as its compact JSON.
func rawText(raw json.RawMessage) string {
	if isAbsent(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var out bytes.Buffer
	if err := json.Compact(&out, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return out.String()
}

// firstText returns the first non-empty text among the variants, in order.
func firstText(variants ...json.RawMessage) string {
	for _, v := range variants {
		if s := rawText(v); s != "" {
			return s
		}
	}
	return ""
}

// canonicalJSON re-encodes raw so that structurally equal values produce
// identical bytes (object keys sorted, whitespace removed).
func canonicalJSON(raw json.RawMessage) ([]byte, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// decodeList decodes raw as a JSON array of raw elements. ok is false when
// raw is absent; a present value that is not an array yields an empty list.
func decodeList(raw json.RawMessage) (items []json.RawMessage, ok bool) {
	if isAbsent(raw) {
		return nil, false
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return []json.RawMessage{}, true
	}
	return items, true
}
