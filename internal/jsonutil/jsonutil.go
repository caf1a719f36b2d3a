// Package jsonutil provides shared helpers for decoding API payloads:
// contextual errors, lenient field access, and error-body messages.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals a JSON array into a slice.
// An empty array or null yields an empty slice; any other shape is an error.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetString safely extracts a string value from a decoded JSON object.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// ErrorMessage extracts a human-readable message from an error response body.
// It understands {"detail": "..."} (including validation detail lists) and
// {"message": "..."}; otherwise it returns the trimmed body.
func ErrorMessage(body []byte) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return strings.TrimSpace(string(body))
	}
	if s := GetString(m, "detail"); s != "" {
		return s
	}
	if list, ok := m["detail"].([]any); ok {
		msgs := make([]string, 0, len(list))
		for _, item := range list {
			if obj, ok := item.(map[string]any); ok {
				if s := GetString(obj, "msg"); s != "" {
					msgs = append(msgs, s)
				}
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	if s := GetString(m, "message"); s != "" {
		return s
	}
	return strings.TrimSpace(string(body))
}
